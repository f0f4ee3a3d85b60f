package gap

import "strings"

// MaxQuestions bounds the follow-up list handed to the caller.
const MaxQuestions = 8

// Questions evaluates the gap checklist against cleaned note text and returns
// the follow-up question sequence: gap-driven questions first (checklist
// order), then the standard padding, deduplicated stably and capped at
// MaxQuestions. riskPresent gates the RiskOnly checks.
func Questions(text string, riskPresent bool) []string {
	lower := strings.ToLower(text)

	var questions []string
	for _, check := range Checklist {
		if check.RiskOnly && !riskPresent {
			continue
		}
		if !anyMarkerPresent(lower, check.Markers) {
			questions = append(questions, check.Question)
		}
	}
	questions = append(questions, StandardQuestions...)

	seen := make(map[string]bool, len(questions))
	unique := make([]string, 0, MaxQuestions)
	for _, q := range questions {
		if seen[q] {
			continue
		}
		seen[q] = true
		unique = append(unique, q)
		if len(unique) == MaxQuestions {
			break
		}
	}
	return unique
}

func anyMarkerPresent(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
