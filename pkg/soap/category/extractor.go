package category

import (
	"strings"

	"clinical-notes-be/pkg/soap/section"
)

// Category names one sub-field within a section and the phrases that introduce
// it. Phrase priority is positional: a line matching an earlier-listed category
// is classified there even if it loosely matches a later one.
type Category struct {
	Key     string
	Phrases []string
}

// Config drives extraction for one section's sub-categories. SplitBullets
// handles sections the generator formats as a single "- Key: value - Key:
// value" run rather than one entry per line.
type Config struct {
	Section      section.Name
	Categories   []Category
	SplitBullets bool
}

// Configs holds the fixed per-section category tables. Keys follow the output
// contract's field names.
var Configs = map[section.Name]Config{
	section.Assessment: {
		Section: section.Assessment,
		Categories: []Category{
			{Key: "primaryDiagnosis", Phrases: []string{"primary diagnosis"}},
			{Key: "differentialDiagnoses", Phrases: []string{"differential diagnosis", "differential diagnoses"}},
			{Key: "riskAssessment", Phrases: []string{"risk assessment", "risk high", "risk medium", "risk low"}},
		},
	},
	section.Plan: {
		Section: section.Plan,
		Categories: []Category{
			{Key: "immediateInterventions", Phrases: []string{"immediate intervention"}},
			{Key: "treatmentRecommendations", Phrases: []string{"treatment recommendation"}},
			{Key: "followUpPlan", Phrases: []string{"follow-up"}},
			{Key: "safetyMeasures", Phrases: []string{"safety measure"}},
		},
	},
	section.Objective: {
		Section: section.Objective,
		Categories: []Category{
			{Key: "mentalStatusExam", Phrases: []string{"mental status exam"}},
			{Key: "physicalObservations", Phrases: []string{"physical observation"}},
			{Key: "behavioralObservations", Phrases: []string{"behavioral observation"}},
		},
	},
	section.PatientInformation: {
		Section:      section.PatientInformation,
		SplitBullets: true,
		Categories: []Category{
			{Key: "gender", Phrases: []string{"gender"}},
			{Key: "age", Phrases: []string{"age"}},
			{Key: "presentIllnessHistory", Phrases: []string{"present illness history", "present illness"}},
			{Key: "pastPsychiatricHistory", Phrases: []string{"past psychiatric history", "past psychiatric"}},
			{Key: "pastMedicalHistory", Phrases: []string{"past medical history", "past medical"}},
			{Key: "familyHistory", Phrases: []string{"family history"}},
			{Key: "socialHistory", Phrases: []string{"social history"}},
		},
	},
}

// Extract splits section content into one text blob per configured category.
// Every configured key is present in the result; categories never found stay
// empty strings. Lines before the first recognized phrase are dropped.
func Extract(content string, cfg Config) map[string]string {
	result := make(map[string]string, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		result[cat.Key] = ""
	}

	current := ""
	for _, item := range splitItems(content, cfg.SplitBullets) {
		lower := strings.ToLower(item)

		matched := false
		for _, cat := range cfg.Categories {
			phrase, ok := matchPhrase(lower, cat.Phrases)
			if !ok {
				continue
			}
			current = cat.Key
			result[cat.Key] = appendText(result[cat.Key], seedText(item, phrase))
			matched = true
			break
		}
		if matched {
			continue
		}

		if current != "" {
			result[current] = appendText(result[current], item)
		}
	}
	return result
}

// HasData reports whether any category extracted non-empty text. Presentation
// renders the raw section content as an uncategorized fallback when this is
// false but the section itself is non-empty.
func HasData(categories map[string]string) bool {
	for _, v := range categories {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// splitItems breaks content into non-empty classification units: lines, plus
// "- " bullet items within a line when the section is bullet-formatted.
func splitItems(content string, splitBullets bool) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if splitBullets && strings.HasPrefix(line, "- ") {
			for _, part := range strings.Split(line, "- ") {
				if part = strings.TrimSpace(part); part != "" {
					items = append(items, part)
				}
			}
			continue
		}
		items = append(items, line)
	}
	return items
}

// matchPhrase tests an item against a category's introducing phrases. Only
// the title portion before the first colon is examined when the item carries
// one, and phrases must start on a word boundary, so a short phrase like
// "age" cannot fire inside a value word ("managed", "teenager"). Matches may
// run into a suffix: the singular phrases are meant to cover plural titles.
func matchPhrase(lower string, phrases []string) (string, bool) {
	title := lower
	if idx := strings.Index(lower, ":"); idx >= 0 {
		title = lower[:idx]
	}
	for _, p := range phrases {
		if containsWordStart(title, p) {
			return p, true
		}
	}
	return "", false
}

func containsWordStart(s, phrase string) bool {
	for at := 0; at+len(phrase) <= len(s); {
		idx := strings.Index(s[at:], phrase)
		if idx < 0 {
			return false
		}
		idx += at
		if idx == 0 || !isLetter(s[idx-1]) {
			return true
		}
		at = idx + 1
	}
	return false
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// seedText derives a category's initial text from its introducing line: the
// part after the first colon when one exists, else the line with the matched
// phrase removed.
func seedText(line, phrase string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	lower := strings.ToLower(line)
	at := strings.Index(lower, phrase)
	if at < 0 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[:at] + line[at+len(phrase):])
}

func appendText(existing, addition string) string {
	addition = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(addition), "- "))
	if addition == "" {
		return existing
	}
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}
