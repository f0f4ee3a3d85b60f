package risk

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Level is the derived severity of a risk flag.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
	LevelNone   Level = "none"
)

// Flag is one derived safety-risk assessment. Flags are ordered by category
// priority; the first flag is the primary concern.
type Flag struct {
	Level       Level  `json:"level"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Analysis is the analyzer's output for one note.
type Analysis struct {
	Flags        []Flag
	FlaggedTerms []string
	KeySymptoms  []string
	Diagnoses    []string
}

// HasConcerns reports whether any safety keyword matched, i.e. whether the
// flag list carries anything beyond the level-none placeholder.
func (a Analysis) HasConcerns() bool {
	return len(a.Flags) > 0 && a.Flags[0].Level != LevelNone
}

// Analyze scans cleaned note text for safety keywords, highlighted terms and
// known symptom/diagnosis vocabulary. It always yields at least one flag:
// one per matched safety category in priority order, or exactly one
// level-none flag when nothing matches.
func Analyze(text string) Analysis {
	lower := strings.ToLower(text)

	analysis := Analysis{
		Flags:        detectFlags(lower),
		FlaggedTerms: detectFlaggedTerms(text),
		KeySymptoms:  matchVocabulary(lower, Symptoms),
		Diagnoses:    matchVocabulary(lower, Diagnoses),
	}
	return analysis
}

func detectFlags(lower string) []Flag {
	level := detectLevel(lower)

	var flags []Flag
	for _, group := range SafetyGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				flags = append(flags, Flag{
					Level:       level,
					Category:    group.Category,
					Description: fmt.Sprintf("Generator assessment indicates %s risk level. Requires clinical attention and monitoring.", level),
				})
				break
			}
		}
	}

	if len(flags) == 0 {
		return []Flag{{
			Level:       LevelNone,
			Category:    "No Safety Concerns",
			Description: "No safety concerns identified in this session. Patient presents with normal mood and behavior.",
		}}
	}
	return flags
}

// detectLevel reads the explicit level phrase out of the note. The generator is
// prompted to state HIGH/MEDIUM/LOW; medium is the default when a concern is
// present but unqualified.
func detectLevel(lower string) Level {
	switch {
	case strings.Contains(lower, "high risk") || strings.Contains(lower, "risk: high"):
		return LevelHigh
	case strings.Contains(lower, "low risk") || strings.Contains(lower, "risk: low"):
		return LevelLow
	default:
		return LevelMedium
	}
}

func detectFlaggedTerms(text string) []string {
	seen := make(map[string]bool)
	for _, term := range FlaggedTerms {
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		for _, match := range re.FindAllString(text, -1) {
			seen[strings.ToLower(match)] = true
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func matchVocabulary(lower string, vocab []string) []string {
	matches := []string{}
	for _, entry := range vocab {
		if strings.Contains(lower, strings.ToLower(entry)) {
			matches = append(matches, entry)
		}
	}
	return matches
}
