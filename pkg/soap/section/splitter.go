package section

import (
	"strings"
)

// Name identifies one of the five top-level regions of a SOAP-style note.
type Name string

const (
	SessionSummary     Name = "session_summary"
	PatientInformation Name = "patient_information"
	Objective          Name = "objective"
	Assessment         Name = "assessment"
	Plan               Name = "plan"
)

// Section is one extracted region. Content is trimmed. Position is the ordinal
// of the section in document order among the sections that were found.
type Section struct {
	Name     Name
	Content  string
	Position int
}

// config drives extraction for one section: the canonical header written by the
// normalizer, the mixed-case spelling retried when the canonical form is absent,
// and fallback entry/exit phrases for notes that carry no headers at all. Entry
// phrases open line accumulation; a line containing an exit phrase (which always
// belongs to a different section) closes it.
type config struct {
	name    Name
	header  string
	variant string
	entry   []string
	exit    []string
}

// Ordered canonical list. Fallback phrase sets mirror the category-introducing
// phrases the generator is prompted to use inside each section.
var configs = []config{
	{name: SessionSummary, header: "SESSION SUMMARY:", variant: "Session Summary:"},
	{name: PatientInformation, header: "PATIENT INFORMATION:", variant: "Patient Information:"},
	{
		name: Objective, header: "OBJECTIVE:", variant: "Objective:",
		entry: []string{"mental status exam", "physical observation", "behavioral observation"},
		exit: []string{
			"primary diagnosis", "differential diagnosis", "risk assessment",
			"immediate intervention", "treatment recommendation", "safety measure",
		},
	},
	{
		name: Assessment, header: "ASSESSMENT:", variant: "Assessment:",
		entry: []string{
			"primary diagnosis", "differential diagnosis", "risk assessment",
			"risk high", "risk medium", "risk low",
		},
		exit: []string{
			"immediate intervention", "treatment recommendation", "follow-up", "safety measure",
		},
	},
	{
		name: Plan, header: "PLAN:", variant: "Plan:",
		entry: []string{
			"immediate intervention", "treatment recommendation", "follow-up", "safety measure",
		},
		exit: []string{"risk assessment", "primary diagnosis", "differential diagnosis"},
	},
}

type headerHit struct {
	cfg     config
	line    int
	remnant string // text on the header line after the header token
}

// Split partitions normalized note text into its named sections. A section that
// cannot be located is simply absent from the result; callers treat absence as
// "no data available", never as an error.
func Split(text string) map[Name]Section {
	lines := strings.Split(text, "\n")

	// Single forward scan recording header positions, then slice between
	// consecutive hits. Canonical spelling wins over the mixed-case variant
	// when both would match the same line.
	var hits []headerHit
	seen := map[Name]bool{}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, cfg := range configs {
			if seen[cfg.name] {
				continue
			}
			if strings.HasPrefix(trimmed, cfg.header) {
				hits = append(hits, headerHit{cfg: cfg, line: i, remnant: strings.TrimPrefix(trimmed, cfg.header)})
				seen[cfg.name] = true
				break
			}
			if strings.HasPrefix(trimmed, cfg.variant) {
				hits = append(hits, headerHit{cfg: cfg, line: i, remnant: strings.TrimPrefix(trimmed, cfg.variant)})
				seen[cfg.name] = true
				break
			}
		}
	}

	result := make(map[Name]Section, len(configs))
	for idx, hit := range hits {
		end := len(lines)
		if idx+1 < len(hits) {
			end = hits[idx+1].line
		}
		parts := make([]string, 0, end-hit.line)
		if strings.TrimSpace(hit.remnant) != "" {
			parts = append(parts, hit.remnant)
		}
		parts = append(parts, lines[hit.line+1:end]...)
		content := strings.TrimSpace(strings.Join(parts, "\n"))
		if content == "" {
			continue
		}
		result[hit.cfg.name] = Section{Name: hit.cfg.name, Content: content, Position: len(result)}
	}

	// Fallback phrase scan for sections the header pass missed.
	for _, cfg := range configs {
		if _, ok := result[cfg.name]; ok || len(cfg.entry) == 0 {
			continue
		}
		if content := scanByPhrases(lines, cfg); content != "" {
			result[cfg.name] = Section{Name: cfg.name, Content: content, Position: len(result)}
		}
	}

	return result
}

func scanByPhrases(lines []string, cfg config) string {
	var collected []string
	open := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if !open {
			if containsAny(lower, cfg.entry) {
				open = true
				collected = append(collected, trimmed)
			}
			continue
		}
		if containsAny(lower, cfg.exit) && !containsAny(lower, cfg.entry) {
			break
		}
		collected = append(collected, trimmed)
	}
	return strings.TrimSpace(strings.Join(collected, "\n"))
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
