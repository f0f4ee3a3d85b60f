// Package soap turns free-form generator output into a structured clinical
// note: section boundaries, per-section categories, risk flags, highlighted
// terms, detected symptom/diagnosis vocabulary and follow-up questions.
//
// The engine is a pure function of its input text. One invocation allocates
// fresh working structures; concurrent invocations need no coordination.
package soap

import (
	"clinical-notes-be/pkg/soap/category"
	"clinical-notes-be/pkg/soap/gap"
	"clinical-notes-be/pkg/soap/normalizer"
	"clinical-notes-be/pkg/soap/risk"
	"clinical-notes-be/pkg/soap/section"
)

// SectionResult is one extracted section plus its category breakdown. Found
// reports whether the section could be located at all; Categories always
// carries every configured key, empty when nothing was extracted.
type SectionResult struct {
	Found      bool
	Content    string
	Categories map[string]string
}

// Category returns the extracted text for one category key, empty when the
// category was never found.
func (s SectionResult) Category(key string) string {
	return s.Categories[key]
}

// HasCategorizedData reports whether at least one category is non-empty.
// Presentation falls back to the raw Content when this is false.
func (s SectionResult) HasCategorizedData() bool {
	return category.HasData(s.Categories)
}

// Result is the engine's aggregate output for one note. Constructed once per
// Process call and not mutated afterwards.
type Result struct {
	StructuredNote    string
	SessionSummary    string
	RiskFlags         []risk.Flag
	FlaggedTerms      []string
	KeySymptoms       []string
	Diagnoses         []string
	FollowUpQuestions []string

	PatientInfo SectionResult
	Objective   SectionResult
	Assessment  SectionResult
	Plan        SectionResult
}

// Engine runs the four-stage pipeline: normalize, split, categorize, analyze.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Process parses one raw generator response. It never fails: any extraction
// that finds nothing yields an empty, representable default instead of an
// error.
func (e *Engine) Process(rawText string) *Result {
	cleaned := normalizer.Normalize(rawText)
	sections := section.Split(cleaned)

	analysis := risk.Analyze(cleaned)

	result := &Result{
		StructuredNote:    cleaned,
		RiskFlags:         analysis.Flags,
		FlaggedTerms:      analysis.FlaggedTerms,
		KeySymptoms:       analysis.KeySymptoms,
		Diagnoses:         analysis.Diagnoses,
		FollowUpQuestions: gap.Questions(cleaned, analysis.HasConcerns()),

		PatientInfo: buildSection(sections, section.PatientInformation),
		Objective:   buildSection(sections, section.Objective),
		Assessment:  buildSection(sections, section.Assessment),
		Plan:        buildSection(sections, section.Plan),
	}

	if summary, ok := sections[section.SessionSummary]; ok {
		result.SessionSummary = summary.Content
	}
	return result
}

func buildSection(sections map[section.Name]section.Section, name section.Name) SectionResult {
	cfg := category.Configs[name]

	sec, found := sections[name]
	content := ""
	if found {
		content = sec.Content
	}
	return SectionResult{
		Found:      found,
		Content:    content,
		Categories: category.Extract(content, cfg),
	}
}
