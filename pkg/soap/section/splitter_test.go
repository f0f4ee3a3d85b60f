package section

import (
	"strings"
	"testing"
)

const fullNote = `SESSION SUMMARY:
Patient presented with low mood and passive suicidal ideation.

PATIENT INFORMATION:
- Gender: Female
- Age: 34

OBJECTIVE:
- Mental Status Exam: alert, oriented, flat affect
- Behavioral Observations: minimal eye contact

ASSESSMENT:
- Primary Diagnosis: Major Depressive Disorder
- Risk Assessment: MEDIUM risk

PLAN:
- Immediate Interventions: safety planning
- Follow-up Plan: weekly sessions`

func TestSplitFullNote(t *testing.T) {
	sections := Split(fullNote)

	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}

	tests := []struct {
		name     Name
		contains string
	}{
		{SessionSummary, "low mood"},
		{PatientInformation, "Gender: Female"},
		{Objective, "Mental Status Exam"},
		{Assessment, "Major Depressive Disorder"},
		{Plan, "safety planning"},
	}
	for _, tt := range tests {
		sec, ok := sections[tt.name]
		if !ok {
			t.Errorf("section %s not found", tt.name)
			continue
		}
		if !strings.Contains(sec.Content, tt.contains) {
			t.Errorf("section %s = %q, want substring %q", tt.name, sec.Content, tt.contains)
		}
		if sec.Content != strings.TrimSpace(sec.Content) {
			t.Errorf("section %s content not trimmed: %q", tt.name, sec.Content)
		}
	}

	// Content must stop at the next header.
	if strings.Contains(sections[Assessment].Content, "PLAN:") || strings.Contains(sections[Assessment].Content, "safety planning") {
		t.Errorf("assessment content leaked into plan: %q", sections[Assessment].Content)
	}
}

func TestSplitMissingIntermediateSection(t *testing.T) {
	// Objective absent: patient info must be bounded by ASSESSMENT instead.
	note := "PATIENT INFORMATION:\n- Gender: Male\n\nASSESSMENT:\n- Primary Diagnosis: Adjustment Disorder"
	sections := Split(note)

	if _, ok := sections[Objective]; ok {
		t.Error("objective should be absent")
	}
	info, ok := sections[PatientInformation]
	if !ok {
		t.Fatal("patient information not found")
	}
	if strings.Contains(info.Content, "Adjustment Disorder") {
		t.Errorf("patient info content leaked into assessment: %q", info.Content)
	}
}

func TestSplitMixedCaseVariant(t *testing.T) {
	note := "Assessment:\n- Primary Diagnosis: Generalized Anxiety Disorder"
	sections := Split(note)

	sec, ok := sections[Assessment]
	if !ok {
		t.Fatal("assessment not found via mixed-case variant")
	}
	if !strings.Contains(sec.Content, "Generalized Anxiety Disorder") {
		t.Errorf("unexpected content: %q", sec.Content)
	}
}

func TestSplitFallbackPhrases(t *testing.T) {
	// No headers at all: assessment and plan located by their entry phrases.
	note := strings.Join([]string{
		"Patient seen for intake.",
		"Primary Diagnosis: Major Depressive Disorder",
		"Risk Assessment: LOW",
		"Treatment Recommendations: begin CBT",
		"Follow-up: two weeks",
	}, "\n")
	sections := Split(note)

	assessment, ok := sections[Assessment]
	if !ok {
		t.Fatal("assessment not found via fallback scan")
	}
	if !strings.Contains(assessment.Content, "Primary Diagnosis") {
		t.Errorf("assessment fallback content = %q", assessment.Content)
	}
	if strings.Contains(assessment.Content, "Treatment Recommendations") {
		t.Errorf("assessment fallback ran past its exit phrase: %q", assessment.Content)
	}

	plan, ok := sections[Plan]
	if !ok {
		t.Fatal("plan not found via fallback scan")
	}
	if !strings.Contains(plan.Content, "begin CBT") {
		t.Errorf("plan fallback content = %q", plan.Content)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "unstructured narration without any markers"} {
		sections := Split(in)
		if len(sections) != 0 {
			t.Errorf("Split(%q) = %d sections, want 0", in, len(sections))
		}
	}
}

func TestSplitHeaderWithInlineRemnant(t *testing.T) {
	// Content on the same line as the header belongs to the section.
	sections := Split("SESSION SUMMARY: Brief stable visit.\nPATIENT INFORMATION:\n- Age: 40")

	sec, ok := sections[SessionSummary]
	if !ok {
		t.Fatal("session summary not found")
	}
	if sec.Content != "Brief stable visit." {
		t.Errorf("content = %q, want %q", sec.Content, "Brief stable visit.")
	}
}
