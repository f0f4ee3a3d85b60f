package soap

import (
	"strings"
	"testing"

	"clinical-notes-be/pkg/soap/risk"
)

const sampleNote = `SESSION SUMMARY:
Patient presented with persistent low mood and passive suicidal ideation without plan.

PATIENT INFORMATION:
- Gender: Female
- Age: 34
- Social History: lives alone, works as an accountant

OBJECTIVE:
- Mental Status Exam: alert, oriented x3, flat affect, slowed speech
- Behavioral Observations: minimal eye contact, tearful at times

ASSESSMENT:
- Primary Diagnosis: Major Depressive Disorder, moderate
- Differential Diagnoses: Adjustment Disorder
- Risk Assessment: MEDIUM risk due to passive suicidal ideation

PLAN:
- Immediate Interventions: safety planning completed
- Treatment Recommendations: weekly CBT
- Follow-up Plan: review in one week
- Safety Measures: crisis line provided`

func TestEngineProcessFullNote(t *testing.T) {
	result := NewEngine().Process(sampleNote)

	if !strings.Contains(result.SessionSummary, "low mood") {
		t.Errorf("session summary = %q", result.SessionSummary)
	}
	if got := result.PatientInfo.Category("gender"); got != "Female" {
		t.Errorf("gender = %q", got)
	}
	if got := result.PatientInfo.Category("age"); got != "34" {
		t.Errorf("age = %q", got)
	}
	if got := result.Assessment.Category("primaryDiagnosis"); !strings.Contains(got, "Major Depressive Disorder") {
		t.Errorf("primaryDiagnosis = %q", got)
	}
	if got := result.Plan.Category("safetyMeasures"); got != "crisis line provided" {
		t.Errorf("safetyMeasures = %q", got)
	}
	if got := result.Objective.Category("mentalStatusExam"); !strings.Contains(got, "flat affect") {
		t.Errorf("mentalStatusExam = %q", got)
	}

	if len(result.RiskFlags) == 0 {
		t.Fatal("risk flags must never be empty")
	}
	if result.RiskFlags[0].Category != "Suicide Risk" {
		t.Errorf("primary risk category = %q", result.RiskFlags[0].Category)
	}
	if result.RiskFlags[0].Level != risk.LevelMedium {
		t.Errorf("risk level = %q, want medium", result.RiskFlags[0].Level)
	}

	found := false
	for _, term := range result.FlaggedTerms {
		if term == "suicidal" {
			found = true
		}
	}
	if !found {
		t.Errorf("flagged terms %v missing 'suicidal'", result.FlaggedTerms)
	}

	if len(result.FollowUpQuestions) == 0 || len(result.FollowUpQuestions) > 8 {
		t.Errorf("follow-up question count = %d", len(result.FollowUpQuestions))
	}
}

func TestEngineProcessNoSafetyConcerns(t *testing.T) {
	result := NewEngine().Process("Patient reports stable mood, sleeping well.")

	if len(result.RiskFlags) != 1 {
		t.Fatalf("flags = %v, want exactly one", result.RiskFlags)
	}
	if result.RiskFlags[0].Level != risk.LevelNone {
		t.Errorf("level = %q, want none", result.RiskFlags[0].Level)
	}
	if len(result.FlaggedTerms) != 0 {
		t.Errorf("flagged terms = %v, want none", result.FlaggedTerms)
	}
	if result.Assessment.Found {
		t.Error("assessment should be absent")
	}
	if result.Assessment.HasCategorizedData() {
		t.Error("assessment categories should be empty")
	}
}

func TestEngineProcessMissingDemographics(t *testing.T) {
	result := NewEngine().Process("Session covered recent stressors at work. No safety concerns raised by patient.")

	var genderIdx, ageIdx = -1, -1
	for i, q := range result.FollowUpQuestions {
		switch q {
		case "What is the patient's gender identity?":
			genderIdx = i
		case "What is the patient's age?":
			ageIdx = i
		}
	}
	if genderIdx == -1 || ageIdx == -1 {
		t.Fatalf("demographic gap questions missing: %v", result.FollowUpQuestions)
	}
	if genderIdx > ageIdx {
		t.Error("gender question should precede age question")
	}
}

func TestEngineStripsInlineHeaderBeforeSplitting(t *testing.T) {
	note := "OBJECTIVE:\n- Behavioral Observations: patient referenced the ASSESSMENT: from a prior visit\n\nPLAN:\n- Follow-up Plan: next month"
	result := NewEngine().Process(note)

	if !result.Objective.Found {
		t.Fatal("objective not found")
	}
	if !strings.Contains(result.Objective.Content, "prior visit") {
		t.Errorf("objective content mis-bounded: %q", result.Objective.Content)
	}
	if result.Assessment.Found {
		t.Errorf("stray inline header created a spurious assessment: %q", result.Assessment.Content)
	}
	if !result.Plan.Found {
		t.Error("plan not found")
	}
}

func TestEngineUncategorizedFallbackSignal(t *testing.T) {
	note := "ASSESSMENT:\nnarrative impression without recognizable category markers\n\nPLAN:\n- Follow-up Plan: soon"
	result := NewEngine().Process(note)

	if !result.Assessment.Found {
		t.Fatal("assessment not found")
	}
	if result.Assessment.HasCategorizedData() {
		t.Error("no categories should have matched")
	}
	if !strings.Contains(result.Assessment.Content, "narrative impression") {
		t.Errorf("raw content must remain available for fallback rendering: %q", result.Assessment.Content)
	}
}

func TestEngineFollowUpBlockDoesNotLeak(t *testing.T) {
	note := "ASSESSMENT:\n- Primary Diagnosis: MDD\n\nFollow-up Questions:\n1. How is sleep?\n\nPLAN:\n- Follow-up Plan: next week"
	result := NewEngine().Process(note)

	if strings.Contains(result.StructuredNote, "How is sleep?") {
		t.Errorf("follow-up block leaked into structured note: %q", result.StructuredNote)
	}
	if !result.Plan.Found {
		t.Error("plan lost while removing follow-up block")
	}
}
