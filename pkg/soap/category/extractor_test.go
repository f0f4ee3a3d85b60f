package category

import (
	"strings"
	"testing"

	"clinical-notes-be/pkg/soap/section"
)

func TestExtractAssessment(t *testing.T) {
	content := strings.Join([]string{
		"- Primary Diagnosis: Major Depressive Disorder, moderate",
		"  supported by persistent low mood over six weeks",
		"- Differential Diagnoses: Adjustment Disorder",
		"- Risk Assessment: MEDIUM risk due to passive ideation",
	}, "\n")

	got := Extract(content, Configs[section.Assessment])

	if want := "Major Depressive Disorder, moderate supported by persistent low mood over six weeks"; got["primaryDiagnosis"] != want {
		t.Errorf("primaryDiagnosis = %q, want %q", got["primaryDiagnosis"], want)
	}
	if got["differentialDiagnoses"] != "Adjustment Disorder" {
		t.Errorf("differentialDiagnoses = %q", got["differentialDiagnoses"])
	}
	if got["riskAssessment"] != "MEDIUM risk due to passive ideation" {
		t.Errorf("riskAssessment = %q", got["riskAssessment"])
	}
}

func TestExtractPlan(t *testing.T) {
	content := strings.Join([]string{
		"- Immediate Interventions: safety planning completed in session",
		"- Treatment Recommendations: begin CBT weekly",
		"- Follow-up Plan: review in two weeks",
		"- Safety Measures: remove access to means",
	}, "\n")

	got := Extract(content, Configs[section.Plan])

	tests := map[string]string{
		"immediateInterventions":   "safety planning completed in session",
		"treatmentRecommendations": "begin CBT weekly",
		"followUpPlan":             "review in two weeks",
		"safetyMeasures":           "remove access to means",
	}
	for key, want := range tests {
		if got[key] != want {
			t.Errorf("%s = %q, want %q", key, got[key], want)
		}
	}
}

func TestExtractPatientInfoBulletRun(t *testing.T) {
	// The generator sometimes emits the whole block on one line.
	content := "- Gender: Female - Age: 34"

	got := Extract(content, Configs[section.PatientInformation])

	if got["gender"] != "Female" {
		t.Errorf("gender = %q, want %q", got["gender"], "Female")
	}
	if got["age"] != "34" {
		t.Errorf("age = %q, want %q", got["age"], "34")
	}
}

func TestExtractPatientInfoTitleKeying(t *testing.T) {
	// Introducing phrases must key on the pre-colon title, never on words
	// inside the value: "managed" must not classify an item as age.
	content := strings.Join([]string{
		"- Family History: mother managed depression for years",
		"- Social History: works as a care manager, lives with partner",
	}, "\n")

	got := Extract(content, Configs[section.PatientInformation])

	if got["age"] != "" {
		t.Errorf("age = %q, want empty", got["age"])
	}
	if want := "mother managed depression for years"; got["familyHistory"] != want {
		t.Errorf("familyHistory = %q, want %q", got["familyHistory"], want)
	}
	if want := "works as a care manager, lives with partner"; got["socialHistory"] != want {
		t.Errorf("socialHistory = %q, want %q", got["socialHistory"], want)
	}
}

func TestExtractWordBoundaryWithoutColon(t *testing.T) {
	// Without a colon the whole item is the title; boundaries still apply.
	got := Extract("Patient described life as a teenager", Configs[section.PatientInformation])
	if got["age"] != "" {
		t.Errorf("age = %q, want empty", got["age"])
	}

	got = Extract("Age 34", Configs[section.PatientInformation])
	if got["age"] != "34" {
		t.Errorf("age = %q, want %q", got["age"], "34")
	}
}

func TestExtractSeedWithoutColon(t *testing.T) {
	got := Extract("Primary Diagnosis deferred pending testing", Configs[section.Assessment])
	if got["primaryDiagnosis"] != "deferred pending testing" {
		t.Errorf("primaryDiagnosis = %q", got["primaryDiagnosis"])
	}
}

func TestExtractDropsLeadingUnmatchedLines(t *testing.T) {
	content := "general narrative before any category\n- Primary Diagnosis: MDD"
	got := Extract(content, Configs[section.Assessment])

	if got["primaryDiagnosis"] != "MDD" {
		t.Errorf("primaryDiagnosis = %q", got["primaryDiagnosis"])
	}
	for key, v := range got {
		if strings.Contains(v, "general narrative") {
			t.Errorf("leading unmatched line leaked into %s: %q", key, v)
		}
	}
}

func TestExtractEmptyAndHasData(t *testing.T) {
	got := Extract("", Configs[section.Assessment])
	if len(got) != 3 {
		t.Fatalf("expected all 3 keys present, got %d", len(got))
	}
	for key, v := range got {
		if v != "" {
			t.Errorf("%s = %q, want empty", key, v)
		}
	}
	if HasData(got) {
		t.Error("HasData should be false for all-empty categories")
	}

	got = Extract("- Risk Assessment: LOW", Configs[section.Assessment])
	if !HasData(got) {
		t.Error("HasData should be true when one category matched")
	}
}

func TestExtractCategoryExclusivity(t *testing.T) {
	content := strings.Join([]string{
		"- Primary Diagnosis: MDD",
		"- Differential Diagnoses: GAD",
		"- Risk Assessment: LOW",
	}, "\n")
	got := Extract(content, Configs[section.Assessment])

	// No category's text may contain another category's introducing phrase.
	for key, text := range got {
		lower := strings.ToLower(text)
		for _, cat := range Configs[section.Assessment].Categories {
			if cat.Key == key {
				continue
			}
			for _, phrase := range cat.Phrases {
				if strings.Contains(lower, phrase) {
					t.Errorf("%s text %q contains foreign phrase %q", key, text, phrase)
				}
			}
		}
	}
}
