package gap

import (
	"testing"
)

func contains(list []string, q string) bool {
	for _, item := range list {
		if item == q {
			return true
		}
	}
	return false
}

func TestQuestionsMissingDemographics(t *testing.T) {
	questions := Questions("Patient attended session and discussed treatment plan.", false)

	if !contains(questions, "What is the patient's gender identity?") {
		t.Errorf("missing gender question: %v", questions)
	}
	if !contains(questions, "What is the patient's age?") {
		t.Errorf("missing age question: %v", questions)
	}
	// Gap questions precede standard padding.
	if questions[0] != "What is the patient's gender identity?" {
		t.Errorf("first question = %q, want gender gap question", questions[0])
	}
}

func TestQuestionsMarkersSuppressGaps(t *testing.T) {
	text := "Female patient, 34 years old, with documented family history and social history; occupation noted."
	questions := Questions(text, false)

	if contains(questions, "What is the patient's gender identity?") {
		t.Error("gender question should be suppressed")
	}
	if contains(questions, "What is the patient's age?") {
		t.Error("age question should be suppressed")
	}
}

func TestQuestionsRiskConditionalChecks(t *testing.T) {
	// Demographics and histories are documented, so the risk-only checks
	// land inside the question cap when the risk flag is set.
	text := "Female patient, 34 years old; present illness timeline documented; " +
		"past psychiatric history reviewed; past medical medications reviewed; " +
		"family history negative; social history with occupation noted."

	violenceQ := "Has the patient expressed any violent thoughts or intentions toward others?"

	withoutRisk := Questions(text, false)
	if contains(withoutRisk, violenceQ) {
		t.Error("risk-only question present without risk flag")
	}

	withRisk := Questions(text, true)
	if !contains(withRisk, violenceQ) {
		t.Errorf("risk-only question absent despite risk flag: %v", withRisk)
	}
	if !contains(withRisk, "Has the patient expressed any suicidal thoughts, plans, or intent? If so, what are the specific details?") {
		t.Errorf("suicidality risk question absent despite risk flag: %v", withRisk)
	}
}

func TestQuestionsCapTruncatesLateRiskChecks(t *testing.T) {
	// Sparse note: all seven unconditional gaps fire first, so only the
	// first risk-only question fits under the cap.
	withRisk := Questions("Patient attended session.", true)

	if len(withRisk) != MaxQuestions {
		t.Fatalf("len = %d, want %d", len(withRisk), MaxQuestions)
	}
	if withRisk[MaxQuestions-1] != "Has the patient expressed any suicidal thoughts, plans, or intent? If so, what are the specific details?" {
		t.Errorf("last question = %q, want the suicidality risk question", withRisk[MaxQuestions-1])
	}
	if contains(withRisk, "Has the patient expressed any violent thoughts or intentions toward others?") {
		t.Error("violence question should be truncated by the cap for a sparse note")
	}
}

func TestQuestionsBoundAndUnique(t *testing.T) {
	inputs := []struct {
		text string
		risk bool
	}{
		{"", true},
		{"", false},
		{"Patient attended.", true},
		{"Female, 34 years old, full history documented including mental status exam, physical appearance, treatment plan, family history, social history, past medical, past psychiatric, present illness timeline.", false},
	}

	for _, in := range inputs {
		questions := Questions(in.text, in.risk)
		if len(questions) > MaxQuestions {
			t.Errorf("len = %d, want <= %d", len(questions), MaxQuestions)
		}
		seen := make(map[string]bool)
		for _, q := range questions {
			if seen[q] {
				t.Errorf("duplicate question %q", q)
			}
			seen[q] = true
		}
	}
}

func TestQuestionsStandardPaddingAlwaysConsidered(t *testing.T) {
	// Fully documented note: gaps all satisfied, so the list is exactly the
	// standard questions.
	text := "Female, 34 years old; present illness timeline documented; past psychiatric hospitalization; past medical medications reviewed; family history negative; social history with occupation; mental status exam completed; physical appearance unremarkable; treatment plan agreed."
	questions := Questions(text, false)

	if len(questions) != len(StandardQuestions) {
		t.Fatalf("len = %d, want %d standard questions: %v", len(questions), len(StandardQuestions), questions)
	}
	for i, q := range StandardQuestions {
		if questions[i] != q {
			t.Errorf("questions[%d] = %q, want %q", i, questions[i], q)
		}
	}
}
