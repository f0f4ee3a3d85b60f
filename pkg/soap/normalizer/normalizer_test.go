package normalizer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips emphasis markers",
			in:   "**SESSION SUMMARY:**\nPatient reports *stable* mood.",
			want: "SESSION SUMMARY:\nPatient reports stable mood.",
		},
		{
			name: "canonicalizes mixed case headers",
			in:   "Session Summary:\nBrief visit.\nAssessment:\nStable.",
			want: "SESSION SUMMARY:\nBrief visit.\nASSESSMENT:\nStable.",
		},
		{
			name: "keeps line-start headers intact",
			in:   "OBJECTIVE:\n- Mental Status Exam: alert\nASSESSMENT:\n- Primary Diagnosis: none",
			want: "OBJECTIVE:\n- Mental Status Exam: alert\nASSESSMENT:\n- Primary Diagnosis: none",
		},
		{
			name: "strips header token inside other section content",
			in:   "OBJECTIVE:\nPatient referenced the ASSESSMENT: from last week.",
			want: "OBJECTIVE:\nPatient referenced the from last week.",
		},
		{
			name: "leaves bare keywords alone",
			in:   "OBJECTIVE:\nThe plan discussed with family was acceptable.",
			want: "OBJECTIVE:\nThe plan discussed with family was acceptable.",
		},
		{
			name: "no headers yields trimmed text",
			in:   "  just a note with no structure  ",
			want: "just a note with no structure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeRemovesFollowUpBlock(t *testing.T) {
	in := "ASSESSMENT:\nStable presentation.\n\nFollow-up Questions:\n1. How is sleep?\n2. Any changes?\n\nPLAN:\n- Treatment Recommendations: continue therapy"
	got := Normalize(in)

	if strings.Contains(got, "Follow-up") {
		t.Errorf("follow-up block not removed: %q", got)
	}
	if !strings.Contains(got, "PLAN:") {
		t.Errorf("PLAN section lost while removing follow-up block: %q", got)
	}
	if !strings.Contains(got, "Stable presentation.") {
		t.Errorf("assessment content lost: %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"**Session Summary:** note with *markup*\nAssessment: something ASSESSMENT: twice",
		"OBJECTIVE:\ncontent mentioning PLAN: inline\n\nPLAN:\n- Follow-up Plan: next week",
		"no structure at all",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}
