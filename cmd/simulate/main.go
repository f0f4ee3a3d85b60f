package main

import (
	"flag"
	"fmt"
	"os"

	"clinical-notes-be/pkg/soap"

	"github.com/fatih/color"
)

// Debug harness: runs the parsing engine against a sample (or supplied)
// generated note and prints every extraction stage, without the server,
// database, or LLM in the loop.

const sampleNote = `SESSION SUMMARY:
Patient presented with worsening depressive symptoms and passive suicidal ideation. Medium risk identified; safety plan reviewed and follow-up scheduled.

PATIENT INFORMATION:
- Gender: Female
- Age: 34
- Present Illness History: Two months of low mood, poor sleep, reduced appetite.
- Social History: lives alone, works as an accountant

OBJECTIVE:
- Mental Status Exam: alert, oriented x3, flat affect, slowed speech
- Behavioral Observations: poor eye contact, tearful at times

ASSESSMENT:
- Primary Diagnosis: Major Depressive Disorder, moderate
- Risk Assessment: MEDIUM risk. Passive suicidal ideation without plan or intent.

PLAN:
- Immediate Interventions: safety plan reviewed with patient
- Treatment Recommendations: start SSRI, weekly CBT
- Follow-up Plan: review in one week
- Safety Measures: crisis line provided`

func main() {
	file := flag.String("file", "", "path to a generated note to parse (default: built-in sample)")
	flag.Parse()

	text := sampleNote
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			color.Red("Failed to read %s: %v", *file, err)
			os.Exit(1)
		}
		text = string(data)
	}

	color.Cyan("🔍 Clinical Note Engine Simulation\n")

	engine := soap.NewEngine()
	result := engine.Process(text)

	color.Yellow("\n[1] Session Summary")
	fmt.Println(orDefault(result.SessionSummary, "(not found)"))

	color.Yellow("\n[2] Risk Flags")
	for _, f := range result.RiskFlags {
		line := fmt.Sprintf("  %-8s %-20s %s", f.Level, f.Category, f.Description)
		switch f.Level {
		case "high":
			color.Red(line)
		case "medium":
			color.Yellow(line)
		default:
			color.Green(line)
		}
	}

	color.Yellow("\n[3] Flagged Words")
	fmt.Printf("  %v\n", result.FlaggedTerms)

	color.Yellow("\n[4] Key Symptoms / Diagnoses")
	fmt.Printf("  symptoms:  %v\n", result.KeySymptoms)
	fmt.Printf("  diagnoses: %v\n", result.Diagnoses)

	printSection("PATIENT INFORMATION", result.PatientInfo)
	printSection("OBJECTIVE", result.Objective)
	printSection("ASSESSMENT", result.Assessment)
	printSection("PLAN", result.Plan)

	color.Yellow("\n[9] Follow-up Questions (%d)", len(result.FollowUpQuestions))
	for i, q := range result.FollowUpQuestions {
		fmt.Printf("  %d. %s\n", i+1, q)
	}

	color.Green("\n✅ Done")
}

func printSection(name string, sec soap.SectionResult) {
	color.Yellow("\n[·] %s (found=%v categorized=%v)", name, sec.Found, sec.HasCategorizedData())
	if !sec.Found {
		return
	}
	for key, value := range sec.Categories {
		if value == "" {
			continue
		}
		fmt.Printf("  %-26s %s\n", key+":", value)
	}
	if !sec.HasCategorizedData() {
		fmt.Printf("  (uncategorized) %s\n", sec.Content)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
