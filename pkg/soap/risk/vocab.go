package risk

// KeywordGroup is one safety-keyword category. Groups are evaluated in slice
// order; the order doubles as category priority when several match.
type KeywordGroup struct {
	Category string
	Keywords []string
}

// SafetyGroups is the fixed safety vocabulary the analyzer scans for. Each
// matched group yields its own risk flag; the first matched group is the
// primary concern.
var SafetyGroups = []KeywordGroup{
	{
		Category: "Suicide Risk",
		Keywords: []string{"suicidal", "suicide", "kill myself", "end my life"},
	},
	{
		Category: "Self-Harm",
		Keywords: []string{"self-harm", "cutting"},
	},
	{
		Category: "Violence Risk",
		Keywords: []string{"violence", "homicidal", "harm others"},
	},
	{
		Category: "Substance Abuse",
		Keywords: []string{"substance abuse", "alcohol", "drugs", "overdose"},
	},
	{
		Category: "Risk Assessment",
		Keywords: []string{"active psychosis", "command hallucinations", "dangerous behavior"},
	},
}

// FlaggedTerms is the highlighting vocabulary. It overlaps the safety
// vocabulary but also carries display-only terms (weapons, pills, ...) that
// never drive a risk flag on their own.
var FlaggedTerms = []string{
	"suicidal", "suicide", "kill myself", "end my life", "self-harm", "cutting",
	"violence", "homicidal", "harm others", "active psychosis", "command hallucinations",
	"substance abuse", "alcohol", "drugs", "overdose", "dangerous behavior",
	"hopelessness", "worthless", "no reason to live", "better off dead",
	"plan to die", "means to die", "intent to die", "preparations",
	"hallucinations", "delusions", "paranoia", "aggressive", "violent thoughts",
	"poison", "weapons", "guns", "knives", "pills",
}

// Symptoms and Diagnoses are short membership-test vocabularies; matches are
// reported in vocabulary order, not document order.
var Symptoms = []string{
	"depression", "anxiety", "hopelessness", "isolation", "insomnia",
	"poor appetite", "suicidal ideation", "mood swings",
}

var Diagnoses = []string{
	"Major Depressive Disorder", "Generalized Anxiety Disorder",
	"Adjustment Disorder", "Sleep Disturbance",
}
