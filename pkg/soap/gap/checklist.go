package gap

// Check is one information-gap heuristic: when none of the markers appear in
// the lower-cased note text, the question is asked. RiskOnly checks are
// evaluated only when the risk analyzer found safety concerns.
type Check struct {
	Markers  []string
	Question string
	RiskOnly bool
}

// Checklist is the fixed ordered gap checklist; question order in the output
// follows this order.
var Checklist = []Check{
	{
		Markers:  []string{"gender", "male", "female", "non-binary"},
		Question: "What is the patient's gender identity?",
	},
	{
		Markers:  []string{"age", "years old", "year-old"},
		Question: "What is the patient's age?",
	},
	{
		Markers:  []string{"present illness", "current symptoms", "symptoms started", "timeline"},
		Question: "Can you provide a detailed timeline of when the current symptoms began and how they have progressed?",
	},
	{
		Markers:  []string{"past psychiatric", "previous diagnosis", "prior treatment", "hospitalization"},
		Question: "Does the patient have any previous psychiatric diagnoses, treatments, or hospitalizations?",
	},
	{
		Markers:  []string{"past medical", "medical conditions", "medications", "surgeries"},
		Question: "What is the patient's past medical history, including current medications, medical conditions, or surgeries?",
	},
	{
		Markers:  []string{"family history", "family mental health", "parents", "siblings"},
		Question: "Is there any family history of mental health conditions, substance abuse, or psychiatric disorders?",
	},
	{
		Markers:  []string{"social history", "occupation", "living situation", "relationships", "substance use"},
		Question: "What is the patient's social history including occupation, living situation, relationships, and any substance use?",
	},
	{
		Markers:  []string{"suicidal ideation", "suicide", "kill myself"},
		Question: "Has the patient expressed any suicidal thoughts, plans, or intent? If so, what are the specific details?",
		RiskOnly: true,
	},
	{
		Markers:  []string{"self-harm", "cutting", "self-injury"},
		Question: "Has the patient engaged in any self-harm behaviors? If so, what methods and frequency?",
		RiskOnly: true,
	},
	{
		Markers:  []string{"violence", "homicidal", "harm others"},
		Question: "Has the patient expressed any violent thoughts or intentions toward others?",
		RiskOnly: true,
	},
	{
		Markers:  []string{"substance abuse", "alcohol", "drugs", "substance use"},
		Question: "What is the patient's current and past substance use history, including alcohol, drugs, and prescription medications?",
		RiskOnly: true,
	},
	{
		Markers:  []string{"mental status", "mse"},
		Question: "Can you provide a detailed Mental Status Examination including appearance, behavior, mood, affect, speech, thought process, thought content, perception, cognition, and insight?",
	},
	{
		Markers:  []string{"physical", "appearance", "behavior"},
		Question: "What are your physical observations of the patient including appearance, behavior, and any notable physical signs?",
	},
	{
		Markers:  []string{"treatment", "intervention", "plan"},
		Question: "What specific treatment recommendations or interventions are you considering for this patient?",
	},
}

// StandardQuestions pad the gap-driven questions up to the cap.
var StandardQuestions = []string{
	"Can you describe the thoughts you had about ending your life? Were there any specific plans or methods you considered?",
	"Have you experienced any changes in your appetite or weight recently, and how have you been managing food intake?",
	"What activities or social interactions, if any, have you been avoiding due to your current feelings?",
	"How do you feel about the idea of starting medication for your depression?",
	"Is there anyone in your support network you feel comfortable reaching out to during times of distress?",
}
