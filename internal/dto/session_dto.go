package dto

import (
	"time"

	"clinical-notes-be/pkg/soap"
	"clinical-notes-be/pkg/soap/risk"
)

type ProcessSessionRequest struct {
	SessionInput string `json:"sessionInput" validate:"required"`
	PatientId    string `json:"patientId" validate:"required"`
}

type RiskFlagResponse struct {
	Level       string `json:"level"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type AssessmentCategories struct {
	PrimaryDiagnosis      string `json:"primaryDiagnosis"`
	DifferentialDiagnoses string `json:"differentialDiagnoses"`
	RiskAssessment        string `json:"riskAssessment"`
}

type AssessmentSection struct {
	Content    string               `json:"content"`
	Categories AssessmentCategories `json:"categories"`
}

type PlanCategories struct {
	ImmediateInterventions   string `json:"immediateInterventions"`
	TreatmentRecommendations string `json:"treatmentRecommendations"`
	FollowUpPlan             string `json:"followUpPlan"`
	SafetyMeasures           string `json:"safetyMeasures"`
}

type PlanSection struct {
	Content    string         `json:"content"`
	Categories PlanCategories `json:"categories"`
}

type ObjectiveCategories struct {
	MentalStatusExam       string `json:"mentalStatusExam"`
	PhysicalObservations   string `json:"physicalObservations"`
	BehavioralObservations string `json:"behavioralObservations"`
}

type ObjectiveSection struct {
	Content    string              `json:"content"`
	Categories ObjectiveCategories `json:"categories"`
}

type PatientInfoCategories struct {
	Gender                 string `json:"gender"`
	Age                    string `json:"age"`
	PresentIllnessHistory  string `json:"presentIllnessHistory"`
	PastPsychiatricHistory string `json:"pastPsychiatricHistory"`
	PastMedicalHistory     string `json:"pastMedicalHistory"`
	FamilyHistory          string `json:"familyHistory"`
	SocialHistory          string `json:"socialHistory"`
}

type PatientInfoSection struct {
	Content    string                `json:"content"`
	Categories PatientInfoCategories `json:"categories"`
}

// ProcessSessionResponse is the caller-facing result of one processed
// session. Every field is always present; absent data is represented by
// the documented defaults, never by null.
type ProcessSessionResponse struct {
	SessionNoteId     string             `json:"sessionNoteId,omitempty"`
	StructuredNote    string             `json:"structuredNote"`
	RiskFlags         []RiskFlagResponse `json:"riskFlags"`
	SessionSummary    string             `json:"sessionSummary"`
	KeySymptoms       []string           `json:"keySymptoms"`
	Diagnoses         []string           `json:"diagnoses"`
	FollowUpQuestions []string           `json:"followUpQuestions"`
	FlaggedWords      []string           `json:"flaggedWords"`
	Assessment        AssessmentSection  `json:"assessment"`
	Plan              PlanSection        `json:"plan"`
	Objective         ObjectiveSection   `json:"objective"`
	PatientInfo       PatientInfoSection `json:"patientInfo"`
}

const (
	DefaultStructuredNote    = "Clinical note could not be generated."
	DefaultSessionSummary    = "Session summary not available."
	DefaultAssessmentContent = "No assessment data available."
	DefaultPlanContent       = "No plan data available."
)

// NewDefaultProcessSessionResponse builds the fully-defaulted payload used
// when the upstream generator fails. It satisfies the complete output schema
// so the caller always receives a renderable result.
func NewDefaultProcessSessionResponse() *ProcessSessionResponse {
	return &ProcessSessionResponse{
		StructuredNote:    DefaultStructuredNote,
		RiskFlags:         []RiskFlagResponse{},
		SessionSummary:    DefaultSessionSummary,
		KeySymptoms:       []string{},
		Diagnoses:         []string{},
		FollowUpQuestions: []string{},
		FlaggedWords:      []string{},
		Assessment:        AssessmentSection{Content: DefaultAssessmentContent},
		Plan:              PlanSection{Content: DefaultPlanContent},
		Objective:         ObjectiveSection{},
		PatientInfo:       PatientInfoSection{},
	}
}

// FromEngineResult maps the engine output onto the response contract,
// applying the boundary defaults for anything the engine left empty.
func FromEngineResult(res *soap.Result) *ProcessSessionResponse {
	out := NewDefaultProcessSessionResponse()
	if res == nil {
		return out
	}

	if res.StructuredNote != "" {
		out.StructuredNote = res.StructuredNote
	}
	if res.SessionSummary != "" {
		out.SessionSummary = res.SessionSummary
	}

	out.RiskFlags = mapRiskFlags(res.RiskFlags)
	out.KeySymptoms = orEmpty(res.KeySymptoms)
	out.Diagnoses = orEmpty(res.Diagnoses)
	out.FollowUpQuestions = orEmpty(res.FollowUpQuestions)
	out.FlaggedWords = orEmpty(res.FlaggedTerms)

	out.Assessment = AssessmentSection{
		Content: sectionContent(res.Assessment, DefaultAssessmentContent),
		Categories: AssessmentCategories{
			PrimaryDiagnosis:      res.Assessment.Category("primaryDiagnosis"),
			DifferentialDiagnoses: res.Assessment.Category("differentialDiagnoses"),
			RiskAssessment:        res.Assessment.Category("riskAssessment"),
		},
	}
	out.Plan = PlanSection{
		Content: sectionContent(res.Plan, DefaultPlanContent),
		Categories: PlanCategories{
			ImmediateInterventions:   res.Plan.Category("immediateInterventions"),
			TreatmentRecommendations: res.Plan.Category("treatmentRecommendations"),
			FollowUpPlan:             res.Plan.Category("followUpPlan"),
			SafetyMeasures:           res.Plan.Category("safetyMeasures"),
		},
	}
	out.Objective = ObjectiveSection{
		Content: res.Objective.Content,
		Categories: ObjectiveCategories{
			MentalStatusExam:       res.Objective.Category("mentalStatusExam"),
			PhysicalObservations:   res.Objective.Category("physicalObservations"),
			BehavioralObservations: res.Objective.Category("behavioralObservations"),
		},
	}
	out.PatientInfo = PatientInfoSection{
		Content: res.PatientInfo.Content,
		Categories: PatientInfoCategories{
			Gender:                 res.PatientInfo.Category("gender"),
			Age:                    res.PatientInfo.Category("age"),
			PresentIllnessHistory:  res.PatientInfo.Category("presentIllnessHistory"),
			PastPsychiatricHistory: res.PatientInfo.Category("pastPsychiatricHistory"),
			PastMedicalHistory:     res.PatientInfo.Category("pastMedicalHistory"),
			FamilyHistory:          res.PatientInfo.Category("familyHistory"),
			SocialHistory:          res.PatientInfo.Category("socialHistory"),
		},
	}
	return out
}

func mapRiskFlags(flags []risk.Flag) []RiskFlagResponse {
	out := make([]RiskFlagResponse, 0, len(flags))
	for _, f := range flags {
		out = append(out, RiskFlagResponse{
			Level:       string(f.Level),
			Category:    f.Category,
			Description: f.Description,
		})
	}
	return out
}

func sectionContent(s soap.SectionResult, fallback string) string {
	if s.Content != "" {
		return s.Content
	}
	return fallback
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// SessionNoteResponse is the stored-note view returned by the read endpoints.
type SessionNoteResponse struct {
	Id        string                  `json:"id"`
	PatientId string                  `json:"patientId"`
	RiskLevel string                  `json:"riskLevel"`
	Result    *ProcessSessionResponse `json:"result,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// SimilarSessionResponse is one hit from the similar-session search.
type SimilarSessionResponse struct {
	SessionNoteId string  `json:"sessionNoteId"`
	Document      string  `json:"document"`
	ChunkIndex    int     `json:"chunkIndex"`
	Similarity    float64 `json:"similarity"`
}

// ProcessStatusResponse reports pipeline progress for one session note.
type ProcessStatusResponse struct {
	SessionNoteId string    `json:"sessionNoteId"`
	Stage         string    `json:"stage"`
	Error         string    `json:"error,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
