package dto

// EligibilityCheckRequest carries the raw credential input exactly as typed.
// Parsing happens at evaluation time so malformed input is reported, not
// silently zeroed.
type EligibilityCheckRequest struct {
	EducationSystem string `json:"education_system"`
	SSCGPA          string `json:"ssc_gpa"`
	HSCGPA          string `json:"hsc_gpa"`
	OLevelPoints    string `json:"o_level_points"`
	ALevelPoints    string `json:"a_level_points"`
}

// ApplyRequest is the eligibility-checked application intake payload: the same
// credentials that were evaluated, plus the chosen admission date.
type ApplyRequest struct {
	EligibilityCheckRequest
	AdmissionDate string `json:"admission_date"`
}

type UpdateApplicationRequest struct {
	Status        *string `json:"status,omitempty"`
	AdmissionDate *string `json:"admission_date,omitempty"`
}

type SetStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// EmailPreview is the composed notification payload returned to the admin UI.
// Composition is the guarantee here; delivery belongs to the mail worker.
type EmailPreview struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type StatusChangeResponse struct {
	ApplicationID string        `json:"application_id"`
	Status        string        `json:"status"`
	Email         *EmailPreview `json:"email,omitempty"`
}
