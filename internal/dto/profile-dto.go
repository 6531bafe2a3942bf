package dto

// UpdateProfileRequest is a PATCH-style payload: nil fields are left alone.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Country  *string `json:"country,omitempty"`

	DateOfBirth          *string `json:"date_of_birth,omitempty"`
	Gender               *string `json:"gender,omitempty"`
	CountryOfBirth       *string `json:"country_of_birth,omitempty"`
	CitizenshipStatus    *string `json:"citizenship_status,omitempty"`
	CitizenshipCountry   *string `json:"citizenship_country,omitempty"`
	SecondaryCitizenship *string `json:"secondary_citizenship,omitempty"`
	PassportNumber       *string `json:"passport_number,omitempty"`
	AlternatePhone       *string `json:"alternate_phone,omitempty"`

	EmergencyContactName         *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone,omitempty"`
}

type AcademicRecordRequest struct {
	ExamType       string  `json:"exam_type"`
	Board          string  `json:"board"`
	Institution    string  `json:"institution"`
	GPA            float64 `json:"gpa"`
	Year           int     `json:"year"`
	CertificateURL *string `json:"certificate_url,omitempty"`
}

type EssayRequest struct {
	EssayPrompt string `json:"essay_prompt"`
	Content     string `json:"content"`
}
