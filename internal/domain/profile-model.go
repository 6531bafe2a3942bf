package domain

import "time"

// Profile is the durable student record. ID doubles as the auth user id.
// Credential fields hold one scheme at a time: whenever the active scheme's
// values are written back, the alternate scheme's fields are nulled.
type Profile struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Country      string  `json:"country"`
	AvatarURL    *string `json:"avatar_url,omitempty"`

	EducationSystem *string  `gorm:"type:varchar(20)" json:"education_system,omitempty"`
	SSCGPA          *float64 `json:"ssc_gpa,omitempty"`
	HSCGPA          *float64 `json:"hsc_gpa,omitempty"`
	OLevelPoints    *int     `json:"o_level_points,omitempty"`
	ALevelPoints    *int     `json:"a_level_points,omitempty"`

	DateOfBirth          string `json:"date_of_birth"`
	Gender               string `json:"gender"`
	CountryOfBirth       string `json:"country_of_birth"`
	CitizenshipStatus    string `json:"citizenship_status"`
	CitizenshipCountry   string `json:"citizenship_country"`
	SecondaryCitizenship string `json:"secondary_citizenship"`
	PassportNumber       string `json:"passport_number"`
	AlternatePhone       string `json:"alternate_phone"`

	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
