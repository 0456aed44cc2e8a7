package model

type Team struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Division  *string `json:"division,omitempty"`
	CreatedAt UTCTime `json:"created_at"`
}

const (
	VerificationTeamRegistration = "team_registration"
	VerificationEmailUpdate      = "email_update"
)

// VerificationDetails describes what a pending verification token is for,
// so the verify page can render the right copy before the user confirms.
type VerificationDetails struct {
	Type     string `json:"type"` // "team_registration" | "email_update"
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`     // team_registration
	NewEmail string `json:"new_email,omitempty"` // email_update
}

// EmailChangeNotice is returned by the profile update endpoint when the email
// changed: the name update (if any) applied immediately, but the new address
// only takes effect after the verification mail is confirmed.
type EmailChangeNotice struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}
