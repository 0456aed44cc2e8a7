package model

const (
	ProfilePrivate = "private"
	ProfilePublic  = "public"
)

type Solve struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Points   int     `json:"points"`
	SolvedAt UTCTime `json:"solved_at"`
}

// Profile is a team's scoreboard view. The backend decides per request
// whether the caller gets the private view (own team, includes email) or the
// public one; the Type tag records which was sent.
type Profile struct {
	Type     string  `json:"type"` // "private" | "public"
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"` // private view only
	Division *string `json:"division"`
	Score    int     `json:"score"`
	Rank     int     `json:"rank"`
	Solves   []Solve `json:"solves"`
}

func (p *Profile) Private() bool {
	return p.Type == ProfilePrivate
}
