package model

const (
	// StrategyStatic challenges are always-on and need no per-team instance.
	StrategyStatic = "static"
	// StrategyInstanced challenges require a per-team deployment before they
	// are reachable.
	StrategyInstanced = "instanced"
)

type Challenge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Solves      int    `json:"solves"`
	// Attachments maps a display label to a download URL.
	Attachments map[string]string `json:"attachments"`
	Strategy    string            `json:"strategy"` // "static" | "instanced"
	// DeploymentID references this team's instance, when one exists.
	DeploymentID *string `json:"deployment_id"`
	Category     string  `json:"category"`
	// SolvedAt is nil while this team has not solved the challenge.
	SolvedAt *UTCTime `json:"solved_at"`
}

func (c *Challenge) Instanced() bool {
	return c.Strategy == StrategyInstanced
}

type ChallengeSolve struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SolvedAt UTCTime `json:"solved_at"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ChallengeGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AdminChallenge is the unredacted challenge view served to the admin panel.
type AdminChallenge struct {
	ID          int               `json:"id"`
	PublicID    string            `json:"public_id"`
	Name        string            `json:"name"`
	Author      string            `json:"author"`
	Description string            `json:"description"`
	PointsMin   int               `json:"points_min"`
	PointsMax   int               `json:"points_max"`
	Flag        string            `json:"flag"`
	Attachments map[string]string `json:"attachments"`
	Visible     bool              `json:"visible"`
	Category    Category          `json:"category"`
	Group       *ChallengeGroup   `json:"group"`
}
