package model

type Badge struct {
	Type     string `json:"type"`
	Obtained string `json:"obtained"`
	Chall    string `json:"chall"`
}

type ScorePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type EntryExtra struct {
	Badges []Badge `json:"badges"`
}

type LeaderboardEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	// ScoreHistory is ascending by date; charts consume it as-is.
	ScoreHistory []ScorePoint `json:"score_history"`
	Extra        EntryExtra   `json:"extra"`
}
