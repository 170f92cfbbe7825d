package models

// WeekMatchup is a transient, per-side view of one game: team's win
// probability against a named opponent in a given week. Every game
// with a win probability emits two of these, one from each side.
type WeekMatchup struct {
	Week     int     `json:"week"`
	Team     string  `json:"team"`
	Opponent string  `json:"opponent"`
	IsHome   bool    `json:"is_home"`
	WinProb  float64 `json:"win_prob"`
}
