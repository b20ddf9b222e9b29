package rankings

// Ranking is one team's point-in-time ranking snapshot from the rankings
// endpoint. Rank and adjusted points arrive as decimal text and are carried
// through verbatim.
type Ranking struct {
	TeamID         string `json:"team_id"`
	NickName       string `json:"nick_name"`
	City           string `json:"city"`
	Rank           string `json:"rank"`
	AdjustedPoints string `json:"adjusted_points"`
}
