package chalk

import "encoding/json"

// scoreboardResponse wraps the scoreboard payload. Results maps each date in
// the requested window to either a day object or an empty placeholder when no
// games were played, so days are decoded lazily.
type scoreboardResponse struct {
	Results map[string]json.RawMessage `json:"results"`
}

type scoreboardDay struct {
	Data map[string]eventResponse `json:"data"`
}

type eventResponse struct {
	EventDate    string `json:"event_date"`
	AwayTeamID   string `json:"away_team_id"`
	AwayNickName string `json:"away_nick_name"`
	AwayCity     string `json:"away_city"`
	HomeTeamID   string `json:"home_team_id"`
	HomeNickName string `json:"home_nick_name"`
	HomeCity     string `json:"home_city"`
}

type rankingsResponse struct {
	Results rankingResults `json:"results"`
}

type rankingResults struct {
	Data []rankingResponse `json:"data"`
}

type rankingResponse struct {
	TeamID         string `json:"team_id"`
	Team           string `json:"team"`
	NickName       string `json:"nick_name"`
	City           string `json:"city"`
	Rank           string `json:"rank"`
	AdjustedPoints string `json:"adjusted_points"`
}
