package events

// Event is one scheduled game as normalized from the scoreboard endpoint.
// Field values stay string-typed to match the wire format; the timestamp
// keeps the upstream "YYYY-MM-DD HH:MM" shape until the merge stage splits it.
type Event struct {
	ID         string `json:"event_id"`
	Timestamp  string `json:"event_date"`
	AwayTeamID string `json:"away_team_id"`
	HomeTeamID string `json:"home_team_id"`
}
