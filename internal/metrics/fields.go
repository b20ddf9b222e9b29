package metrics

// Attribute keys shared by the OTLP instruments.
const (
	AttrProvider = "provider"
	AttrStage    = "stage"
)

// Stage names recorded by the pipeline.
const (
	StageFetchEvents   = "fetch_events"
	StageFetchRankings = "fetch_rankings"
	StageMerge         = "merge"
	StageWrite         = "write"
)
