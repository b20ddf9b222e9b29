package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRunID      = "run_id"
	FieldStage      = "stage"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
