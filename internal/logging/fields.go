package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"

	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"

	// FieldImpact states the user-facing consequence of a warning.
	FieldImpact = "impact"

	// FieldEntity names the catalog entity kind being resolved (booster, site, payload, core).
	FieldEntity = "entity"

	// FieldEntityID is the catalog identifier being resolved.
	FieldEntityID = "entity_id"

	// FieldFlightNumber identifies the launch a log line refers to.
	FieldFlightNumber = "flight_number"

	// FieldRunID identifies a persisted pipeline run.
	FieldRunID = "run_id"
)
