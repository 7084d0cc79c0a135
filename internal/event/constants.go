package event

// EventSchemaVersion is the version stamped on every payload type in this package
const EventSchemaVersion = "1.0"

// MetadataKeyAttemptID correlates events with the harvest attempt's log lines
const MetadataKeyAttemptID = "attempt_id"

const ErrMsgHandlersFailedFormat = "%d handler(s) failed for event %s: %w"
