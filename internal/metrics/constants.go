package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Harvest metric names
const (
	MetricNameBanksCreated      = "harvest_banks_created_total"
	MetricNameBanksRespawned    = "harvest_banks_respawned_total"
	MetricNameBanksDepleted     = "harvest_banks_depleted_total"
	MetricNameBanksActive       = "harvest_banks_active"
	MetricNameHarvestsCompleted = "harvests_completed_total"
	MetricNameHarvestedAmount   = "harvested_amount_total"
	MetricNameHarvestsRefused   = "harvests_refused_total"
	MetricNameToolsBroken       = "harvest_tools_broken_total"
	MetricNameBonusesAwarded    = "harvest_bonuses_awarded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of events whose payload could not be recorded"

	HelpTextBanksCreated      = "Total number of resource banks created"
	HelpTextBanksRespawned    = "Total number of resource banks refilled after their respawn deadline"
	HelpTextBanksDepleted     = "Total number of resource banks drained to zero"
	HelpTextBanksActive       = "Number of resource banks created since startup"
	HelpTextHarvestsCompleted = "Total number of successful harvests"
	HelpTextHarvestedAmount   = "Total resources removed from banks"
	HelpTextHarvestsRefused   = "Total number of harvest attempts that yielded nothing"
	HelpTextToolsBroken       = "Total number of tools worn out by harvesting"
	HelpTextBonusesAwarded    = "Total number of bonus items found while harvesting"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelType       = "type"
	LabelDefinition = "definition"
	LabelItemType   = "item_type"
	LabelSystem     = "system"
	LabelReason     = "reason"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgEventPayloadInvalid = "Event payload could not be decoded for metrics"
)

// ============================================================================
// Errors
// ============================================================================

const (
	ErrMsgGatherFailed = "failed to gather metrics: %w"
	ErrMsgWriteFailed  = "failed to write metric family %s: %w"
)
