package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Venture metric names
const (
	MetricNameTurnsResolved       = "venture_turns_resolved_total"
	MetricNameTurnsSkipped        = "venture_turns_skipped_total"
	MetricNameVentureTransitions  = "venture_transitions_total"
	MetricNameCoverageOutcomes    = "venture_coverage_outcomes_total"
	MetricNameGoldIncome          = "venture_gold_income_total"
	MetricNameGoldOutgo           = "venture_gold_outgo_total"
	MetricNameBoonsPurchased      = "venture_boons_purchased_total"
	MetricNameTreasuryClaimed     = "venture_treasury_claimed_gold_total"
	MetricNameActorTurnDuration   = "venture_actor_turn_duration_seconds"
	MetricNameDuplicateTriggers   = "venture_duplicate_triggers_total"
	MetricNameTurnQueueRejections = "venture_turn_queue_rejections_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"
)

// Venture metric help text
const (
	HelpTextTurnsResolved       = "Venture turns resolved by economic direction"
	HelpTextTurnsSkipped        = "Venture turns skipped by reason"
	HelpTextVentureTransitions  = "Venture growth, degrade and failure transitions"
	HelpTextCoverageOutcomes    = "Deficit coverage outcomes by status"
	HelpTextGoldIncome          = "Gold earned by venture profit rolls"
	HelpTextGoldOutgo           = "Gold lost to venture loss rolls"
	HelpTextBoonsPurchased      = "Boons purchased from venture treasuries"
	HelpTextTreasuryClaimed     = "Gold claimed from venture treasuries"
	HelpTextActorTurnDuration   = "Time spent resolving one actor-turn"
	HelpTextDuplicateTriggers   = "Turn triggers ignored because the actor-turn was already processed"
	HelpTextTurnQueueRejections = "Turn triggers rejected because the queue was full or stopped"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelDirection = "direction"
	LabelReason    = "reason"
)

// Turn direction label values
const (
	DirectionProfit    = "profit"
	DirectionLoss      = "loss"
	DirectionBreakEven = "break_even"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TurnDurationBuckets spans instant local turns up to turns waiting on a prompt
var TurnDurationBuckets = []float64{.01, .05, .1, .5, 1, 5, 15, 30, 60, 120, 180, 300}

// Log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded for metrics"
)
