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

// Game metric names
const (
	MetricNameSpinsTotal      = "slots_spins_total"
	MetricNameForcedJackpots  = "slots_forced_jackpots_total"
	MetricNameCoinsWagered    = "slots_coins_wagered_total"
	MetricNameCoinsAwarded    = "slots_coins_awarded_total"
	MetricNameResetsTotal     = "slots_resets_total"
	MetricNameSessionsCreated = "slots_sessions_created_total"
	MetricNameSessionsActive  = "slots_sessions_active"
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

// Game metric help text
const (
	HelpTextSpinsTotal      = "Total number of spin requests by outcome"
	HelpTextForcedJackpots  = "Total number of jackpots forced by the spin cadence"
	HelpTextCoinsWagered    = "Total coins deducted as spin cost"
	HelpTextCoinsAwarded    = "Total coins paid out as rewards"
	HelpTextResetsTotal     = "Total number of game resets"
	HelpTextSessionsCreated = "Total number of game sessions created"
	HelpTextSessionsActive  = "Current number of live game sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
