package adapter

import "time"

// Generation outcomes recorded by ReportMetrics.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

// ReportMetrics records report generation and cache behavior.
type ReportMetrics interface {
	ObserveGeneration(reportType, outcome string, duration time.Duration)
	RecordCacheLookup(hit bool)
	RecordEventPublish(success bool)
}
