// Package metrics defines the sink interface that receives the statistics of
// each timetable run. Sinks are created from configuration through a factory
// registry; several configured sinks are combined into a MultiSink.
package metrics
