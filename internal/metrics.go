package internal

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// MetricsCollector counts parse and print operations for a codec
type MetricsCollector struct {
	parses         atomic.Int64
	parseFailures  atomic.Int64
	prints         atomic.Int64
	printFailures  atomic.Int64
	bytesParsed    atomic.Int64
	bytesPrinted   atomic.Int64
	totalParseTime atomic.Int64
	maxParseTime   atomic.Int64
	errorsByType   sync.Map
	startTime      time.Time
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{startTime: time.Now()}
}

// RecordParse records a completed parse of size bytes
func (mc *MetricsCollector) RecordParse(duration time.Duration, size int, success bool) {
	mc.parses.Inc()
	if success {
		mc.bytesParsed.Add(int64(size))
	} else {
		mc.parseFailures.Inc()
	}

	durationNs := duration.Nanoseconds()
	if durationNs > 0 {
		mc.totalParseTime.Add(durationNs)
		updateMax(&mc.maxParseTime, durationNs)
	}
}

// RecordPrint records a serialization producing size bytes
func (mc *MetricsCollector) RecordPrint(size int, success bool) {
	mc.prints.Inc()
	if success {
		mc.bytesPrinted.Add(int64(size))
	} else {
		mc.printFailures.Inc()
	}
}

// RecordError records an error by type
func (mc *MetricsCollector) RecordError(errorType string) {
	actual, _ := mc.errorsByType.LoadOrStore(errorType, atomic.NewInt64(0))
	actual.(*atomic.Int64).Inc()
}

// GetMetrics returns a snapshot of the counters
func (mc *MetricsCollector) GetMetrics() Metrics {
	parses := mc.parses.Load()
	totalTime := mc.totalParseTime.Load()

	var avgParseTime time.Duration
	if parses > 0 {
		avgParseTime = time.Duration(totalTime / parses)
	}

	errorsByType := make(map[string]int64)
	mc.errorsByType.Range(func(key, value any) bool {
		errorsByType[key.(string)] = value.(*atomic.Int64).Load()
		return true
	})

	return Metrics{
		Parses:         parses,
		ParseFailures:  mc.parseFailures.Load(),
		Prints:         mc.prints.Load(),
		PrintFailures:  mc.printFailures.Load(),
		BytesParsed:    mc.bytesParsed.Load(),
		BytesPrinted:   mc.bytesPrinted.Load(),
		TotalParseTime: time.Duration(totalTime),
		AvgParseTime:   avgParseTime,
		MaxParseTime:   time.Duration(mc.maxParseTime.Load()),
		Uptime:         time.Since(mc.startTime),
		ErrorsByType:   errorsByType,
	}
}

// GetSummary returns a formatted summary of metrics
func (mc *MetricsCollector) GetSummary() string {
	m := mc.GetMetrics()

	return fmt.Sprintf(`Metrics Summary:
  Parses: %d total (%d failed), %d bytes
  Prints: %d total (%d failed), %d bytes
  Parse time: avg %v, max %v
  Uptime: %v`,
		m.Parses, m.ParseFailures, m.BytesParsed,
		m.Prints, m.PrintFailures, m.BytesPrinted,
		m.AvgParseTime, m.MaxParseTime,
		m.Uptime,
	)
}

// Metrics represents collected codec metrics
type Metrics struct {
	Parses        int64 `json:"parses"`
	ParseFailures int64 `json:"parse_failures"`
	Prints        int64 `json:"prints"`
	PrintFailures int64 `json:"print_failures"`
	BytesParsed   int64 `json:"bytes_parsed"`
	BytesPrinted  int64 `json:"bytes_printed"`

	TotalParseTime time.Duration `json:"total_parse_time"`
	AvgParseTime   time.Duration `json:"avg_parse_time"`
	MaxParseTime   time.Duration `json:"max_parse_time"`

	Uptime       time.Duration    `json:"uptime"`
	ErrorsByType map[string]int64 `json:"errors_by_type"`
}

// updateMax atomically updates target to value if value is greater
func updateMax(target *atomic.Int64, value int64) {
	for {
		current := target.Load()
		if value <= current || target.CompareAndSwap(current, value) {
			return
		}
	}
}
