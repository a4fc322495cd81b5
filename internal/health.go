package internal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	defaultMaxFailureRatePercent = 10.0
	minSamplesForFailureRate     = 20
)

// HealthChecker judges codec health from its metrics
type HealthChecker struct {
	metrics               *MetricsCollector
	maxFailureRatePercent float64
}

// NewHealthChecker creates a health checker. A rate outside (0, 100] selects
// the default threshold.
func NewHealthChecker(metrics *MetricsCollector, maxFailureRatePercent float64) *HealthChecker {
	if maxFailureRatePercent <= 0 || maxFailureRatePercent > 100 {
		maxFailureRatePercent = defaultMaxFailureRatePercent
	}
	return &HealthChecker{
		metrics:               metrics,
		maxFailureRatePercent: maxFailureRatePercent,
	}
}

// CheckHealth performs health checks and returns overall status
func (hc *HealthChecker) CheckHealth() HealthStatus {
	checks := map[string]CheckResult{
		"metrics": hc.checkMetrics(),
	}
	if hc.metrics != nil {
		m := hc.metrics.GetMetrics()
		checks["parse_failures"] = hc.checkFailureRate("parse", m.Parses, m.ParseFailures)
		checks["print_failures"] = hc.checkFailureRate("print", m.Prints, m.PrintFailures)
	}

	overall := true
	for _, result := range checks {
		if !result.Healthy {
			overall = false
			break
		}
	}

	return HealthStatus{
		Timestamp: time.Now(),
		Healthy:   overall,
		Checks:    checks,
	}
}

func (hc *HealthChecker) checkMetrics() CheckResult {
	if hc.metrics == nil {
		return CheckResult{Healthy: false, Message: "Metrics collector not initialized"}
	}
	m := hc.metrics.GetMetrics()
	return CheckResult{
		Healthy: true,
		Message: fmt.Sprintf("Metrics healthy: %d parses, %d prints", m.Parses, m.Prints),
	}
}

// checkFailureRate fails once enough samples exist and the share of failed
// operations exceeds the threshold
func (hc *HealthChecker) checkFailureRate(op string, total, failed int64) CheckResult {
	if total < minSamplesForFailureRate {
		return CheckResult{
			Healthy: true,
			Message: fmt.Sprintf("Too few %s operations to judge (%d)", op, total),
		}
	}

	rate := float64(failed) / float64(total) * 100.0
	if rate > hc.maxFailureRatePercent {
		return CheckResult{
			Healthy: false,
			Message: fmt.Sprintf("High %s failure rate: %.2f%% (limit: %.1f%%)", op, rate, hc.maxFailureRatePercent),
		}
	}
	return CheckResult{
		Healthy: true,
		Message: fmt.Sprintf("%s failure rate: %.2f%% (%d/%d)", op, rate, failed, total),
	}
}

// HealthStatus represents the health status of a codec
type HealthStatus struct {
	Timestamp time.Time              `json:"timestamp"`
	Healthy   bool                   `json:"healthy"`
	Checks    map[string]CheckResult `json:"checks"`
}

// CheckResult represents the result of a single health check
type CheckResult struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

// GetSummary returns a formatted summary of the health status
func (hs *HealthStatus) GetSummary() string {
	status := "HEALTHY"
	if !hs.Healthy {
		status = "UNHEALTHY"
	}

	var b strings.Builder
	b.WriteString("Health Status: ")
	b.WriteString(status)
	b.WriteString(" (checked at ")
	b.WriteString(hs.Timestamp.Format(time.RFC3339))
	b.WriteString(")\n")

	names := make([]string, 0, len(hs.Checks))
	for name := range hs.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result := hs.Checks[name]
		if result.Healthy {
			b.WriteString("  ✓ ")
		} else {
			b.WriteString("  ✗ ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(result.Message)
		b.WriteByte('\n')
	}
	return b.String()
}

// GetFailedChecks returns the names of failed checks in sorted order
func (hs *HealthStatus) GetFailedChecks() []string {
	var failed []string
	for name, result := range hs.Checks {
		if !result.Healthy {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}
