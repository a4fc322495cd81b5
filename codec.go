package jsonvalue

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/cybergodev/jsonvalue/internal"
)

// Codec parses and prints values under one configuration and owns the
// logger and metrics for those operations. A Codec is safe for concurrent
// use; the values it produces are not.
type Codec struct {
	config  *Config
	logger  atomic.Pointer[slog.Logger]
	metrics *internal.MetricsCollector
	health  *internal.HealthChecker
}

var (
	defaultCodec   atomic.Pointer[Codec]
	defaultCodecMu sync.Mutex
)

// getDefaultCodec returns the package-level codec, creating it on first use
func getDefaultCodec() *Codec {
	if c := defaultCodec.Load(); c != nil {
		return c
	}

	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()

	if c := defaultCodec.Load(); c != nil {
		return c
	}
	c := NewCodec()
	defaultCodec.Store(c)
	return c
}

// SetDefaultCodec replaces the codec used by New, Parse and zero Values.
// A nil codec is ignored.
func SetDefaultCodec(codec *Codec) {
	if codec == nil {
		return
	}
	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()
	defaultCodec.Store(codec)
}

// NewCodec creates a codec with the given configuration.
// If no configuration is provided, uses default configuration.
func NewCodec(config ...*Config) *Codec {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}

	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	metrics := internal.NewMetricsCollector()
	c := &Codec{
		config:  cfg,
		metrics: metrics,
		health:  internal.NewHealthChecker(metrics, 0),
	}
	c.SetLogger(nil)
	return c
}

// Config returns a copy of the codec configuration
func (c *Codec) Config() *Config {
	return c.config.Clone()
}

// SetLogger sets a custom structured logger for the codec
func (c *Codec) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.logger.Store(logger.With("component", "jsonvalue-codec"))
}

// NewValue returns an empty value bound to this codec
func (c *Codec) NewValue() *Value {
	return &Value{codec: c}
}

// Parse parses text into a new value
func (c *Codec) Parse(text string) (*Value, error) {
	return c.ParseBytes([]byte(text))
}

// ParseBytes parses data into a new value
func (c *Codec) ParseBytes(data []byte) (*Value, error) {
	v := c.NewValue()
	if err := v.ParseBytes(data); err != nil {
		return nil, err
	}
	return v, nil
}

// wrap returns a value holding a new reference to n
func (c *Codec) wrap(n *internal.Node) *Value {
	return &Value{node: n.Acquire(), codec: c}
}

func (c *Codec) parseOptions() internal.ParseOptions {
	return internal.ParseOptions{
		MaxSize:  c.config.MaxJSONSize,
		MaxDepth: c.config.MaxNestingDepth,
	}
}

// parseNode runs the backend parser. The returned node carries the caller's
// reference.
func (c *Codec) parseNode(data []byte) (*internal.Node, error) {
	start := time.Now()
	n, err := internal.Parse(data, c.parseOptions())
	if c.config.EnableMetrics {
		c.metrics.RecordParse(time.Since(start), len(data), err == nil)
	}
	if err != nil {
		err = backendError("parse", "", err)
		c.logError("parse", "", len(data), err)
		return nil, err
	}
	return n, nil
}

// appendNode appends the compact text of n to dst
func (c *Codec) appendNode(dst []byte, n *internal.Node) ([]byte, error) {
	before := len(dst)
	out, err := internal.AppendJSON(dst, n, internal.PrintOptions{EscapeHTML: c.config.EscapeHTML})
	if c.config.EnableMetrics {
		c.metrics.RecordPrint(len(out)-before, err == nil)
	}
	if err != nil {
		err = backendError("serialize", "", err)
		c.logError("serialize", "", 0, err)
		return dst, err
	}
	return out, nil
}

// Stats holds codec counters. They stay zero unless Config.EnableMetrics is set.
type Stats struct {
	Parses        int64            `json:"parses"`
	ParseFailures int64            `json:"parse_failures"`
	Prints        int64            `json:"prints"`
	PrintFailures int64            `json:"print_failures"`
	BytesParsed   int64            `json:"bytes_parsed"`
	BytesPrinted  int64            `json:"bytes_printed"`
	AvgParseTime  time.Duration    `json:"avg_parse_time"`
	MaxParseTime  time.Duration    `json:"max_parse_time"`
	ErrorsByType  map[string]int64 `json:"errors_by_type"`
}

// Stats returns a snapshot of the codec counters
func (c *Codec) Stats() Stats {
	m := c.metrics.GetMetrics()
	return Stats{
		Parses:        m.Parses,
		ParseFailures: m.ParseFailures,
		Prints:        m.Prints,
		PrintFailures: m.PrintFailures,
		BytesParsed:   m.BytesParsed,
		BytesPrinted:  m.BytesPrinted,
		AvgParseTime:  m.AvgParseTime,
		MaxParseTime:  m.MaxParseTime,
		ErrorsByType:  m.ErrorsByType,
	}
}

// StatsSummary returns a human-readable summary of the codec counters
func (c *Codec) StatsSummary() string {
	return c.metrics.GetSummary()
}

// HealthStatus reports the outcome of Codec.Health
type HealthStatus = internal.HealthStatus

// Health judges the codec from its failure rates. Without
// Config.EnableMetrics there is no traffic to judge and the codec reports
// healthy.
func (c *Codec) Health() HealthStatus {
	return c.health.CheckHealth()
}
