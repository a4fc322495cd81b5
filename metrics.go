package jsonvalue

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterMetrics exports the codec counters to reg. A nil reg registers
// with the Prometheus default registerer. Counters only move when
// Config.EnableMetrics is set.
func (c *Codec) RegisterMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return reg.Register(newCodecCollector(c))
}

type codecCollector struct {
	codec *Codec

	parses        *prometheus.Desc
	parseFailures *prometheus.Desc
	prints        *prometheus.Desc
	printFailures *prometheus.Desc
	bytesParsed   *prometheus.Desc
	bytesPrinted  *prometheus.Desc
	errors        *prometheus.Desc
}

func newCodecCollector(c *Codec) *codecCollector {
	ns := c.config.MetricsNamespace
	constLabels := prometheus.Labels{"codec": c.id()}
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(ns, "codec", name), help, labels, constLabels)
	}

	return &codecCollector{
		codec:         c,
		parses:        desc("parses_total", "Total number of parse calls."),
		parseFailures: desc("parse_failures_total", "Total number of failed parse calls."),
		prints:        desc("serializations_total", "Total number of serialize calls."),
		printFailures: desc("serialization_failures_total", "Total number of failed serialize calls."),
		bytesParsed:   desc("parsed_bytes_total", "Total bytes of successfully parsed input."),
		bytesPrinted:  desc("serialized_bytes_total", "Total bytes of serialized output."),
		errors:        desc("errors_total", "Total number of failed operations by error type.", "type"),
	}
}

func (cc *codecCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.parses
	ch <- cc.parseFailures
	ch <- cc.prints
	ch <- cc.printFailures
	ch <- cc.bytesParsed
	ch <- cc.bytesPrinted
	ch <- cc.errors
}

func (cc *codecCollector) Collect(ch chan<- prometheus.Metric) {
	s := cc.codec.Stats()

	counter := func(desc *prometheus.Desc, v int64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
	}
	counter(cc.parses, s.Parses)
	counter(cc.parseFailures, s.ParseFailures)
	counter(cc.prints, s.Prints)
	counter(cc.printFailures, s.PrintFailures)
	counter(cc.bytesParsed, s.BytesParsed)
	counter(cc.bytesPrinted, s.BytesPrinted)
	for errorType, n := range s.ErrorsByType {
		counter(cc.errors, n, errorType)
	}
}
