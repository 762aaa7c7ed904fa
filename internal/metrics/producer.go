// Package metrics feeds per-symbol load samples from a CSV file into the
// assignment manager and mirrors them, plus each OrderBook's own counters,
// as Prometheus gauges.
package metrics

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vaasu2002/go-matching-engine/internal/assignment"
)

// LiveMetricsProducer tails a CSV feed of the form
// "delay_ms,symbol,msgs_per_sec,trades_per_sec,avg_order_size", sleeping
// delay_ms between lines before submitting the sample. Blank lines and
// lines starting with '#' are skipped.
type LiveMetricsProducer struct {
	manager *assignment.Manager
	log     *zap.Logger
	sleep   func(time.Duration)
}

// NewLiveMetricsProducer builds a producer that feeds manager.
func NewLiveMetricsProducer(manager *assignment.Manager, log *zap.Logger) *LiveMetricsProducer {
	return &LiveMetricsProducer{manager: manager, log: log, sleep: time.Sleep}
}

// Run reads lines from r until EOF or ctx-less caller stop (the caller
// closes r to stop it), submitting one sample per line.
func (p *LiveMetricsProducer) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sample, delay, err := parseLine(line)
		if err != nil {
			p.log.Warn("skipping malformed metrics line", zap.String("line", line), zap.Error(err))
			continue
		}
		if delay > 0 {
			p.sleep(delay)
		}
		p.manager.SubmitSample(sample)
		RecordSample(sample)
	}
	return scanner.Err()
}

func parseLine(line string) (assignment.MetricSample, time.Duration, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return assignment.MetricSample{}, 0, newMalformedLineError(line)
	}

	delayMs, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return assignment.MetricSample{}, 0, err
	}
	msgsPerSec, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return assignment.MetricSample{}, 0, err
	}
	tradesPerSec, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return assignment.MetricSample{}, 0, err
	}
	avgOrderSize, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return assignment.MetricSample{}, 0, err
	}

	return assignment.MetricSample{
		Symbol:       strings.TrimSpace(fields[1]),
		MsgsPerSec:   msgsPerSec,
		TradesPerSec: tradesPerSec,
		AvgOrderSize: avgOrderSize,
	}, time.Duration(delayMs) * time.Millisecond, nil
}

func newMalformedLineError(line string) error {
	return &malformedLineError{line: line}
}

type malformedLineError struct{ line string }

func (e *malformedLineError) Error() string {
	return "metrics: expected 5 comma-separated fields, got: " + e.line
}
