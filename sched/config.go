package sched

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sstf-sim/sstf-sim/sched/trace"
)

// Option defaults and legal ranges. Out-of-range values fall back to the
// default with a warning, they are never an error.
const (
	DefaultQueueSize = 64
	MinQueueSize     = 1
	MaxQueueSize     = 100

	DefaultMaxWaitMs = 50
	MinMaxWaitMs     = 20
	MaxMaxWaitMs     = 100
)

// Options groups the scheduler tunables. Immutable after New.
type Options struct {
	QueueSize int   `yaml:"queue_size"`    // request count that opens the gate
	MaxWaitMs int64 `yaml:"max_wait_time"` // batch deadline in milliseconds
	Debug     bool  `yaml:"debug"`         // emit telemetry events
}

// NewOptions creates an Options value from explicit fields.
func NewOptions(queueSize int, maxWaitMs int64, debug bool) Options {
	return Options{QueueSize: queueSize, MaxWaitMs: maxWaitMs, Debug: debug}
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{QueueSize: DefaultQueueSize, MaxWaitMs: DefaultMaxWaitMs}
}

// LoadOptions reads an Options YAML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file: %w", err)
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return opts, nil
}

// sanitize replaces out-of-range values with defaults, logging each
// substitution and reporting it to the sink (sink may be nil).
func (o Options) sanitize(sink trace.Sink) Options {
	if o.QueueSize < MinQueueSize || o.QueueSize > MaxQueueSize {
		warnRange("queue_size", int64(o.QueueSize), DefaultQueueSize, sink)
		o.QueueSize = DefaultQueueSize
	}
	if o.MaxWaitMs < MinMaxWaitMs || o.MaxWaitMs > MaxMaxWaitMs {
		warnRange("max_wait_time", o.MaxWaitMs, DefaultMaxWaitMs, sink)
		o.MaxWaitMs = DefaultMaxWaitMs
	}
	return o
}

func warnRange(param string, given, substituted int64, sink trace.Sink) {
	logrus.Warnf("%s=%d out of range, using default %d", param, given, substituted)
	if sink != nil {
		sink.RecordConfigWarning(trace.ConfigWarningRecord{
			Param:       param,
			Given:       given,
			Substituted: substituted,
		})
	}
}
