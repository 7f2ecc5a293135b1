// Package workload generates sector access streams that exercise the
// scheduler: a configurable number of simulated worker processes, each
// issuing random or sequential reads and writes across a bounded device.
package workload

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Access patterns.
const (
	PatternRandom     = "random"
	PatternSequential = "sequential"
)

// Spec is the top-level workload configuration.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Workers      int    `yaml:"workers"`       // simulated processes
	Accesses     int    `yaml:"accesses"`      // requests per worker
	DiskSectors  int64  `yaml:"disk_sectors"`  // device size in sectors
	WritePercent int    `yaml:"write_percent"` // 0-100
	Pattern      string `yaml:"pattern"`       // random | sequential
	Seed         int64  `yaml:"seed"`
}

// DefaultSpec mirrors the historical workload tool defaults: 20 processes,
// 50 accesses each, a 4MB disk of 512-byte sectors, random reads.
func DefaultSpec() Spec {
	return Spec{
		Workers:     20,
		Accesses:    50,
		DiskSectors: 8192,
		Pattern:     PatternRandom,
	}
}

// LoadSpec reads a Spec YAML file. Fields absent from the file keep their
// defaults.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read workload spec: %w", err)
	}
	spec := DefaultSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse workload spec %s: %w", path, err)
	}
	return spec, nil
}

// Validate checks the spec for values the generator cannot work with.
func (s Spec) Validate() error {
	if s.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if s.Accesses <= 0 {
		return fmt.Errorf("accesses must be positive, got %d", s.Accesses)
	}
	if s.DiskSectors <= 0 {
		return fmt.Errorf("disk_sectors must be positive, got %d", s.DiskSectors)
	}
	if s.WritePercent < 0 || s.WritePercent > 100 {
		return fmt.Errorf("write_percent must be 0-100, got %d", s.WritePercent)
	}
	switch s.Pattern {
	case PatternRandom, PatternSequential:
	case "":
		// empty defaults to random at generation time
	default:
		return fmt.Errorf("unknown access pattern %q", s.Pattern)
	}
	return nil
}

// LogSummary reports the effective workload at info level, the way the
// historical tool announced its run before forking.
func (s Spec) LogSummary() {
	mode := s.Pattern
	if mode == "" {
		mode = PatternRandom
	}
	logrus.Infof("workload: %d workers x %d accesses, %d sectors, %d%% writes, mode=%s",
		s.Workers, s.Accesses, s.DiskSectors, s.WritePercent, mode)
}
