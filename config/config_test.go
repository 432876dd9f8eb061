package config_test

import (
	"errors"
	"testing"

	"github.com/anomgraph/gbad/config"
	"github.com/anomgraph/gbad/gbaderr"
)

func TestNew_RejectsMissingInput(t *testing.T) {
	_, err := config.New()
	var oe *gbaderr.OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OptionError, got %v", err)
	}
}

func TestNew_RejectsInvertedSizeBounds(t *testing.T) {
	_, err := config.New(
		config.WithInputPath("graph.g"),
		config.WithSizeBounds(5, 2),
	)
	var oe *gbaderr.OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OptionError for min>max, got %v", err)
	}
}

func TestNew_RejectsThresholdOutOfRange(t *testing.T) {
	_, err := config.New(
		config.WithInputPath("graph.g"),
		config.WithThreshold(1.5),
	)
	if err == nil {
		t.Fatalf("expected error for threshold > 1.0")
	}
}

func TestNew_RejectsMultipleAnomalyModes(t *testing.T) {
	_, err := config.New(
		config.WithInputPath("graph.g"),
		config.WithITMDL(0.2),
		config.WithMPS(0.3),
	)
	if err == nil {
		t.Fatalf("expected error for -mdl and -mps both set")
	}
}

func TestNew_ProbabilisticForcesMaxAnomScore(t *testing.T) {
	c, err := config.New(
		config.WithInputPath("graph.g"),
		config.WithProbabilistic(3),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxAnomScore != 1.0 {
		t.Fatalf("expected MaxAnomScore forced to 1.0, got %v", c.MaxAnomScore)
	}
	if c.Anomaly != config.AnomalyProbabilistic {
		t.Fatalf("expected AnomalyProbabilistic mode")
	}
}

func TestNew_RejectsProbIterationsBelowTwo(t *testing.T) {
	_, err := config.New(
		config.WithInputPath("graph.g"),
		config.WithProbabilistic(1),
	)
	if err == nil {
		t.Fatalf("expected error for -prob < 2")
	}
}

func TestNew_DefaultsApplyWhenUnset(t *testing.T) {
	c, err := config.New(config.WithInputPath("graph.g"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BeamWidth != 4 || c.NumBestSubs != 3 {
		t.Fatalf("expected default beam/nsubs, got %+v", c)
	}
	if c.Anomaly != config.AnomalyNone {
		t.Fatalf("expected no anomaly mode by default")
	}
}
