package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// OptimizerConfig holds the decision engine's bounded numeric knobs.
// It is loaded independently of Config because these values drive
// simulation determinism and cost, and deserve their own viper
// instance rather than sharing namespace with server/database env
// vars.
type OptimizerConfig struct {
	Seed                  int64   `mapstructure:"SEED"`
	NSimulations          int     `mapstructure:"N_SIMULATIONS"`
	BeamWidth             int     `mapstructure:"BEAM_WIDTH"`
	HomeFieldPts          float64 `mapstructure:"HOME_FIELD_PTS"`
	DiversityPenalty      float64 `mapstructure:"DIVERSITY_PENALTY"`
	StrongTeamThreshold   float64 `mapstructure:"STRONG_TEAM_THRESHOLD"`
	FallbackLogisticScale float64 `mapstructure:"FALLBACK_LOGISTIC_SCALE"`
}

const (
	minSimulations = 1000
	maxSimulations = 500000
)

// LoadOptimizerConfig reads the optimizer knobs from the environment,
// falling back to sane defaults, and rejects values outside their sane
// operating range before the engine ever starts a run.
func LoadOptimizerConfig() (*OptimizerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SURVIVOR")
	v.AutomaticEnv()

	v.SetDefault("SEED", int64(42))
	v.SetDefault("N_SIMULATIONS", 50000)
	v.SetDefault("BEAM_WIDTH", 5)
	v.SetDefault("HOME_FIELD_PTS", 3.0)
	v.SetDefault("DIVERSITY_PENALTY", 0.05)
	v.SetDefault("STRONG_TEAM_THRESHOLD", 0.65)
	v.SetDefault("FALLBACK_LOGISTIC_SCALE", 13.86)

	var cfg OptimizerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode optimizer config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("optimizer config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations that would silently change the
// engine's documented behavior rather than clamping them.
func (c *OptimizerConfig) Validate() error {
	if c.NSimulations < minSimulations || c.NSimulations > maxSimulations {
		return fmt.Errorf("n_simulations %d out of range [%d, %d]", c.NSimulations, minSimulations, maxSimulations)
	}
	if c.BeamWidth < 1 {
		return fmt.Errorf("beam_width must be positive, got %d", c.BeamWidth)
	}
	if c.DiversityPenalty < 0 || c.DiversityPenalty > 1 {
		return fmt.Errorf("diversity_penalty must be in [0, 1], got %f", c.DiversityPenalty)
	}
	if c.StrongTeamThreshold < 0 || c.StrongTeamThreshold > 1 {
		return fmt.Errorf("strong_team_threshold must be in [0, 1], got %f", c.StrongTeamThreshold)
	}
	if c.FallbackLogisticScale <= 0 {
		return fmt.Errorf("fallback_logistic_scale must be positive, got %f", c.FallbackLogisticScale)
	}
	return nil
}

// DefaultOptimizerConfig returns the baseline defaults without touching
// the environment, for use in tests.
func DefaultOptimizerConfig() *OptimizerConfig {
	return &OptimizerConfig{
		Seed:                  42,
		NSimulations:          50000,
		BeamWidth:             5,
		HomeFieldPts:          3.0,
		DiversityPenalty:      0.05,
		StrongTeamThreshold:   0.65,
		FallbackLogisticScale: 13.86,
	}
}
