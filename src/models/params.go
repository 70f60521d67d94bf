package models

import (
	"fmt"
	"math"
)

const DefaultSeed uint64 = 42

// SimulationParams controls every distribution used by a run. A run is fully
// determined by its params, seed included.
type SimulationParams struct {
	Seed uint64 `yaml:"seed"`

	NPeople            int     `yaml:"n_people"`
	NScenarios         int     `yaml:"n_scenarios"`
	DecisionsPerPerson int     `yaml:"decisions_per_person"`
	PropTreated        float64 `yaml:"prop_treated"`

	TrueEffectMean float64 `yaml:"true_effect_mean"`
	TrueEffectSD   float64 `yaml:"true_effect_sd"`

	// Standard errors are log-normal with these parameters on the log scale.
	SELogMean float64 `yaml:"se_log_mean"`
	SELogSD   float64 `yaml:"se_log_sd"`

	RiskTolMean float64 `yaml:"risk_tol_mean"`
	RiskTolSD   float64 `yaml:"risk_tol_sd"`

	DecisionNoiseSD float64 `yaml:"decision_noise_sd"`

	UncertaintyPenalty map[EvidenceStrength]float64 `yaml:"uncertainty_penalty"`

	BaseDecisionTime     float64 `yaml:"base_decision_time"`
	UncertaintyTimeCost  float64 `yaml:"uncertainty_time_cost"`
	ExtraUncertaintyCost float64 `yaml:"extra_uncertainty_cost"`
	TimeNoiseSD          float64 `yaml:"time_noise_sd"`
}

func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		Seed:               DefaultSeed,
		NPeople:            50,
		NScenarios:         25,
		DecisionsPerPerson: 10,
		PropTreated:        0.5,
		TrueEffectMean:     0,
		TrueEffectSD:       5,
		SELogMean:          0,
		SELogSD:            0.5,
		RiskTolMean:        0,
		RiskTolSD:          0.5,
		DecisionNoiseSD:    0.1,
		UncertaintyPenalty: map[EvidenceStrength]float64{
			EvidenceHigh:     1.0,
			EvidenceModerate: 0.5,
			EvidenceLow:      0.2,
		},
		BaseDecisionTime:     20,
		UncertaintyTimeCost:  2,
		ExtraUncertaintyCost: 3,
		TimeNoiseSD:          1.0,
	}
}

func (p SimulationParams) TotalDecisions() int {
	return p.NPeople * p.DecisionsPerPerson
}

func (p SimulationParams) Validate() error {
	if p.NPeople <= 0 {
		return fmt.Errorf("SimulationParams.Validate: n_people=%d: %w", p.NPeople, InvalidPopulationSizeErr)
	}

	if p.NScenarios <= 0 {
		return fmt.Errorf("SimulationParams.Validate: n_scenarios=%d: %w", p.NScenarios, InvalidScenarioCountErr)
	}

	if p.DecisionsPerPerson <= 0 {
		return fmt.Errorf("SimulationParams.Validate: decisions_per_person=%d: %w", p.DecisionsPerPerson, InvalidDecisionsPerPersonErr)
	}

	if p.DecisionsPerPerson > p.NScenarios {
		return fmt.Errorf("SimulationParams.Validate: cannot sample %d of %d scenarios without replacement: %w", p.DecisionsPerPerson, p.NScenarios, DecisionsExceedScenariosErr)
	}

	if math.IsNaN(p.PropTreated) || p.PropTreated < 0 || p.PropTreated > 1 {
		return fmt.Errorf("SimulationParams.Validate: prop_treated=%v: %w", p.PropTreated, PropTreatedOutOfRangeErr)
	}

	sds := map[string]float64{
		"true_effect_sd":    p.TrueEffectSD,
		"se_log_sd":         p.SELogSD,
		"risk_tol_sd":       p.RiskTolSD,
		"decision_noise_sd": p.DecisionNoiseSD,
		"time_noise_sd":     p.TimeNoiseSD,
	}
	for name, sd := range sds {
		if math.IsNaN(sd) || math.IsInf(sd, 0) || sd < 0 {
			return fmt.Errorf("SimulationParams.Validate: %s=%v: %w", name, sd, NegativeStandardDeviationErr)
		}
	}

	values := map[string]float64{
		"true_effect_mean":       p.TrueEffectMean,
		"se_log_mean":            p.SELogMean,
		"risk_tol_mean":          p.RiskTolMean,
		"base_decision_time":     p.BaseDecisionTime,
		"uncertainty_time_cost":  p.UncertaintyTimeCost,
		"extra_uncertainty_cost": p.ExtraUncertaintyCost,
	}
	for strength, penalty := range p.UncertaintyPenalty {
		values["uncertainty_penalty."+string(strength)] = penalty
	}

	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("SimulationParams.Validate: %s=%v: %w", name, v, NotFiniteErr)
		}
	}

	for strength := range p.UncertaintyPenalty {
		if err := strength.Validate(); err != nil {
			return fmt.Errorf("SimulationParams.Validate: uncertainty_penalty: %w", err)
		}
	}

	for _, strength := range EvidenceStrengths {
		if _, found := p.UncertaintyPenalty[strength]; !found {
			return fmt.Errorf("SimulationParams.Validate: missing %s: %w", strength, UncertaintyPenaltyIncompleteErr)
		}
	}

	return nil
}
