package simulation

import "github.com/jiaming2012/decision-sim/src/models"

func GenerateDecisionMakers(rng Sampler, n int, riskTolMean, riskTolSD float64) []models.DecisionMaker {
	makers := make([]models.DecisionMaker, 0, n)
	for i := 0; i < n; i++ {
		makers = append(makers, models.DecisionMaker{
			ID:            i + 1,
			RiskTolerance: rng.Normal(riskTolMean, riskTolSD),
		})
	}

	return makers
}

// GenerateScenarios draws every true effect before any standard error.
func GenerateScenarios(rng Sampler, n int, trueEffectMean, trueEffectSD, seLogMean, seLogSD float64) []models.Scenario {
	scenarios := make([]models.Scenario, 0, n)
	for i := 0; i < n; i++ {
		scenarios = append(scenarios, models.Scenario{
			ID:         i + 1,
			TrueEffect: rng.Normal(trueEffectMean, trueEffectSD),
		})
	}

	for i := range scenarios {
		scenarios[i].StandardError = rng.LogNormal(seLogMean, seLogSD)
	}

	return scenarios
}
