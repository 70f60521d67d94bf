package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/decision-sim/src/models"
)

func generateWithScenarios(t *testing.T, params models.SimulationParams) ([]*models.Decision, []models.Scenario) {
	t.Helper()

	rng := NewRand(params.Seed)
	makers := GenerateDecisionMakers(rng, params.NPeople, params.RiskTolMean, params.RiskTolSD)
	scenarios := GenerateScenarios(rng, params.NScenarios, params.TrueEffectMean, params.TrueEffectSD, params.SELogMean, params.SELogSD)

	decisions, err := NewSimulator(params, rng, nil).Simulate(makers, scenarios)
	require.NoError(t, err)

	return decisions, scenarios
}

func TestGenerators(t *testing.T) {
	t.Run("decision makers have sequential ids", func(t *testing.T) {
		makers := GenerateDecisionMakers(NewRand(1), 5, 0, 0.5)
		require.Len(t, makers, 5)
		for i, m := range makers {
			assert.Equal(t, i+1, m.ID)
		}
	})

	t.Run("scenarios draw effects before standard errors", func(t *testing.T) {
		rng := &scriptedSampler{normals: []float64{1, 2, 3, 0, 0, 0}}
		scenarios := GenerateScenarios(rng, 3, 0, 5, 0, 0.5)

		require.Len(t, scenarios, 3)
		assert.Equal(t, 5.0, scenarios[0].TrueEffect)
		assert.Equal(t, 10.0, scenarios[1].TrueEffect)
		assert.Equal(t, 15.0, scenarios[2].TrueEffect)
		for i, s := range scenarios {
			assert.Equal(t, i+1, s.ID)
			assert.Equal(t, 1.0, s.StandardError)
		}
	})
}

func TestSimulator(t *testing.T) {
	params := models.DefaultSimulationParams()

	t.Run("is deterministic for a seed", func(t *testing.T) {
		d1, err := Generate(params, NewRand(params.Seed), nil)
		require.NoError(t, err)

		d2, err := Generate(params, NewRand(params.Seed), nil)
		require.NoError(t, err)

		assert.Equal(t, d1, d2)
	})

	t.Run("different seeds give different logs", func(t *testing.T) {
		d1, err := Generate(params, NewRand(1), nil)
		require.NoError(t, err)

		d2, err := Generate(params, NewRand(2), nil)
		require.NoError(t, err)

		assert.NotEqual(t, d1, d2)
	})

	t.Run("every person decides over distinct scenarios", func(t *testing.T) {
		decisions, _ := generateWithScenarios(t, params)
		require.Len(t, decisions, params.NPeople*params.DecisionsPerPerson)

		perPerson := make(map[int]map[int]struct{})
		for _, d := range decisions {
			if perPerson[d.DecisionMakerID] == nil {
				perPerson[d.DecisionMakerID] = make(map[int]struct{})
			}

			_, dup := perPerson[d.DecisionMakerID][d.ScenarioID]
			assert.False(t, dup, "person %d saw scenario %d twice", d.DecisionMakerID, d.ScenarioID)
			perPerson[d.DecisionMakerID][d.ScenarioID] = struct{}{}
		}

		require.Len(t, perPerson, params.NPeople)
		for id, seen := range perPerson {
			assert.Len(t, seen, params.DecisionsPerPerson, "person %d", id)
		}
	})

	t.Run("decision ids follow population order", func(t *testing.T) {
		decisions, _ := generateWithScenarios(t, params)

		for i, d := range decisions {
			assert.Equal(t, i+1, d.DecisionID)
			assert.Equal(t, i/params.DecisionsPerPerson+1, d.DecisionMakerID)
		}
	})

	t.Run("evidence strength uses the full scenario set", func(t *testing.T) {
		decisions, scenarios := generateWithScenarios(t, params)

		var widths []float64
		for _, s := range scenarios {
			widths = append(widths, 2*1.96*s.StandardError)
		}

		p33, err := Percentile(widths, 33)
		require.NoError(t, err)
		p66, err := Percentile(widths, 66)
		require.NoError(t, err)

		for _, d := range decisions {
			expected := models.EvidenceLow
			if d.CIWidth <= p33 {
				expected = models.EvidenceHigh
			} else if d.CIWidth <= p66 {
				expected = models.EvidenceModerate
			}

			assert.Equal(t, expected, d.EvidenceStrength, "decision %d", d.DecisionID)
		}
	})

	t.Run("fields stay in range", func(t *testing.T) {
		decisions, scenarios := generateWithScenarios(t, params)

		byID := make(map[int]models.Scenario)
		for _, s := range scenarios {
			byID[s.ID] = s
		}

		for _, d := range decisions {
			assert.Contains(t, []int{0, 1}, d.ChosenOption)
			assert.Contains(t, []int{0, 1}, d.TreatmentGroup)
			assert.Contains(t, []int{0, 1}, d.CorrectDirection)
			assert.Greater(t, d.StandardError, 0.0)
			assert.Greater(t, d.DecisionTimeSec, 0.0)

			s := byID[d.ScenarioID]
			assert.Equal(t, s.StandardError, d.StandardError)
			assert.Equal(t, s.TrueEffect, d.TrueEffect)
			assert.Equal(t, s.CIWidth(), d.CIWidth)

			assert.Equal(t, d.Score > 0, d.ChosenOption == 1)
			assert.Equal(t, models.IsCorrectDirection(d.ChosenOption, d.TrueEffect), d.CorrectDirection == 1)
		}
	})

	t.Run("single certain scenario", func(t *testing.T) {
		p := models.DefaultSimulationParams()
		p.DecisionsPerPerson = 1

		rng := NewRand(p.Seed)
		makers := GenerateDecisionMakers(rng, p.NPeople, p.RiskTolMean, p.RiskTolSD)
		scenarios := []models.Scenario{{ID: 1, TrueEffect: 10, StandardError: 1}}

		decisions, err := NewSimulator(p, rng, nil).Simulate(makers, scenarios)
		require.NoError(t, err)
		require.Len(t, decisions, p.NPeople)

		for _, d := range decisions {
			assert.Equal(t, 1, d.ScenarioID)
			assert.Equal(t, 3.92, d.CIWidth)
			assert.Equal(t, models.EvidenceHigh, d.EvidenceStrength)
			if d.ChosenOption == 1 {
				assert.Equal(t, 1, d.CorrectDirection)
			}
		}
	})

	t.Run("treatment subtracts the penalty", func(t *testing.T) {
		control := models.DefaultSimulationParams()
		control.PropTreated = 0

		treatment := models.DefaultSimulationParams()
		treatment.PropTreated = 1

		controlDecisions, err := Generate(control, NewRand(control.Seed), nil)
		require.NoError(t, err)

		treatedDecisions, err := Generate(treatment, NewRand(treatment.Seed), nil)
		require.NoError(t, err)

		require.Len(t, treatedDecisions, len(controlDecisions))
		for i := range controlDecisions {
			c := controlDecisions[i]
			tr := treatedDecisions[i]

			require.Equal(t, 0, c.TreatmentGroup)
			require.Equal(t, 1, tr.TreatmentGroup)
			require.Equal(t, c.ScenarioID, tr.ScenarioID)
			require.Equal(t, c.EstimatedEffect, tr.EstimatedEffect)
			require.Equal(t, c.EvidenceStrength, tr.EvidenceStrength)

			penalty := control.UncertaintyPenalty[c.EvidenceStrength]
			assert.InDelta(t, c.Score-penalty, tr.Score, 1e-9)
		}
	})

	t.Run("rejects sampling more scenarios than exist", func(t *testing.T) {
		p := models.DefaultSimulationParams()
		p.DecisionsPerPerson = 2

		rng := &scriptedSampler{}
		makers := []models.DecisionMaker{{ID: 1}}
		scenarios := []models.Scenario{{ID: 1, StandardError: 1}}

		decisions, err := NewSimulator(p, rng, nil).Simulate(makers, scenarios)
		assert.ErrorIs(t, err, models.DecisionsExceedScenariosErr)
		assert.Nil(t, decisions)
	})

	t.Run("generate validates params first", func(t *testing.T) {
		p := models.DefaultSimulationParams()
		p.DecisionsPerPerson = p.NScenarios + 1

		_, err := Generate(p, NewRand(p.Seed), nil)
		assert.ErrorIs(t, err, models.DecisionsExceedScenariosErr)
	})
}

func TestDecide(t *testing.T) {
	p := models.DefaultSimulationParams()
	person := models.DecisionMaker{ID: 1, RiskTolerance: 0.25}
	scenarios := []models.Scenario{
		{ID: 1, TrueEffect: -1, StandardError: 1},
		{ID: 2, TrueEffect: 2, StandardError: 2},
		{ID: 3, TrueEffect: 3, StandardError: 3},
	}

	classifier, err := NewEvidenceClassifier(scenarios)
	require.NoError(t, err)

	t.Run("control ignores uncertainty", func(t *testing.T) {
		// estimate noise, score noise, time noise
		rng := &scriptedSampler{normals: []float64{0.5, 1, -1}, bernoulli: []int{0}}
		d := NewSimulator(p, rng, nil).decide(7, person, scenarios[2], classifier)

		assert.Equal(t, 7, d.DecisionID)
		assert.Equal(t, models.EvidenceLow, d.EvidenceStrength)
		assert.InDelta(t, 4.5, d.EstimatedEffect, 1e-12)
		assert.InDelta(t, 4.5+0.25+0.1, d.Score, 1e-12)
		assert.Equal(t, 1, d.ChosenOption)
		assert.Equal(t, 1, d.CorrectDirection)
		assert.InDelta(t, 19.0, d.DecisionTimeSec, 1e-12)
	})

	t.Run("treated low evidence pays both time costs", func(t *testing.T) {
		rng := &scriptedSampler{normals: []float64{0.5, 1, -1}, bernoulli: []int{1}}
		d := NewSimulator(p, rng, nil).decide(1, person, scenarios[2], classifier)

		assert.InDelta(t, 4.5-0.2+0.25+0.1, d.Score, 1e-12)
		assert.InDelta(t, 20+2+3-1.0, d.DecisionTimeSec, 1e-12)
	})

	t.Run("treated high evidence pays only the base uncertainty cost", func(t *testing.T) {
		rng := &scriptedSampler{normals: []float64{0, 0, 0}, bernoulli: []int{1}}
		d := NewSimulator(p, rng, nil).decide(1, person, scenarios[0], classifier)

		assert.Equal(t, models.EvidenceHigh, d.EvidenceStrength)
		assert.InDelta(t, -1-1.0+0.25, d.Score, 1e-12)
		assert.Equal(t, 0, d.ChosenOption)
		assert.Equal(t, 1, d.CorrectDirection)
		assert.InDelta(t, 22.0, d.DecisionTimeSec, 1e-12)
	})

	t.Run("positive effect rejected is incorrect", func(t *testing.T) {
		rng := &scriptedSampler{normals: []float64{-2, 0, 0}, bernoulli: []int{0}}
		d := NewSimulator(p, rng, nil).decide(1, person, scenarios[1], classifier)

		assert.Equal(t, models.EvidenceModerate, d.EvidenceStrength)
		assert.InDelta(t, -2.0, d.EstimatedEffect, 1e-12)
		assert.Equal(t, 0, d.ChosenOption)
		assert.Equal(t, 0, d.CorrectDirection)
	})
}

func TestDecisionScore(t *testing.T) {
	for _, strength := range models.EvidenceStrengths {
		penalty := models.DefaultSimulationParams().UncertaintyPenalty[strength]
		control := DecisionScore(1.5, 0.3, -0.05, false, penalty)
		treated := DecisionScore(1.5, 0.3, -0.05, true, penalty)

		assert.InDelta(t, control-penalty, treated, 1e-12, strength.String())
	}
}
