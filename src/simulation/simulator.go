package simulation

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/decision-sim/src/models"
)

type Simulator struct {
	params models.SimulationParams
	rng    Sampler
	logger *log.Entry
}

func NewSimulator(params models.SimulationParams, rng Sampler, logger *log.Entry) *Simulator {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &Simulator{
		params: params,
		rng:    rng,
		logger: logger,
	}
}

// DecisionScore is the latent score whose sign is the decision. The treated
// group subtracts the penalty for the evidence strength, the control group
// ignores it.
func DecisionScore(estimatedEffect, riskTolerance, noise float64, treated bool, penalty float64) float64 {
	if treated {
		return estimatedEffect - penalty + riskTolerance + noise
	}

	return estimatedEffect + riskTolerance + noise
}

func (s *Simulator) decisionTime(treated bool, strength models.EvidenceStrength) float64 {
	t := s.params.BaseDecisionTime
	if treated {
		t += s.params.UncertaintyTimeCost
		if strength == models.EvidenceLow {
			t += s.params.ExtraUncertaintyCost
		}
	}

	return t + s.rng.Normal(0, s.params.TimeNoiseSD)
}

// Simulate produces DecisionsPerPerson decisions for every maker, in
// population order, each over a distinct scenario.
func (s *Simulator) Simulate(makers []models.DecisionMaker, scenarios []models.Scenario) ([]*models.Decision, error) {
	if s.params.DecisionsPerPerson > len(scenarios) {
		return nil, fmt.Errorf("Simulator.Simulate: cannot sample %d of %d scenarios without replacement: %w", s.params.DecisionsPerPerson, len(scenarios), models.DecisionsExceedScenariosErr)
	}

	classifier, err := NewEvidenceClassifier(scenarios)
	if err != nil {
		return nil, fmt.Errorf("Simulator.Simulate: %w", err)
	}

	s.logger.Debugf("evidence thresholds: high <= %v, moderate <= %v", classifier.HighThreshold, classifier.ModerateThreshold)

	decisions := make([]*models.Decision, 0, len(makers)*s.params.DecisionsPerPerson)
	decisionID := 1

	for _, person := range makers {
		chosen, err := s.rng.SampleWithoutReplacement(len(scenarios), s.params.DecisionsPerPerson)
		if err != nil {
			return nil, fmt.Errorf("Simulator.Simulate: decision maker %d: %w", person.ID, err)
		}

		for _, idx := range chosen {
			decisions = append(decisions, s.decide(decisionID, person, scenarios[idx], classifier))
			decisionID++
		}

		s.logger.WithField("decision_maker_id", person.ID).Tracef("simulated %d decisions", len(chosen))
	}

	return decisions, nil
}

func (s *Simulator) decide(decisionID int, person models.DecisionMaker, scenario models.Scenario, classifier *EvidenceClassifier) *models.Decision {
	treatment := s.rng.Bernoulli(s.params.PropTreated)
	treated := treatment == 1

	estimated := scenario.TrueEffect + s.rng.Normal(0, scenario.StandardError)

	ciWidth := scenario.CIWidth()
	strength := classifier.Classify(ciWidth)

	noise := s.rng.Normal(0, s.params.DecisionNoiseSD)
	score := DecisionScore(estimated, person.RiskTolerance, noise, treated, s.params.UncertaintyPenalty[strength])

	chosen := 0
	if score > 0 {
		chosen = 1
	}

	correct := 0
	if models.IsCorrectDirection(chosen, scenario.TrueEffect) {
		correct = 1
	}

	return &models.Decision{
		DecisionID:       decisionID,
		DecisionMakerID:  person.ID,
		ScenarioID:       scenario.ID,
		TreatmentGroup:   treatment,
		EstimatedEffect:  estimated,
		StandardError:    scenario.StandardError,
		CIWidth:          ciWidth,
		EvidenceStrength: strength,
		TrueEffect:       scenario.TrueEffect,
		ChosenOption:     chosen,
		DecisionTimeSec:  s.decisionTime(treated, strength),
		CorrectDirection: correct,
		Score:            score,
	}
}

// Generate runs the whole pipeline from params: decision makers, scenarios,
// then decisions, all drawn from one stream.
func Generate(params models.SimulationParams, rng Sampler, logger *log.Entry) ([]*models.Decision, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	makers := GenerateDecisionMakers(rng, params.NPeople, params.RiskTolMean, params.RiskTolSD)
	scenarios := GenerateScenarios(rng, params.NScenarios, params.TrueEffectMean, params.TrueEffectSD, params.SELogMean, params.SELogSD)

	return NewSimulator(params, rng, logger).Simulate(makers, scenarios)
}
