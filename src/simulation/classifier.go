package simulation

import (
	"fmt"

	"github.com/jiaming2012/decision-sim/src/models"
)

const (
	HighEvidencePercentile     = 33.0
	ModerateEvidencePercentile = 66.0
)

// EvidenceClassifier labels a confidence interval width against thresholds
// taken from the ci widths of the full scenario set.
type EvidenceClassifier struct {
	HighThreshold     float64
	ModerateThreshold float64
}

func NewEvidenceClassifier(scenarios []models.Scenario) (*EvidenceClassifier, error) {
	widths := make([]float64, 0, len(scenarios))
	for _, s := range scenarios {
		widths = append(widths, s.CIWidth())
	}

	high, err := Percentile(widths, HighEvidencePercentile)
	if err != nil {
		return nil, fmt.Errorf("NewEvidenceClassifier: high threshold: %w", err)
	}

	moderate, err := Percentile(widths, ModerateEvidencePercentile)
	if err != nil {
		return nil, fmt.Errorf("NewEvidenceClassifier: moderate threshold: %w", err)
	}

	return &EvidenceClassifier{
		HighThreshold:     high,
		ModerateThreshold: moderate,
	}, nil
}

func (c *EvidenceClassifier) Classify(ciWidth float64) models.EvidenceStrength {
	if ciWidth <= c.HighThreshold {
		return models.EvidenceHigh
	}

	if ciWidth <= c.ModerateThreshold {
		return models.EvidenceModerate
	}

	return models.EvidenceLow
}
