package models

import "fmt"

// EvidenceStrength discretizes a confidence interval width relative to the
// widths of the whole scenario set. Narrow intervals are High.
type EvidenceStrength string

const (
	EvidenceHigh     EvidenceStrength = "High"
	EvidenceModerate EvidenceStrength = "Moderate"
	EvidenceLow      EvidenceStrength = "Low"
)

var EvidenceStrengths = []EvidenceStrength{EvidenceHigh, EvidenceModerate, EvidenceLow}

func (s EvidenceStrength) String() string {
	return string(s)
}

func (s EvidenceStrength) Validate() error {
	switch s {
	case EvidenceHigh, EvidenceModerate, EvidenceLow:
		return nil
	default:
		return fmt.Errorf("EvidenceStrength.Validate: %q: %w", string(s), UnknownEvidenceStrengthErr)
	}
}

func (s EvidenceStrength) MarshalCSV() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	return string(s), nil
}

func (s *EvidenceStrength) UnmarshalCSV(value string) error {
	strength := EvidenceStrength(value)
	if err := strength.Validate(); err != nil {
		return err
	}

	*s = strength
	return nil
}
