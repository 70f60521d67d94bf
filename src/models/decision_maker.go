package models

// DecisionMaker is one member of the simulated population. RiskTolerance is
// drawn once and shifts every decision score the person produces.
type DecisionMaker struct {
	ID            int
	RiskTolerance float64
}
