package models

// Scenario is a hypothetical measured effect: the unobserved true value and
// the standard error of a single noisy measurement of it.
type Scenario struct {
	ID            int
	TrueEffect    float64
	StandardError float64
}

// CIWidth is the full width of the 95% confidence interval.
func (s Scenario) CIWidth() float64 {
	return 2 * 1.96 * s.StandardError
}
