package models

// Decision is one row of the output dataset.
type Decision struct {
	DecisionID       int              `csv:"decision_id"`
	DecisionMakerID  int              `csv:"decision_maker_id"`
	ScenarioID       int              `csv:"scenario_id"`
	TreatmentGroup   int              `csv:"treatment_group"`
	EstimatedEffect  float64          `csv:"estimated_effect"`
	StandardError    float64          `csv:"standard_error"`
	CIWidth          float64          `csv:"ci_width"`
	EvidenceStrength EvidenceStrength `csv:"evidence_strength"`
	TrueEffect       float64          `csv:"true_effect"`
	ChosenOption     int              `csv:"chosen_option"`
	DecisionTimeSec  float64          `csv:"decision_time_sec"`
	CorrectDirection int              `csv:"correct_direction"`

	// Score is the latent decision score. It is not exported to csv.
	Score float64 `csv:"-"`
}

func (d *Decision) IsTreated() bool {
	return d.TreatmentGroup == 1
}

// IsCorrectDirection reports whether the binary choice matches the sign of
// the true effect. A zero effect counts as non-positive.
func IsCorrectDirection(chosenOption int, trueEffect float64) bool {
	return (chosenOption == 1 && trueEffect > 0) || (chosenOption == 0 && trueEffect <= 0)
}

var DecisionCsvHeader = []string{
	"decision_id",
	"decision_maker_id",
	"scenario_id",
	"treatment_group",
	"estimated_effect",
	"standard_error",
	"ci_width",
	"evidence_strength",
	"true_effect",
	"chosen_option",
	"decision_time_sec",
	"correct_direction",
}
