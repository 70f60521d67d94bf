package simulation

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/decision-sim/src/models"
)

type GroupSummary struct {
	Label       string
	Decisions   int
	ChosenRate  float64
	CorrectRate float64
	MeanTimeSec float64
	SDTimeSec   float64
}

// Summary describes a decision log. It is descriptive only.
type Summary struct {
	Total          int
	Groups         []GroupSummary
	StrengthCounts map[models.EvidenceStrength]int
}

func summarizeGroup(label string, decisions []*models.Decision) (GroupSummary, error) {
	var chosen, correct, times stats.Float64Data
	for _, d := range decisions {
		chosen = append(chosen, float64(d.ChosenOption))
		correct = append(correct, float64(d.CorrectDirection))
		times = append(times, d.DecisionTimeSec)
	}

	chosenRate, err := stats.Mean(chosen)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("failed to calculate chosen rate: %w", err)
	}

	correctRate, err := stats.Mean(correct)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("failed to calculate correct rate: %w", err)
	}

	meanTime, err := stats.Mean(times)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("failed to calculate mean decision time: %w", err)
	}

	sdTime, err := stats.StandardDeviation(times)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("failed to calculate decision time standard deviation: %w", err)
	}

	return GroupSummary{
		Label:       label,
		Decisions:   len(decisions),
		ChosenRate:  chosenRate,
		CorrectRate: correctRate,
		MeanTimeSec: meanTime,
		SDTimeSec:   sdTime,
	}, nil
}

// Summarize groups decisions into control, treatment and all. Empty groups
// are left out.
func Summarize(decisions []*models.Decision) (*Summary, error) {
	summary := &Summary{
		Total:          len(decisions),
		StrengthCounts: make(map[models.EvidenceStrength]int),
	}

	var control, treatment []*models.Decision
	for _, d := range decisions {
		if d.IsTreated() {
			treatment = append(treatment, d)
		} else {
			control = append(control, d)
		}

		summary.StrengthCounts[d.EvidenceStrength]++
	}

	groups := []struct {
		label     string
		decisions []*models.Decision
	}{
		{"control", control},
		{"treatment", treatment},
		{"all", decisions},
	}

	for _, g := range groups {
		if len(g.decisions) == 0 {
			continue
		}

		group, err := summarizeGroup(g.label, g.decisions)
		if err != nil {
			return nil, fmt.Errorf("Summarize: %s: %w", g.label, err)
		}

		summary.Groups = append(summary.Groups, group)
	}

	return summary, nil
}

func (s *Summary) Group(label string) (GroupSummary, bool) {
	for _, g := range s.Groups {
		if g.Label == label {
			return g, true
		}
	}

	return GroupSummary{}, false
}

func (s *Summary) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	display.WriteString(p.Sprintf("Decisions: %d\n", s.Total))

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Group", "Decisions", "Chosen", "Correct", "Mean Time (s)", "SD Time (s)"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, g := range s.Groups {
		table.Append([]string{
			g.Label,
			p.Sprintf("%d", g.Decisions),
			fmt.Sprintf("%.1f%%", g.ChosenRate*100),
			fmt.Sprintf("%.1f%%", g.CorrectRate*100),
			fmt.Sprintf("%.2f", g.MeanTimeSec),
			fmt.Sprintf("%.2f", g.SDTimeSec),
		})
	}

	table.Render()

	strengths := tablewriter.NewWriter(display)
	strengths.SetHeader([]string{"Evidence", "Decisions"})
	for _, strength := range models.EvidenceStrengths {
		strengths.Append([]string{strength.String(), p.Sprintf("%d", s.StrengthCounts[strength])})
	}

	strengths.Render()

	return display.String()
}
