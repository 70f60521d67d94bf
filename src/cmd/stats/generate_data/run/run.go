package run

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jiaming2012/decision-sim/src/logger"
	"github.com/jiaming2012/decision-sim/src/models"
	"github.com/jiaming2012/decision-sim/src/simulation"
	"github.com/jiaming2012/decision-sim/src/utils"
)

type RunArgs struct {
	OutPath    string
	ParamsPath string
	Summary    bool
	Logger     *logger.LogrusLogger
}

type RunOutput struct {
	RunID            string
	ExportedFilepath string
	Params           models.SimulationParams
	Decisions        []*models.Decision
	Summary          *simulation.Summary
}

func Run(args RunArgs) (RunOutput, error) {
	if args.Logger == nil {
		l, err := logger.NewLogrusLogger("info", nil)
		if err != nil {
			return RunOutput{}, fmt.Errorf("failed to set up logger: %w", err)
		}

		args.Logger = l
	}

	if args.OutPath == "" {
		args.OutPath = utils.DefaultDecisionsFilename
	}

	runID := uuid.New().String()
	entry := args.Logger.ForRun(runID)

	params, err := utils.LoadSimulationParams(args.ParamsPath)
	if err != nil {
		return RunOutput{}, fmt.Errorf("error loading simulation params: %w", err)
	}

	entry.Infof("Simulating %d decision makers x %d decisions over %d scenarios (seed %d)", params.NPeople, params.DecisionsPerPerson, params.NScenarios, params.Seed)

	decisions, err := simulation.Generate(params, simulation.NewRand(params.Seed), entry)
	if err != nil {
		return RunOutput{}, fmt.Errorf("error simulating decisions: %w", err)
	}

	outPath, err := utils.ExportDecisionsToCsv(args.OutPath, decisions)
	if err != nil {
		return RunOutput{}, fmt.Errorf("error exporting decisions: %w", err)
	}

	output := RunOutput{
		RunID:            runID,
		ExportedFilepath: outPath,
		Params:           params,
		Decisions:        decisions,
	}

	if args.Summary {
		if output.Summary, err = simulation.Summarize(decisions); err != nil {
			return RunOutput{}, fmt.Errorf("error summarizing decisions: %w", err)
		}
	}

	return output, nil
}

// Summarize reads a previously exported decision log.
func Summarize(inPath string) (*simulation.Summary, error) {
	decisions, err := utils.ImportDecisionsFromCsv(inPath)
	if err != nil {
		return nil, fmt.Errorf("error importing decisions: %w", err)
	}

	return simulation.Summarize(decisions)
}
