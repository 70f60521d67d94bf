package models

import "fmt"

var DecisionsExceedScenariosErr = fmt.Errorf("decisions per person must not exceed the number of scenarios")
var InvalidPopulationSizeErr = fmt.Errorf("population size must be positive")
var InvalidScenarioCountErr = fmt.Errorf("scenario count must be positive")
var InvalidDecisionsPerPersonErr = fmt.Errorf("decisions per person must be positive")
var PropTreatedOutOfRangeErr = fmt.Errorf("proportion treated must be a value between 0 and 1")
var NegativeStandardDeviationErr = fmt.Errorf("standard deviation must be a non negative number")
var NotFiniteErr = fmt.Errorf("value must be a finite number")
var UncertaintyPenaltyIncompleteErr = fmt.Errorf("uncertainty penalty must be set for every evidence strength")
var UnknownEvidenceStrengthErr = fmt.Errorf("unknown evidence strength")
