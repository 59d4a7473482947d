package helpers

import "github.com/chaindepth/chaindepth-client/libs/go/constants"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageLocal = constants.LocalEnvironment
	StageTest  = constants.TestEnvironment
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageLocal, StageTest:
		return true
	default:
		return false
	}
}
