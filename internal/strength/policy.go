package strength

import (
	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/nao1215/pwtool/internal/model"
)

// CheckPolicy validates the password against a minimum entropy requirement.
//
// The check is delegated to go-password-validator, whose entropy estimate
// discounts repeated characters and common sequences. Its verdict can
// therefore differ from AnalysisResult.EntropyBits, which is the plain
// length * log2(charset) upper bound.
func CheckPolicy(password string, minEntropy float64) *model.PolicyResult {
	result := &model.PolicyResult{
		MinEntropy: minEntropy,
		Passed:     true,
	}
	if err := passwordvalidator.Validate(password, minEntropy); err != nil {
		result.Passed = false
		result.Message = err.Error()
	}
	return result
}
