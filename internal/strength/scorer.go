package strength

import (
	"fmt"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/nao1215/pwtool/internal/model"
)

// Scorer is an external strength estimator.
// Score returns a value from 0 (weakest) to 4 (strongest). Implementations
// may return an error wrapping model.ErrExternalUnavailable; the Analyzer
// treats any error as "no external score".
type Scorer interface {
	Score(password string) (int, error)
}

// Estimator is a Scorer that also reports its own entropy and crack time.
// The Analyzer prefers Estimate when a scorer implements it.
type Estimator interface {
	Scorer
	Estimate(password string) (*model.ExternalEstimate, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(password string) (int, error)

// Score calls f(password).
func (f ScorerFunc) Score(password string) (int, error) {
	return f(password)
}

// ZxcvbnScorer scores passwords with the zxcvbn pattern matcher.
// It detects dictionary words, dates, keyboard walks, repeats and l33t
// substitutions that the entropy estimate cannot see.
type ZxcvbnScorer struct {
	// userInputs are extra dictionary words, such as the user's name,
	// that make a password weaker when it contains them.
	userInputs []string
}

// NewZxcvbnScorer creates a scorer. userInputs may be empty.
func NewZxcvbnScorer(userInputs ...string) *ZxcvbnScorer {
	inputs := make([]string, 0, len(userInputs))
	for _, in := range userInputs {
		if in != "" {
			inputs = append(inputs, in)
		}
	}
	return &ZxcvbnScorer{userInputs: inputs}
}

// Score returns the zxcvbn score for the password.
// A panic inside the matcher is reported as model.ErrExternalUnavailable.
func (s *ZxcvbnScorer) Score(password string) (int, error) {
	est, err := s.Estimate(password)
	if err != nil {
		return 0, err
	}
	return est.Score, nil
}

// Estimate returns the zxcvbn score with its entropy and crack time.
// A panic inside the matcher is reported as model.ErrExternalUnavailable.
func (s *ZxcvbnScorer) Estimate(password string) (est *model.ExternalEstimate, err error) {
	defer func() {
		if r := recover(); r != nil {
			est = nil
			err = fmt.Errorf("%w: zxcvbn: %v", model.ErrExternalUnavailable, r)
		}
	}()

	result := zxcvbn.PasswordStrength(password, s.userInputs)
	return &model.ExternalEstimate{
		Score:            result.Score,
		EntropyBits:      result.Entropy,
		CrackTimeSeconds: result.CrackTime,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}, nil
}
