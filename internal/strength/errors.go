package strength

import (
	"fmt"

	"github.com/nao1215/pwtool/internal/model"
)

// ErrEmptyPassword is returned when Analyze is called with an empty string.
var ErrEmptyPassword = fmt.Errorf("%w: password must not be empty", model.ErrInvalidInput)

// ErrScoreOutOfRange is returned when a scorer reports a value outside 0-4.
var ErrScoreOutOfRange = fmt.Errorf("%w: score out of range", model.ErrExternalUnavailable)
