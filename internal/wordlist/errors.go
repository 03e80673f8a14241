package wordlist

import (
	"fmt"

	"github.com/nao1215/pwtool/internal/model"
)

// MaxYears is the largest number of years a range may cover.
const MaxYears = 100

// Generation errors. All wrap model.ErrInvalidInput.
var (
	// ErrNoHints is returned when no usable hint remains after trimming.
	ErrNoHints = fmt.Errorf("%w: at least one non-empty hint is required", model.ErrInvalidInput)

	// ErrInvalidYearRange is returned when the start year is after the end
	// year or either bound is negative.
	ErrInvalidYearRange = fmt.Errorf("%w: year range start must not be after end", model.ErrInvalidInput)

	// ErrYearRangeTooLarge is returned when the range covers more than MaxYears years.
	ErrYearRangeTooLarge = fmt.Errorf("%w: year range must cover at most %d years", model.ErrInvalidInput, MaxYears)
)
