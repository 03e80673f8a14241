package strength

import (
	"math"
	"unicode"

	"github.com/nao1215/pwtool/internal/model"
)

// Alphabet sizes per character class.
// SymbolAlphabetSize approximates the printable ASCII punctuation set.
const (
	LowerAlphabetSize  = 26
	UpperAlphabetSize  = 26
	DigitAlphabetSize  = 10
	SymbolAlphabetSize = 32
)

// classAlphabetSizes maps each class to the size it adds to the charset.
var classAlphabetSizes = map[model.CharClass]int{
	model.ClassLower:  LowerAlphabetSize,
	model.ClassUpper:  UpperAlphabetSize,
	model.ClassDigit:  DigitAlphabetSize,
	model.ClassSymbol: SymbolAlphabetSize,
}

// ClassifyRunes scans the password once and returns the classes present.
// Letters without case (e.g. CJK) and marks fall into the symbol class.
func ClassifyRunes(password string) model.CharClassSet {
	var set model.CharClassSet
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			set = set.Add(model.ClassLower)
		case unicode.IsUpper(r), unicode.IsTitle(r):
			set = set.Add(model.ClassUpper)
		case unicode.IsDigit(r):
			set = set.Add(model.ClassDigit)
		default:
			set = set.Add(model.ClassSymbol)
		}
	}
	return set
}

// CharsetSize returns the summed alphabet size of the classes in the set.
// It never returns less than 1 so the entropy formula stays defined.
func CharsetSize(classes model.CharClassSet) int {
	size := 0
	for _, c := range classes.List() {
		size += classAlphabetSizes[c]
	}
	if size < 1 {
		return 1
	}
	return size
}

// Entropy returns length * log2(charsetSize).
func Entropy(length, charsetSize int) float64 {
	if charsetSize < 1 {
		charsetSize = 1
	}
	return float64(length) * math.Log2(float64(charsetSize))
}
