package model

// Strength represents a coarse password strength level on the same 0-4 scale
// used by zxcvbn-style scorers. Levels are ordered and compare directly.
type Strength int

const (
	// StrengthVeryWeak is trivially guessable.
	StrengthVeryWeak Strength = iota

	// StrengthWeak resists only online guessing with throttling.
	StrengthWeak

	// StrengthFair resists online attacks but not an offline attack
	// against a fast hash.
	StrengthFair

	// StrengthStrong resists offline attacks against slow hashes.
	StrengthStrong

	// StrengthVeryStrong is out of reach of realistic offline attacks.
	StrengthVeryStrong
)

// String returns a human-readable representation of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthVeryWeak:
		return "VERY WEAK"
	case StrengthWeak:
		return "WEAK"
	case StrengthFair:
		return "FAIR"
	case StrengthStrong:
		return "STRONG"
	case StrengthVeryStrong:
		return "VERY STRONG"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the five defined levels.
func (s Strength) Valid() bool {
	return s >= StrengthVeryWeak && s <= StrengthVeryStrong
}

// Entropy thresholds in bits used by RatingFromEntropy.
// A level applies when the entropy is below its upper bound.
const (
	veryWeakBelowBits = 28.0
	weakBelowBits     = 36.0
	fairBelowBits     = 60.0
	strongBelowBits   = 128.0
)

// RatingFromEntropy maps a theoretical entropy estimate to a strength level.
// The estimate is an upper bound, so the rating is optimistic for passwords
// built from dictionary words or keyboard patterns.
func RatingFromEntropy(bits float64) Strength {
	switch {
	case bits < veryWeakBelowBits:
		return StrengthVeryWeak
	case bits < weakBelowBits:
		return StrengthWeak
	case bits < fairBelowBits:
		return StrengthFair
	case bits < strongBelowBits:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// StrengthInfo describes what a level means and what to do about it.
type StrengthInfo struct {
	Summary string
	Advice  string
}

// strengthInfoMapping is the single source of truth for level descriptions.
var strengthInfoMapping = map[Strength]StrengthInfo{
	StrengthVeryWeak: {
		Summary: "Guessable within seconds by any cracking tool.",
		Advice:  "Use a long passphrase of several unrelated words.",
	},
	StrengthWeak: {
		Summary: "Survives only rate-limited online guessing.",
		Advice:  "Add length; length beats symbol substitution.",
	},
	StrengthFair: {
		Summary: "Resists online attacks but not an offline attack on a fast hash.",
		Advice:  "Add another word or several random characters.",
	},
	StrengthStrong: {
		Summary: "Resists offline attacks against properly salted slow hashes.",
		Advice:  "Fine for most accounts; keep it unique per site.",
	},
	StrengthVeryStrong: {
		Summary: "Out of reach of realistic offline attacks.",
		Advice:  "Store it in a password manager.",
	},
}

// GetStrengthInfo returns the description for a strength level.
// Unknown levels get an empty StrengthInfo.
func GetStrengthInfo(s Strength) StrengthInfo {
	return strengthInfoMapping[s]
}
