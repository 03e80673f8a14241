// Package strength estimates password strength.
//
// The Analyzer computes a character-class breakdown and a theoretical entropy
// estimate (length * log2(charset size)) for one password. It can optionally
// merge the verdict of an external Scorer, such as ZxcvbnScorer, and check the
// password against a minimum entropy policy.
//
// The entropy estimate is an upper bound. It ignores dictionary words, keyboard
// walks and substitutions, so "Password1!" looks strong by entropy alone. The
// external scorer exists to catch those patterns; when it is unavailable the
// analyzer still succeeds and reports entropy only.
//
// # Usage
//
//	analyzer := strength.NewAnalyzer(
//	    strength.WithScorer(strength.NewZxcvbnScorer()),
//	    strength.WithMinEntropy(60),
//	)
//	result, err := analyzer.Analyze(password)
package strength
