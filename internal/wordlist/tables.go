package wordlist

// leetTable maps lowercase letters to their substitutes.
// Lookups lowercase the input rune first, so 'A' is replaced as well.
var leetTable = map[rune]rune{
	'a': '4',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '5',
	't': '7',
}

// defaultSuffixes are appended to every variant unless overridden.
var defaultSuffixes = []string{"!", "123", "@123", "1", "!!", "#"}

// DefaultSuffixes returns a copy of the built-in suffix list.
func DefaultSuffixes() []string {
	out := make([]string, len(defaultSuffixes))
	copy(out, defaultSuffixes)
	return out
}
