package wordlist

// orderedSet keeps the first occurrence of each string in insertion order.
// A positive limit caps the number of entries; further adds are ignored.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
	limit int
}

func newOrderedSet(limit int) *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}),
		items: make([]string, 0),
		limit: limit,
	}
}

// add inserts s if it is new and the set is not full.
// It reports whether s was inserted.
func (o *orderedSet) add(s string) bool {
	if o.full() {
		return false
	}
	if _, ok := o.seen[s]; ok {
		return false
	}
	o.seen[s] = struct{}{}
	o.items = append(o.items, s)
	return true
}

// addAll inserts the elements of ss in order until the set is full.
func (o *orderedSet) addAll(ss []string) {
	for _, s := range ss {
		if o.full() {
			return
		}
		o.add(s)
	}
}

// full reports whether the limit has been reached.
func (o *orderedSet) full() bool {
	return o.limit > 0 && len(o.items) >= o.limit
}

// len returns the number of entries.
func (o *orderedSet) len() int {
	return len(o.items)
}

// list returns the entries in insertion order.
func (o *orderedSet) list() []string {
	return o.items
}

// dedupe returns ss without duplicates, keeping first occurrences.
func dedupe(ss []string) []string {
	set := newOrderedSet(0)
	set.addAll(ss)
	return set.list()
}
