// Package wordlist generates candidate password lists from user hints.
//
// Each hint runs through a fixed chain of stages:
//
//  1. case variants: as-is, lower, upper, capitalized
//  2. leetspeak: one combined substitution (a->4 e->3 i->1 o->0 s->5 t->7)
//  3. years: variant+year and year+variant for every year in range
//  4. suffixes: the variant itself plus the variant with each suffix
//
// The results of all hints are merged into an insertion-ordered set, so the
// output has no duplicates and is identical for identical inputs.
package wordlist
