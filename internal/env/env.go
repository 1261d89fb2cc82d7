package env

import (
	"os"
	"sort"
	"strings"
)

// Set is a mapping from variable name to value. Ordering is irrelevant;
// combining two sets is a right-biased overwrite where the merged-in set
// wins for any shared key.
type Set map[string]string

// Capture returns a Set built from the current process environment.
func Capture() Set {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a Set from a list of KEY=VALUE entries as returned
// by os.Environ. Entries without an '=' are skipped. A later duplicate
// entry for the same key wins, matching how the OS resolves duplicates.
func FromEnviron(environ []string) Set {
	s := make(Set, len(environ))
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		s[name] = value
	}
	return s
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge overwrites the receiver with every entry from other. Keys absent
// from other are untouched.
func (s Set) Merge(other Set) {
	for k, v := range other {
		s[k] = v
	}
}

// Lookup reports the value for name and whether it is present.
func (s Set) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Environ renders the set as a sorted list of KEY=VALUE entries suitable
// for process launch. Sorting keeps the output deterministic.
func (s Set) Environ() []string {
	out := make([]string, 0, len(s))
	for k, v := range s {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
