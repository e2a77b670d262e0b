package checks

import (
	"fmt"
	"sort"
)

// All returns the default catalogue of checks in a stable order.
func All() []Check {
	return []Check{
		NewIncorrectDelimiter(),
		KeyWithoutValue{},
		LeadingCharacter{},
		LowercaseKey{},
		SpaceCharacter{},
		TrailingWhitespace{},
	}
}

// Names returns the sorted names of the default catalogue.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name belongs to a check in the default catalogue.
func IsKnown(name string) bool {
	for _, c := range All() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Filter returns the checks whose names are not listed in skip.
// Unknown names in skip are reported as an error.
func Filter(all []Check, skip []string) ([]Check, error) {
	known := make(map[string]struct{}, len(all))
	for _, c := range all {
		known[c.Name()] = struct{}{}
	}

	skipped := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown check %q", name)
		}
		skipped[name] = struct{}{}
	}

	result := make([]Check, 0, len(all))
	for _, c := range all {
		if _, ok := skipped[c.Name()]; ok {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}
