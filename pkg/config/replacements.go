package config

import (
	"sort"

	"github.com/arthur-debert/lollywiz/pkg/conditional"
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/replacements"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// ReplacementMap builds the caller's replacement map: the name=value pairs
// in sets first, in order, then the configured replacements sorted by key.
// A key given twice keeps its first value.
func (c *Config) ReplacementMap(sets []string) (*replacements.Map, error) {
	m := replacements.New()
	for _, s := range sets {
		a, err := textscan.ParseAssignment(s)
		if err != nil || a.Name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid replacement '%s': expected name=value", s)
		}
		m.SetIfAbsent(a.Name, a.Value)
	}

	keys := make([]string, 0, len(c.Replacements))
	for k := range c.Replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.SetIfAbsent(k, c.Replacements[k])
	}
	return m, nil
}

// Definitions returns the configured condition names plus extra
func (c *Config) Definitions(extra ...string) conditional.Definitions {
	return conditional.NewDefinitions(append(append([]string{}, c.Define...), extra...)...)
}
