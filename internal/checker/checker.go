// Package checker runs the registered consistency rules over a locale table
// and the key usages extracted from the sources.
package checker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"localecheck/internal/diag"
	"localecheck/internal/keys"
	"localecheck/internal/locale"
	"localecheck/internal/rules"
)

var (
	ErrUnknownRule   = errors.New("unknown rule")
	ErrDuplicateRule = errors.New("rule already registered")
)

// Rule is one consistency check. Check may only report through out.
type Rule interface {
	Name() string
	Check(in rules.Input, out diag.Reporter)
}

// Checker holds rules in registration order.
type Checker struct {
	rules []Rule
}

// New returns a checker with the given rules; duplicate names are an error.
func New(rs ...Rule) (*Checker, error) {
	c := &Checker{}
	for _, r := range rs {
		if err := c.Register(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns the shipped rule set.
func Default() *Checker {
	return &Checker{rules: []Rule{
		rules.MissingTranslations{},
		rules.KeyEnglishMatches{},
		rules.UseOfKeysDoNotExist{},
	}}
}

func (c *Checker) Register(r Rule) error {
	if c.index(r.Name()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, r.Name())
	}
	c.rules = append(c.rules, r)
	return nil
}

// Names returns the registered rule names in order.
func (c *Checker) Names() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Name()
	}
	return out
}

// Disable removes the named rules. Names are matched exactly; an unknown
// name leaves the checker unchanged and returns ErrUnknownRule.
func (c *Checker) Disable(names ...string) error {
	var unknown []string
	for _, n := range names {
		if c.index(n) < 0 {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s (known: %s)", ErrUnknownRule, strings.Join(unknown, ", "), strings.Join(c.Names(), ", "))
	}
	c.rules = slices.DeleteFunc(c.rules, func(r Rule) bool {
		return slices.Contains(names, r.Name())
	})
	return nil
}

func (c *Checker) index(name string) int {
	return slices.IndexFunc(c.rules, func(r Rule) bool { return r.Name() == name })
}

// Run executes every rule in registration order against a fresh collector.
func (c *Checker) Run(table *locale.Table, usages []keys.Usage) *diag.Collector {
	out := diag.NewCollector()
	c.RunInto(table, usages, out)
	return out
}

// RunInto is Run with a caller supplied reporter.
func (c *Checker) RunInto(table *locale.Table, usages []keys.Usage, out diag.Reporter) {
	in := rules.Input{Table: table, Usages: usages}
	for _, r := range c.rules {
		r.Check(in, out)
	}
}
