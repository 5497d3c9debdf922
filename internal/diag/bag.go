package diag

import (
	"iter"
	"slices"
)

// Collector accumulates diagnostics grouped by rule name. Rule groups keep
// the order in which their first diagnostic arrived; diagnostics inside a
// group keep report order.
type Collector struct {
	order  []string
	byRule map[string][]Diagnostic
	total  int
}

func NewCollector() *Collector {
	return &Collector{byRule: make(map[string][]Diagnostic)}
}

// Add appends d to the group of d.Rule.
func (c *Collector) Add(d Diagnostic) {
	if _, ok := c.byRule[d.Rule]; !ok {
		c.order = append(c.order, d.Rule)
	}
	c.byRule[d.Rule] = append(c.byRule[d.Rule], d)
	c.total++
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) { c.Add(d) }

// HasErrors возвращает true, если есть хотя бы одна диагностика.
func (c *Collector) HasErrors() bool {
	return c != nil && c.total > 0
}

// Len returns the number of diagnostics.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Rules returns the rule names that reported something, in first-report order.
func (c *Collector) Rules() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.order)
}

// ForRule returns a copy of the diagnostics reported under rule.
func (c *Collector) ForRule(rule string) []Diagnostic {
	if c == nil {
		return nil
	}
	return slices.Clone(c.byRule[rule])
}

// Groups iterates rule groups in first-report order.
// ВАЖНО: не модифицируйте срезы, они указывают на внутренние массивы.
func (c *Collector) Groups() iter.Seq2[string, []Diagnostic] {
	return func(yield func(string, []Diagnostic) bool) {
		if c == nil {
			return
		}
		for _, rule := range c.order {
			if !yield(rule, c.byRule[rule]) {
				return
			}
		}
	}
}

// Items returns every diagnostic, grouped by rule.
func (c *Collector) Items() []Diagnostic {
	if c == nil {
		return nil
	}
	out := make([]Diagnostic, 0, c.total)
	for _, rule := range c.order {
		out = append(out, c.byRule[rule]...)
	}
	return out
}

// Equal reports whether both collectors hold the same groups in the same order.
func (c *Collector) Equal(other *Collector) bool {
	if c.Len() != other.Len() || !slices.Equal(c.Rules(), other.Rules()) {
		return false
	}
	return slices.EqualFunc(c.Items(), other.Items(), Diagnostic.Equal)
}
