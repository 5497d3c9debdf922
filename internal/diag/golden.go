package diag

import "strings"

// FormatGolden renders c into a stable, single-line-per-entry representation
// suitable for golden files: `rule<TAB>subject[<TAB>message]`. Newlines inside
// messages are folded to spaces. Returns "" for an empty collector.
func FormatGolden(c *Collector) string {
	if c.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for rule, items := range c.Groups() {
		for _, d := range items {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(rule)
			b.WriteByte('\t')
			b.WriteString(d.Subject)
			if d.Message != nil {
				b.WriteByte('\t')
				b.WriteString(strings.Join(strings.Fields(*d.Message), " "))
			}
		}
	}
	return b.String()
}
