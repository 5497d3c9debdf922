package diagfmt

import (
	"encoding/json"
	"io"

	"localecheck/internal/diag"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Subject string  `json:"subject"`
	Message *string `json:"message,omitempty"`
}

// RuleJSON groups the diagnostics of one rule.
type RuleJSON struct {
	Rule        string           `json:"rule"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Rules []RuleJSON `json:"rules"`
	// Count is the number of diagnostics found, including ones cut by Max.
	Count     int  `json:"count"`
	Truncated bool `json:"truncated,omitempty"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(c *diag.Collector, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Rules: make([]RuleJSON, 0, len(c.Rules())), Count: c.Len()}
	shown := 0
	for rule, items := range c.Groups() {
		if opts.Max > 0 && shown >= opts.Max {
			break
		}
		group := RuleJSON{Rule: rule, Diagnostics: make([]DiagnosticJSON, 0, len(items))}
		for _, d := range items {
			if opts.Max > 0 && shown >= opts.Max {
				break
			}
			group.Diagnostics = append(group.Diagnostics, DiagnosticJSON{Subject: d.Subject, Message: d.Message})
			shown++
		}
		out.Rules = append(out.Rules, group)
	}
	out.Truncated = shown < out.Count
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, c *diag.Collector, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildDiagnosticsOutput(c, opts))
}
