package driver

import (
	"encoding/json"
	"io"

	"localecheck/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// WriteTimings writes the timer report to w, as text or as one JSON object.
func WriteTimings(w io.Writer, timer *observ.Timer, asJSON bool) error {
	if timer == nil {
		return nil
	}
	if !asJSON {
		_, err := io.WriteString(w, timer.Summary())
		return err
	}
	report := timer.Report()
	enc := json.NewEncoder(w)
	return enc.Encode(timingPayload{Kind: "pipeline", TotalMS: report.TotalMS, Phases: report.Phases})
}
