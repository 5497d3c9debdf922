package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(2 * time.Millisecond), base.Add(3 * time.Millisecond), base.Add(7 * time.Millisecond)}
	timer := NewTimer()
	timer.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	endLoad := timer.Track("load locale")
	endLoad("12 keys")
	extract := timer.Begin("extract")
	timer.End(extract, "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	if report.Phases[0].DurationMS != 2 || report.Phases[1].DurationMS != 4 || report.TotalMS != 6 {
		t.Fatalf("report = %+v", report)
	}
	summary := timer.Summary()
	if !strings.Contains(summary, "load locale") || !strings.Contains(summary, "// 12 keys") {
		t.Fatalf("summary:\n%s", summary)
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	end := timer.Track("x")
	end("ignored")
	timer.End(timer.Begin("y"), "")
	if r := timer.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("nil timer report = %+v", r)
	}
}
