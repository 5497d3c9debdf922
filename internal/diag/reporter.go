package diag

// Reporter - минимальный контракт получения диагностик от правил.
// Реализации: *Collector, CountingReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// CountingReporter counts diagnostics per rule before forwarding them.
type CountingReporter struct {
	Next   Reporter
	Counts map[string]int
}

func (r *CountingReporter) Report(d Diagnostic) {
	if r.Counts == nil {
		r.Counts = make(map[string]int)
	}
	r.Counts[d.Rule]++
	if r.Next != nil {
		r.Next.Report(d)
	}
}
