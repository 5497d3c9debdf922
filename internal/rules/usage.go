package rules

import (
	"fmt"

	"localecheck/internal/diag"
	"localecheck/internal/keys"
)

// UseOfKeysDoNotExist reports every usage whose key is not in the table.
type UseOfKeysDoNotExist struct{}

func (UseOfKeysDoNotExist) Name() string { return UseOfKeysDoNotExistName }

func (r UseOfKeysDoNotExist) Check(in Input, out diag.Reporter) {
	for _, u := range in.Usages {
		if !in.Table.Has(u.Key) {
			out.Report(diag.New(r.Name(), UsageSubject(u)))
		}
	}
}

// UsageSubject formats a usage as
// `file '<path>' / line '<line>' / column '<column>' / key '<key>'`.
func UsageSubject(u keys.Usage) string {
	return fmt.Sprintf("file '%s' / line '%d' / column '%d' / key '%s'", u.File, u.Line, u.Column, u.Key)
}
