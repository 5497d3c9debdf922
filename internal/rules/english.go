package rules

import (
	"localecheck/internal/diag"
	"localecheck/internal/keyfmt"
)

// MissingEnglishMessage is reported by KeyEnglishMatches when it meets a key
// without an English translation.
const MissingEnglishMessage = "Missing English translation"

// KeyEnglishMatches checks the naming convention: the English text of a key
// must equal the key with every `{x}` written as `%{x}`.
//
// The first key without an English translation is reported and ends the
// check; keys after it are not examined.
type KeyEnglishMatches struct{}

func (KeyEnglishMatches) Name() string { return KeyEnglishMatchesName }

func (r KeyEnglishMatches) Check(in Input, out diag.Reporter) {
	for key, rec := range in.Table.All() {
		en, ok := rec.English()
		if !ok {
			out.Report(diag.WithMessage(r.Name(), key, MissingEnglishMessage))
			return
		}
		if en != keyfmt.ExpectedEnglish(key) {
			out.Report(diag.New(r.Name(), key))
		}
	}
}
