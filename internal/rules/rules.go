// Package rules holds the shipped consistency checks. Each rule reads the
// locale table and the extracted key usages and reports diagnostics under
// its own constant name.
package rules

import (
	"localecheck/internal/diag"
	"localecheck/internal/keys"
	"localecheck/internal/locale"
)

// Rule names. They are part of the output format and of the configuration
// surface (`--disable-rule`), so they never change.
const (
	MissingTranslationsName = "MissingTranslations"
	KeyEnglishMatchesName   = "KeyEnglishMatches"
	UseOfKeysDoNotExistName = "UseOfKeysDoNotExist"
)

// Names lists the shipped rules in registration order.
func Names() []string {
	return []string{MissingTranslationsName, KeyEnglishMatchesName, UseOfKeysDoNotExistName}
}

// Description returns a one-line summary of the rule called name.
func Description(name string) string {
	switch name {
	case MissingTranslationsName:
		return "every locale key has an English translation"
	case KeyEnglishMatchesName:
		return "English text equals the key with {x} written as %{x}"
	case UseOfKeysDoNotExistName:
		return "every key used in the sources exists in the locale file"
	default:
		return ""
	}
}

// Input bundles what every rule reads.
type Input struct {
	Table  *locale.Table
	Usages []keys.Usage
}

// MissingTranslations reports every key lacking a translation in one of the
// supported languages, one diagnostic per key.
type MissingTranslations struct{}

func (MissingTranslations) Name() string { return MissingTranslationsName }

func (r MissingTranslations) Check(in Input, out diag.Reporter) {
	for key, rec := range in.Table.All() {
		if msg := rec.MissingMessage(); msg != "" {
			out.Report(diag.WithMessage(r.Name(), key, msg))
		}
	}
}
