package driver

import (
	"fmt"

	"localecheck/internal/locale"
	"localecheck/internal/localedata"
)

// LoadLocale reads, decodes and validates the locale file at path.
func LoadLocale(path string, format localedata.Format) (*locale.Table, error) {
	root, err := localedata.ReadFile(path, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocale, err)
	}
	table, err := locale.Parse(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLocale, path, err)
	}
	return table, nil
}
