package diagfmt

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"localecheck/internal/keys"
)

// UsageJSON is one usage in the keys listing.
type UsageJSON struct {
	Key    string `json:"key"`
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Known  bool   `json:"known"`
}

// KeysTable renders usages as a bordered table. known reports whether a key
// exists in the locale table; unknown keys are highlighted.
func KeysTable(w io.Writer, usages []keys.Usage, known func(string) bool, opts KeysOpts) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	missingStyle := cellStyle
	if opts.Color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("7"))
		missingStyle = missingStyle.Foreground(lipgloss.Color("1"))
	}

	rows := make([][]string, 0, len(usages))
	for _, u := range usages {
		status := "yes"
		if !known(u.Key) {
			status = "no"
		}
		rows = append(rows, []string{
			u.File,
			strconv.FormatUint(uint64(u.Line), 10),
			strconv.FormatUint(uint64(u.Column), 10),
			truncate(u.Key, opts.KeyWidth),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "LINE", "COL", "KEY", "KNOWN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// строка 0 это заголовок, данные начинаются с 1
			if row == 0 {
				return headerStyle
			}
			idx := row - 1
			if idx < len(rows) && rows[idx][4] == "no" {
				return missingStyle
			}
			return cellStyle
		})
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

// KeysJSON writes usages as a JSON array.
func KeysJSON(w io.Writer, usages []keys.Usage, known func(string) bool) error {
	out := make([]UsageJSON, 0, len(usages))
	for _, u := range usages {
		out = append(out, UsageJSON{Key: u.Key, File: u.File, Line: u.Line, Column: u.Column, Known: known(u.Key)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
