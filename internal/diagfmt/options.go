package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	Width int // максимальная ширина subject, 0 - не ограничено
	Max   int // обрезка вывода, не Collector; 0 - без ограничения
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max    int // обрезка вывода, не Collector
	Indent bool
}

// KeysOpts configures the usage listing of the keys command.
type KeysOpts struct {
	Color bool
	// KeyWidth truncates long keys in the table; 0 keeps them whole.
	KeyWidth int
}
