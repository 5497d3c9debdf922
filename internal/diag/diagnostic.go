package diag

// Diagnostic is one finding of a rule.
type Diagnostic struct {
	Rule    string
	Subject string
	// Message is nil when the finding is fully described by the rule itself
	// (e.g. a naming mismatch); a non-nil message describes the failure.
	Message *string
}

// New returns a diagnostic without a message.
func New(rule, subject string) Diagnostic {
	return Diagnostic{Rule: rule, Subject: subject}
}

// WithMessage returns a diagnostic carrying msg.
func WithMessage(rule, subject, msg string) Diagnostic {
	return Diagnostic{Rule: rule, Subject: subject, Message: &msg}
}

// HasMessage reports whether d carries a message.
func (d Diagnostic) HasMessage() bool { return d.Message != nil }

// MessageText returns the message or "".
func (d Diagnostic) MessageText() string {
	if d.Message == nil {
		return ""
	}
	return *d.Message
}

// Equal compares diagnostics by value, including the message text.
func (d Diagnostic) Equal(o Diagnostic) bool {
	if d.Rule != o.Rule || d.Subject != o.Subject || d.HasMessage() != o.HasMessage() {
		return false
	}
	return d.MessageText() == o.MessageText()
}
