// Package testkit holds assertions shared by parser and extractor tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"localecheck/internal/source"
	"localecheck/internal/syntax"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every tree span is non-empty, belongs to the file and stays within its content
// 2) sibling trees do not overlap and appear in source order
// 3) the children of a group lie strictly between its delimiters
func CheckSpanInvariants(f *syntax.File) error {
	if f == nil || f.Source == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(f.Source.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	outer := source.Span{File: f.Source.ID, Start: 0, End: lenContent}
	return checkTrees(f.Trees, outer, f.Source.ID)
}

func checkTrees(trees []syntax.Tree, within source.Span, id source.FileID) error {
	var prevEnd uint32
	for i, tr := range trees {
		sp := tr.Span()
		if sp.End <= sp.Start {
			return fmt.Errorf("empty tree span: %v", sp)
		}
		if sp.File != id {
			return fmt.Errorf("tree span file mismatch: got=%d want=%d", sp.File, id)
		}
		if !within.Contains(sp) {
			return fmt.Errorf("tree span %v is outside %v", sp, within)
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("tree span %v overlaps its predecessor ending at %d", sp, prevEnd)
		}
		prevEnd = sp.End

		if tr.Group == nil {
			continue
		}
		// 3) содержимое группы между скобками
		inner := source.Span{File: id, Start: tr.Group.Open.Span.End, End: tr.Group.Close.Span.Start}
		if inner.End < inner.Start {
			return fmt.Errorf("group delimiters out of order: %v", sp)
		}
		if err := checkTrees(tr.Group.Trees, inner, id); err != nil {
			return err
		}
	}
	return nil
}
