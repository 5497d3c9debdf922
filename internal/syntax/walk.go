package syntax

import (
	"localecheck/internal/token"
)

// Inspect calls visit for every macro invocation in f in document order.
// If visit returns true, the invocation's arguments are searched as well, so
// `println!("{}", t!("key"))` yields both calls. The bodies of `macro_rules!`
// definitions are never searched: they hold templates, not invocations.
func Inspect(f *File, visit func(*MacroCall) bool) {
	walkTrees(f.Trees, visit)
}

// MacroCalls collects every invocation Inspect would visit.
func MacroCalls(f *File) []*MacroCall {
	var calls []*MacroCall
	Inspect(f, func(m *MacroCall) bool {
		calls = append(calls, m)
		return true
	})
	return calls
}

func walkTrees(trees []Tree, visit func(*MacroCall) bool) {
	for i := 0; i < len(trees); i++ {
		if startsPath(trees, i) {
			if call, next, ok := matchMacro(trees, i); ok {
				if call != nil && visit(call) {
					walkTrees(call.Args.Trees, visit)
				}
				i = next - 1
				continue
			}
		}
		if g := trees[i].Group; g != nil {
			walkTrees(g.Trees, visit)
		}
	}
}

// startsPath: путь начинается на Ident или на ведущем `::`, но не в середине
// другого пути (`foo::bar::t` разбираем только с `foo`).
func startsPath(trees []Tree, i int) bool {
	switch {
	case trees[i].Is(token.Ident):
		return i == 0 || !trees[i-1].Is(token.ColonColon)
	case trees[i].Is(token.ColonColon):
		return i == 0 || !trees[i-1].Is(token.Ident)
	}
	return false
}

// matchMacro tries to read `::? ident (:: ident)* ! group` at trees[i].
// It returns the index just past the consumed trees. A nil call with ok set
// means a `macro_rules! name { ... }` definition that must be skipped.
func matchMacro(trees []Tree, i int) (call *MacroCall, next int, ok bool) {
	start := i
	var path Path
	if trees[i].Is(token.ColonColon) {
		path.LeadingColon = true
		i++
	}
	for {
		if i >= len(trees) || !trees[i].Is(token.Ident) {
			return nil, 0, false
		}
		path.Segments = append(path.Segments, trees[i].Token)
		i++
		if i < len(trees) && trees[i].Is(token.ColonColon) {
			i++
			continue
		}
		break
	}
	if i >= len(trees) || !trees[i].Is(token.Bang) {
		return nil, 0, false
	}
	bang := trees[i].Token
	i++
	if i >= len(trees) {
		return nil, 0, false
	}

	if trees[i].Group == nil {
		if isMacroRules(path) && trees[i].Is(token.Ident) && i+1 < len(trees) && trees[i+1].Group != nil {
			return nil, i + 2, true
		}
		return nil, 0, false
	}

	args := trees[i].Group
	return &MacroCall{
		Path: path,
		Bang: bang,
		Args: args,
		Span: trees[start].Span().Cover(args.Close.Span),
	}, i + 1, true
}

func isMacroRules(p Path) bool {
	return !p.LeadingColon && len(p.Segments) == 1 && p.Segments[0].Text == "macro_rules"
}
