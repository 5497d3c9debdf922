// Package syntax turns a Rust token stream into token trees and locates
// macro invocations inside them.
//
// The tree mirrors what a procedural macro sees: leaves are tokens, groups are
// balanced (), [] or {} pairs. Item, expression and statement structure is not
// modelled; a macro invocation `path!(...)` looks the same wherever it
// appears, so walking every group in document order reaches every invocation
// regardless of nesting.
//
// Parse fails on any lexical error and on unbalanced delimiters, which is the
// point at which rustc itself would refuse the file.
package syntax
