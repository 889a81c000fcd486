/*
Package builtin holds Rocket's fixed, closed built-in registry (spec table
4.6): print, input, range, format, the numeric parsers, the arithmetic and
comparison functions, and the boolean operators. There is no operator
syntax in the language — every arithmetic, comparison, and logical
operation is one of these named functions — and there is no way for a
Rocket program to add to this table.

Grounded in the teacher's std.Builtin{Name, Callback} + package-level
Builtins slice + per-concern-file init() registration (std/builtins.go,
std/common.go), pared to the closed set the specification defines, split
across arith.go, compare.go, logic.go, io.go, convert.go, and sequence.go.

File : rocket/builtin/registry.go
*/
package builtin

import "github.com/rocket-lang/rocket/value"

// Registry maps every built-in name to its implementation. It is built up
// by each concern file's init() and is otherwise read-only once the
// program starts.
var Registry = make(map[string]*value.BuiltinFunction)

func register(b *value.BuiltinFunction) {
	Registry[b.Name] = b
}
