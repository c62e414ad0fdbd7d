// Package builtins lists the built-in command names the validator
// recognizes without a PATH lookup (spec.md §4.8). Executing them is out
// of scope (spec.md §1's Non-goals) — this package only answers "is this
// name a built-in", the identity check the validator needs. The set
// matches cmd::built_in::COMMANDS in original_source/include/command/built_in.hh.
package builtins

var names = map[string]bool{
	"cd":   true,
	"exit": true,
	"pwd":  true,
	"calc": true,
}

// Names returns every recognized built-in name.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	return out
}

// Is reports whether name is a built-in.
func Is(name string) bool {
	return names[name]
}
