// Package ansiseq classifies incoming CSI sequences and emits the
// cursor-movement and SGR escapes the terminal handler and diagnostic
// renderer need, grounded on the escape handling in
// kylelemons-goat/term/term_line.go's lineesc (which recognizes the same
// 'A'/'B'/'C'/'D' terminators) and kylelemons-goat/term/codes.go's control
// constants.
package ansiseq

import "strconv"

// IsArrow reports whether seq (a CSI sequence beginning with '[' and
// ending at the terminating byte) is an arrow key.
func IsArrow(seq string) bool {
	if len(seq) == 0 {
		return false
	}
	switch seq[len(seq)-1] {
	case 'A', 'B', 'C', 'D':
		return true
	default:
		return false
	}
}

// modifierDigit extracts the digit following the first ';' in seq, or -1
// if there is no modifier segment (e.g. a bare "[A" or "[H").
func modifierDigit(seq string) int {
	semi := -1
	for i := 0; i < len(seq); i++ {
		if seq[i] == ';' {
			semi = i
			break
		}
	}
	if semi < 0 || semi+1 >= len(seq) {
		return -1
	}
	d, err := strconv.Atoi(string(seq[semi+1]))
	if err != nil {
		return -1
	}
	return d
}

// IsCtrlPressed reports whether the modifier digit after ';' is 5 or 6
// (Ctrl, or Ctrl+Shift).
func IsCtrlPressed(seq string) bool {
	d := modifierDigit(seq)
	return d == 5 || d == 6
}

// IsShiftPressed reports whether the modifier digit after ';' is 2 or 6
// (Shift, or Ctrl+Shift).
func IsShiftPressed(seq string) bool {
	d := modifierDigit(seq)
	return d == 2 || d == 6
}

// IsHomeEnd returns -1 for Home ("[H", "[1~", and their Ctrl/Shift-modified
// forms such as "[1;5H"), +1 for End ("[F", "[4~" and modified forms), and
// 0 for anything else.
func IsHomeEnd(seq string) int {
	if len(seq) == 0 {
		return 0
	}
	switch seq[len(seq)-1] {
	case 'H':
		return -1
	case 'F':
		return 1
	case '~':
		switch {
		case len(seq) >= 2 && seq[1] == '1':
			return -1
		case len(seq) >= 2 && seq[1] == '4':
			return 1
		}
	}
	return 0
}
