package diagnostic

import "os"

// ShouldUseColor reports whether SGR escapes should be emitted: NO_COLOR
// (https://no-color.org) and a non-tty out both disable it, mirroring
// opal-lang-opal/cli/colors.go's ShouldUseColor.
func ShouldUseColor(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil {
		return false
	}
	info, err := out.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
