package display

// ANSI escapes used by the terminal renderings.
const (
	escBoldRed    = "\x1b[1;31m"
	escBoldGreen  = "\x1b[1;32m"
	escBoldYellow = "\x1b[1;33m"
	escBold       = "\x1b[1m"
	escRed        = "\x1b[31m"
	escGreen      = "\x1b[32m"
	escMagenta    = "\x1b[35m"
	escReset      = "\x1b[0m"
)

// paint wraps s in esc when enabled.
func paint(enabled bool, esc, s string) string {
	if !enabled || esc == "" {
		return s
	}
	return esc + s + escReset
}
