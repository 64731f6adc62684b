package render

import "fmt"

// ANSI escape sequences for plain-text output.
const (
	Reset  = "\x1b[0m"
	Red    = "\x1b[0;31m"
	Green  = "\x1b[0;32m"
	Yellow = "\x1b[0;33m"
	Cyan   = "\x1b[0;36m"
	White  = "\x1b[0;37m"
	Bold   = "\x1b[1m"
)

// Fg256 returns the escape sequence for a 256-color foreground code.
func Fg256(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("\x1b[38;5;%sm", code)
}

// StatusColor picks the escape sequence for a status text.
func StatusColor(status string) string {
	switch status {
	case "Boarding":
		return Green
	case "Delayed":
		return Yellow
	case "Cancelled":
		return Red
	}
	return White
}
