package terminal

import "os"

type Capabilities struct {
	SupportsRGB bool
	TermProgram string
}

func DetectCapabilities() *Capabilities {
	caps := &Capabilities{
		SupportsRGB: true,
		TermProgram: os.Getenv("TERM_PROGRAM"),
	}

	// only truecolor terminals get the blended ambient background;
	// everything else falls back to the terminal's own palette
	if colorterm := os.Getenv("COLORTERM"); colorterm != "truecolor" && colorterm != "24bit" {
		if caps.TermProgram == "" {
			caps.SupportsRGB = false
		}
	}

	return caps
}

// Reset restores cursor, colors and screen state after an abnormal
// exit, when bubbletea did not get to clean up.
func Reset() {
	os.Stdout.WriteString("\033[?25h")
	os.Stdout.WriteString("\033[0m")
	os.Stdout.WriteString("\033[?1049l")
	os.Stdout.WriteString("\033[?1000l")
	os.Stdout.WriteString("\033[?1002l")
	os.Stdout.WriteString("\033[?1003l")
	os.Stdout.WriteString("\033[?1006l")
	os.Stdout.Sync()
}
