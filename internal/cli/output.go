package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text. Without colour support the
// prefix and suffix stand in for the colour.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// noColor reports whether colour output is disabled, either through
// NO_COLOR (https://no-color.org/) or fatih/color's terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Path formats note and file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}
	// Success formats success marks and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}
	// Error formats error marks and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}
	// Warning formats warnings.
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	// Info formats hints and directional arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}
	// Muted formats secondary text such as table headers.
	Muted = Formatter{color.New(color.FgHiBlack), "", ""}
)

func successLine(format string, a ...any) string {
	return Success.Sprint("✓") + " " + fmt.Sprintf(format, a...)
}

func warningLine(format string, a ...any) string {
	return Warning.Sprint("!") + " " + fmt.Sprintf(format, a...)
}

func errorLine(format string, a ...any) string {
	return Error.Sprint("✗") + " " + fmt.Sprintf(format, a...)
}

func hintLine(format string, a ...any) string {
	return Info.Sprint("→") + " " + fmt.Sprintf(format, a...)
}
