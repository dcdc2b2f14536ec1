package ui

import "fmt"

// ASCII logo for the application
const ASCIILogo = `
    ╔════════════════════════════════════════════════════╗
    ║ ██╗  ██╗██╗   ██╗██╗██████╗ ███████╗██╗██████╗     ║
    ║ ╚██╗██╔╝██║   ██║██║██╔══██╗╚══███╔╝██║██╔══██╗    ║
    ║  ╚███╔╝ ██║   ██║██║██║  ██║  ███╔╝ ██║██████╔╝    ║
    ║  ██╔██╗ ╚██╗ ██╔╝██║██║  ██║ ███╔╝  ██║██╔═══╝     ║
    ║ ██╔╝ ██╗ ╚████╔╝ ██║██████╔╝███████╗██║██║         ║
    ║ ╚═╝  ╚═╝  ╚═══╝  ╚═╝╚═════╝ ╚══════╝╚═╝╚═╝         ║
    ║       X/TWITTER VIDEO ARCHIVE UTILITY              ║
    ╚════════════════════════════════════════════════════╝
`

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
	Dim     = colorize("\033[2m%s\033[0m")
)

var (
	colorEnabled = true
	quietMode    = false
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		if !colorEnabled {
			return text
		}
		return fmt.Sprintf(colorString, text)
	}
}

// DisableColor turns off ANSI color codes in all output
func DisableColor() {
	colorEnabled = false
}

// SetQuietMode suppresses everything except errors
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// PrintLogo prints the ASCII logo with color
func PrintLogo() {
	if quietMode {
		return
	}
	fmt.Print(Cyan(ASCIILogo))
}

// PrintError prints an error message in red
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		fmt.Println(Red(msg + ": " + fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Println(Red(msg))
	}
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	if quietMode {
		return
	}
	fmt.Println(Green(msg))
}

// PrintInfo prints a labeled info line in cyan
func PrintInfo(label string, value string) {
	if quietMode {
		return
	}
	fmt.Printf("%s: %s\n", Cyan(label), Yellow(value))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	if quietMode {
		return
	}
	if len(args) > 0 {
		fmt.Println(Yellow(msg + ": " + fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Println(Yellow(msg))
	}
}

// PrintHighlight prints a highlighted message in magenta
func PrintHighlight(msg string) {
	if quietMode {
		return
	}
	fmt.Println(Magenta(msg))
}

// PrintEntry prints one archived file with its size
func PrintEntry(name string, sizeBytes int64) {
	if quietMode {
		return
	}
	fmt.Printf("   %s %s (%.1f MB)\n", Green("Added:"), name, float64(sizeBytes)/(1024*1024))
}

// PrintEmptyGuidance explains the "nothing downloaded" outcome. It is a
// normal terminal state, so the hints go to stdout, not stderr.
func PrintEmptyGuidance() {
	fmt.Println(Yellow("No videos were downloaded."))
	fmt.Println("Possible reasons:")
	fmt.Println("  - The account is private (use --cookies for authenticated access)")
	fmt.Println("  - The account has no videos")
	fmt.Println("  - Rate limiting by the platform")
	fmt.Println("  - The username is incorrect")
	fmt.Println()
	fmt.Println(Dim("Tip: export your browser cookies and pass --cookies cookies.txt"))
}
