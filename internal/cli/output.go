package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successColor  = color.New(color.FgGreen)
	warningColor  = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed, color.Bold)
	progressColor = color.New(color.FgBlue)
	verboseColor  = color.New(color.FgHiBlack)
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", successColor.Sprint("✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", warningColor.Sprint("⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", errorColor.Sprint("✗"), msg)
}

// printVerbose prints a verbose message (only if verbose is enabled)
func printVerbose(msg string) {
	if !globalVerbose || globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", verboseColor.Sprint("[VERBOSE]"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", progressColor.Sprint("→"), msg)
}



// printData writes command output that must appear even in quiet mode.
func printData(format string, args ...any) {
	fmt.Fprintf(stdout, format, args...)
}
