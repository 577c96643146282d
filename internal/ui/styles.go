package ui

import (
	"fmt"

	"github.com/mgutz/ansi"
)

var (
	yellow     = ansi.ColorFunc("yellow")
	yellowBold = ansi.ColorFunc("yellow+b")
	cyan       = ansi.ColorFunc("cyan")
	cyanBold   = ansi.ColorFunc("cyan+b")
	green      = ansi.ColorFunc("green")
	greenBold  = ansi.ColorFunc("green+b")
	redBold    = ansi.ColorFunc("red+b")
	bold       = ansi.ColorFunc("default+b")
	dim        = ansi.ColorFunc("black+h")
)

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Printf("%s %s\n", green("✓"), message)
}

// Error prints an error message
func Error(message string) {
	fmt.Printf("%s %s\n", redBold("✗"), message)
}

// Info prints an info message
func Info(message string) {
	fmt.Printf("%s %s\n", cyan("ℹ"), message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Printf("%s %s\n", yellow("⚠"), message)
}
