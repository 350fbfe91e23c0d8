package cmd

import "os"

var (
	envGet            = os.Getenv
	terminalWidthFunc = terminalWidth
)
