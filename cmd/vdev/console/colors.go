package console

import "github.com/fatih/color"

// ANSI colors used by the cli output
var (
	Red   = color.New(color.FgRed).SprintFunc()
	White = color.New(color.FgHiWhite).SprintFunc()
	Bold  = color.New(color.Bold).SprintFunc()
)
