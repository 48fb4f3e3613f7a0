package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim         = lipgloss.NewStyle().Foreground(colorGray)
)

const iconSuccess = "✓"

// printSuccess writes "✓ msg (detail)" to w.
func printSuccess(w io.Writer, msg, detail string) {
	if detail == "" {
		fmt.Fprintf(w, "%s %s\n", styleIconSuccess.Render(iconSuccess), msg)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", styleIconSuccess.Render(iconSuccess), msg, styleDim.Render("("+detail+")"))
}
