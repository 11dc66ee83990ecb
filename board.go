// board.go
//
// Terminal rendering: the welcome banner, speaker-tagged game messages and
// the guess board. Codes get one colour per symbol so repeated colours are
// easy to spot; lipgloss degrades to plain text when stdout is not a
// terminal, so piped output stays clean.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/solver"
)

// Peg palette, indexed by symbol - 'A'. Past the eighth colour the palette
// wraps, which only matters for oversized alphabets.
var symbolColors = []lipgloss.Color{
	lipgloss.Color("9"),   // A - red
	lipgloss.Color("10"),  // B - green
	lipgloss.Color("11"),  // C - yellow
	lipgloss.Color("12"),  // D - blue
	lipgloss.Color("13"),  // E - magenta
	lipgloss.Color("14"),  // F - cyan
	lipgloss.Color("208"), // G - orange
	lipgloss.Color("15"),  // H - white
}

var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSpeaker = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleBlack   = lipgloss.NewStyle().Bold(true)
	styleWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleFrame   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	symbolStyles = func() []lipgloss.Style {
		out := make([]lipgloss.Style, len(symbolColors))
		for i, c := range symbolColors {
			out[i] = lipgloss.NewStyle().Bold(true).Foreground(c)
		}
		return out
	}()
)

// Speakers for say; the game reads as a dialogue between the two roles.
const (
	speakerMaker   = "Code Maker"
	speakerBreaker = "Code Breaker"
)

// say prints one speaker-tagged game message.
func say(who, format string, args ...any) {
	fmt.Printf("%s %s\n", styleSpeaker.Render("["+who+"]:"), fmt.Sprintf(format, args...))
}

// styledCode renders a code with one colour per symbol, space separated.
// The visible width is always 2*len(c)-1, so rows line up without padding.
func styledCode(c game.Code) string {
	var sb strings.Builder
	for i := 0; i < len(c); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(symbolStyles[int(c[i]-'A')%len(symbolStyles)].Render(string(c[i])))
	}
	return sb.String()
}

// renderFeedback renders the peg answer padded to width visible characters.
func renderFeedback(fb game.Feedback, width int) string {
	pad := width - len(fb.String())
	if pad < 0 {
		pad = 0
	}
	return styleBlack.Render(fmt.Sprintf("%dB", fb.Black)) + " " +
		styleWhite.Render(fmt.Sprintf("%dW", fb.White)) + strings.Repeat(" ", pad)
}

// renderBoard draws the guess history, one row per turn with its answer.
func renderBoard(rules game.Rules, history []game.Turn) string {
	codeW := 2*rules.Positions - 1
	fbW := len(game.Feedback{Black: rules.Positions}.String())
	sep := styleFrame.Render(fmt.Sprintf("|====|=%s=|=%s=|",
		strings.Repeat("=", codeW), strings.Repeat("=", fbW)))

	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(sep)
	sb.WriteByte('\n')
	for i, t := range history {
		sb.WriteString(fmt.Sprintf("|%3d | %s | %s |\n", i+1, styledCode(t.Guess), renderFeedback(t.Feedback, fbW)))
	}
	sb.WriteString(sep)
	sb.WriteString("\n\n")
	return sb.String()
}

// printWelcome prints the banner and the input hints for the current rules.
func printWelcome(rules game.Rules) {
	fmt.Println()
	fmt.Println(styleTitle.Render("======================"))
	fmt.Println(styleTitle.Render("WELCOME TO MASTERMIND!"))
	fmt.Println(styleTitle.Render("======================"))
	fmt.Println()
	fmt.Printf("[Hint]: The code is any sequence of %d letters between A-%c, e.g. %s\n",
		rules.Positions, 'A'+rules.Colors-1, solver.Opening(rules))
	fmt.Println("[Hint]: The answer is black pegs (right symbol, right position) then white")
	fmt.Println("        pegs (right symbol, wrong position), e.g. \"12\" for 1B 2W")
	fmt.Println()
}
