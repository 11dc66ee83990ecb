// prompt.go
//
// Line-oriented stdin helpers. Every reader loops until the input is valid,
// explaining the expected format on a miss, and reports io.EOF when the
// stream ends so callers can say goodbye instead of spinning.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/solver"
)

// readLine prints the prompt and returns the next trimmed input line.
func readLine(in *bufio.Scanner, prompt string) (string, error) {
	fmt.Print(prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

// readCode prompts until a well-formed code is typed.
func readCode(in *bufio.Scanner, rules game.Rules) (game.Code, error) {
	for {
		s, err := readLine(in, ">>> ")
		if err != nil {
			return "", err
		}
		code, err := game.ParseCode(rules, s)
		if err == nil {
			return code, nil
		}
		fmt.Printf("Invalid input: enter %d letters between A-%c, e.g. %s\n",
			rules.Positions, 'A'+rules.Colors-1, solver.Opening(rules))
	}
}

// readFeedback prompts until a plausible peg answer for the guess is typed.
func readFeedback(in *bufio.Scanner, rules game.Rules, guess game.Code) (game.Feedback, error) {
	for {
		s, err := readLine(in, ">>> ")
		if err != nil {
			return game.Feedback{}, err
		}
		fb, err := game.ParseFeedback(rules, s)
		if err == nil {
			return fb, nil
		}
		fmt.Printf("Invalid input: answer %s with black then white pegs, e.g. \"12\" or \"1 2\"\n", guess)
	}
}

// confirm asks a yes/no question; only y/yes count as yes.
func confirm(in *bufio.Scanner, prompt string) (bool, error) {
	s, err := readLine(in, prompt)
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "y" || s == "yes", nil
}

// choosePlayer prompts until one of the kinds is typed; preset short-cuts
// the prompt when a --maker/--breaker flag was given.
func choosePlayer(in *bufio.Scanner, role, preset string) (string, error) {
	kinds := []string{playerCPU, playerHuman}
	if preset != "" {
		p := strings.ToLower(preset)
		for _, k := range kinds {
			if p == k {
				return k, nil
			}
		}
		return "", fmt.Errorf("unknown %s player type %q (want cpu or human)", role, preset)
	}
	for {
		s, err := readLine(in, fmt.Sprintf(">>> Choose the %s player type [%s]: ", role, strings.Join(kinds, "|")))
		if err != nil {
			return "", err
		}
		s = strings.ToLower(s)
		for _, k := range kinds {
			if s == k {
				return k, nil
			}
		}
		fmt.Println(">>> Invalid player type")
	}
}
