// internal/game/code.go
//
// Construction and validation of codes and feedback.
// Responsibilities:
//   - Parse user-supplied codes and peg answers, rejecting bad input with
//     errors the prompts can explain.
//   - Generate uniform random secrets (crypto/rand).
//   - Enumerate the code space: SpaceSize counts it, CodeAt maps an index to
//     the code at that position of the lexicographic ordering.

package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseCode validates s against the rules and returns its canonical
// uppercase form. Errors wrap ErrInvalidCode.
func ParseCode(r Rules, s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != r.Positions {
		return "", fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidCode, r.Positions, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] >= byte('A')+byte(r.Colors) {
			return "", fmt.Errorf("%w: symbol %q not in alphabet %s", ErrInvalidCode, string(s[i]), r.Alphabet())
		}
	}
	return Code(s), nil
}

// RandomCode draws a uniform random code. Symbols may repeat, as in the
// boxed game.
func RandomCode(r Rules) (Code, error) {
	b := make([]byte, r.Positions)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(r.Colors)))
		if err != nil {
			return "", fmt.Errorf("random code: %w", err)
		}
		b[i] = byte('A') + byte(n.Int64())
	}
	return Code(b), nil
}

// SpaceSize returns the number of distinct codes, Colors^Positions.
func SpaceSize(r Rules) int {
	size := 1
	for i := 0; i < r.Positions; i++ {
		size *= r.Colors
	}
	return size
}

// CodeAt returns the code at index i of the lexicographic enumeration
// (AAAA, AAAB, ... for the classic rules). The code is the base-Colors
// representation of i with the leftmost position as the most significant
// digit, so index order and lexicographic order coincide.
func CodeAt(r Rules, i int) Code {
	b := make([]byte, r.Positions)
	for pos := r.Positions - 1; pos >= 0; pos-- {
		b[pos] = byte('A') + byte(i%r.Colors)
		i /= r.Colors
	}
	return Code(b)
}

// ParseFeedback reads a human-typed peg answer. Accepted forms: "12" (black
// then white, single digits) or two numbers split by a space or comma
// ("1 2", "1,2"). Counts are checked against the rules; a black count of
// Positions-1 with one white peg is rejected because no pair of codes can
// produce it.
func ParseFeedback(r Rules, s string) (Feedback, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(c rune) bool { return c == ' ' || c == ',' })

	var black, white int
	switch {
	case len(fields) == 2:
		b, err1 := strconv.Atoi(fields[0])
		w, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return Feedback{}, fmt.Errorf("feedback must be two numbers, got %q", s)
		}
		black, white = b, w
	case len(fields) == 1 && len(s) == 2 && isDigits(s):
		black, white = int(s[0]-'0'), int(s[1]-'0')
	default:
		return Feedback{}, fmt.Errorf("feedback must be two numbers, got %q", s)
	}

	if black < 0 || white < 0 || black+white > r.Positions {
		return Feedback{}, fmt.Errorf("impossible answer %dB %dW for %d positions", black, white, r.Positions)
	}
	if black == r.Positions-1 && white == 1 {
		return Feedback{}, fmt.Errorf("impossible answer %dB %dW: a lone misplaced symbol has nowhere to go", black, white)
	}
	return Feedback{Black: black, White: white}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
