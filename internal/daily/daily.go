package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/mfilippo/mastermind/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SecretIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % spaceSize.
func SecretIndex(date time.Time, salt string, spaceSize int) int {
	if spaceSize <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(spaceSize))
}

// Secret returns the code of the day: everyone sharing a salt gets the same
// code on the same UTC date.
func Secret(rules game.Rules, date time.Time, salt string) game.Code {
	return game.CodeAt(rules, SecretIndex(date, salt, game.SpaceSize(rules)))
}
