package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random public identifier: exactly 32 lowercase hex
// characters (16 random bytes), no separators or prefixes. Used for the
// externally visible lock_id / request_id / position_id columns.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
