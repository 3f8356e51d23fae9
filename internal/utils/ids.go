package utils

import (
	"crypto/rand"
	"math/big"
)

const idDigits = 18

// GenerateID produces an opaque business identifier: the given prefix
// followed by random digits. Digit-only suffixes keep role prefixes like
// "admin" detectable by substring checks downstream.
func GenerateID(prefix string) string {
	buf := make([]byte, 0, len(prefix)+idDigits)
	buf = append(buf, prefix...)
	for i := 0; i < idDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			buf = append(buf, '0')
			continue
		}
		buf = append(buf, byte('0'+n.Int64()))
	}
	return string(buf)
}
