package crypto

import (
	"crypto/rand"
	"math/big"
)

// passwordCharset is the approved generator alphabet: ASCII letters, digits
// and printable punctuation, minus the backslash (excluded to avoid
// escaping ambiguities in downstream consumers). 93 characters total.
const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~"

// passwordGenerator is the private implementation of [PasswordGenerator].
type passwordGenerator struct{}

// NewPasswordGenerator constructs a [PasswordGenerator] drawing from
// [passwordCharset] via the OS CSPRNG.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{}
}

// Generate implements [PasswordGenerator]. Each character is drawn
// independently and uniformly: the index is taken from crypto/rand with
// rejection-free modular sampling via [rand.Int], which is unbiased for any
// charset size.
func (g *passwordGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(passwordCharset)))

	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordCharset[idx.Int64()]
	}

	return string(password), nil
}
