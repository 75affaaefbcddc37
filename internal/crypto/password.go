// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// MaxPasswordLength bounds [GeneratePassword].
const MaxPasswordLength = 256

// SymbolClass is a bit set of character classes a generated password may
// draw from.
type SymbolClass uint8

const (
	// Lowercase selects a-z.
	Lowercase SymbolClass = 1 << iota
	// Uppercase selects A-Z.
	Uppercase
	// Digits selects 0-9.
	Digits
	// Symbols selects printable ASCII punctuation.
	Symbols

	// AllClasses selects every class.
	AllClasses = Lowercase | Uppercase | Digits | Symbols
)

const (
	lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	uppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitsAlphabet    = "0123456789"
	symbolsAlphabet   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var classNames = map[string]SymbolClass{
	"lower":   Lowercase,
	"upper":   Uppercase,
	"digits":  Digits,
	"symbols": Symbols,
	"all":     AllClasses,
}

// ParseSymbolClasses parses a comma-separated list such as
// "lower,upper,digits". Names are case-insensitive; surrounding spaces and
// empty items are ignored.
func ParseSymbolClasses(s string) (SymbolClass, error) {
	var classes SymbolClass
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		c, ok := classNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbolClass, name)
		}
		classes |= c
	}
	return classes, nil
}

// Alphabet returns the union of the characters selected by c.
func (c SymbolClass) Alphabet() string {
	var b strings.Builder
	if c&Lowercase != 0 {
		b.WriteString(lowercaseAlphabet)
	}
	if c&Uppercase != 0 {
		b.WriteString(uppercaseAlphabet)
	}
	if c&Digits != 0 {
		b.WriteString(digitsAlphabet)
	}
	if c&Symbols != 0 {
		b.WriteString(symbolsAlphabet)
	}
	return b.String()
}

// GeneratePassword returns a string of length characters drawn uniformly and
// independently from the alphabet selected by classes, using the OS CSPRNG.
func GeneratePassword(length int, classes SymbolClass) (string, error) {
	if length < 1 || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLength, length, MaxPasswordLength)
	}

	alphabet := classes.Alphabet()
	if alphabet == "" {
		return "", ErrNoSymbolClasses
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
