package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		classes  SymbolClass
		alphabet string
	}{
		{name: "lower", classes: Lowercase, alphabet: lowercaseAlphabet},
		{name: "upper", classes: Uppercase, alphabet: uppercaseAlphabet},
		{name: "digits", classes: Digits, alphabet: digitsAlphabet},
		{name: "symbols", classes: Symbols, alphabet: symbolsAlphabet},
		{name: "lower+digits", classes: Lowercase | Digits, alphabet: lowercaseAlphabet + digitsAlphabet},
		{name: "all", classes: AllClasses, alphabet: lowercaseAlphabet + uppercaseAlphabet + digitsAlphabet + symbolsAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := GeneratePassword(64, tt.classes)
			require.NoError(t, err)
			assert.Len(t, p, 64)
			for _, r := range p {
				assert.True(t, strings.ContainsRune(tt.alphabet, r), "unexpected character %q", r)
			}
		})
	}
}

func TestGeneratePassword_Randomness(t *testing.T) {
	p1, err := GeneratePassword(32, AllClasses)
	require.NoError(t, err)
	p2, err := GeneratePassword(32, AllClasses)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestGeneratePassword_CoversAlphabet(t *testing.T) {
	p, err := GeneratePassword(MaxPasswordLength, Digits)
	require.NoError(t, err)

	// 256 draws over 10 digits miss one with probability ~10*(0.9^256).
	for _, d := range digitsAlphabet {
		assert.Contains(t, p, string(d))
	}
}

func TestGeneratePassword_Errors(t *testing.T) {
	_, err := GeneratePassword(0, AllClasses)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = GeneratePassword(MaxPasswordLength+1, AllClasses)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = GeneratePassword(8, 0)
	assert.ErrorIs(t, err, ErrNoSymbolClasses)
}

func TestParseSymbolClasses(t *testing.T) {
	tests := []struct {
		input   string
		want    SymbolClass
		wantErr bool
	}{
		{input: "lower", want: Lowercase},
		{input: "lower,upper", want: Lowercase | Uppercase},
		{input: " Digits , SYMBOLS ", want: Digits | Symbols},
		{input: "all", want: AllClasses},
		{input: "lower,,digits,", want: Lowercase | Digits},
		{input: "", want: 0},
		{input: "emoji", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSymbolClasses(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSymbolClass)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
