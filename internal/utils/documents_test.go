package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCPF(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25", "111.444.777-35"}
	for _, cpf := range valid {
		assert.True(t, IsValidCPF(cpf), cpf)
	}

	invalid := []string{
		"11111111111",
		"00000000000",
		"99999999999",
		"52998224724",
		"52998224735",
		"5299822472",
		"529982247250",
		"abcdefghijk",
		"",
	}
	for _, cpf := range invalid {
		assert.False(t, IsValidCPF(cpf), cpf)
	}
}

func TestIsValidCNPJ(t *testing.T) {
	assert.True(t, IsValidCNPJ("11.222.333/0001-81"))
	assert.True(t, IsValidCNPJ("11222333000181"))
	assert.False(t, IsValidCNPJ("11222333000182"))
	assert.False(t, IsValidCNPJ("11111111111111"))
	assert.False(t, IsValidCNPJ("1122233300018"))

	assert.True(t, IsValidDocument("52998224725"))
	assert.True(t, IsValidDocument("11222333000181"))
	assert.False(t, IsValidDocument("123"))
}

func TestIsValidPlate(t *testing.T) {
	for _, p := range []string{"ABC1234", "abc-1234", "BRA2E19", "bra 2e19"} {
		assert.True(t, IsValidPlate(p), p)
	}
	for _, p := range []string{"AB1234", "ABCD123", "1BC1234", "BRA2EE9", ""} {
		assert.False(t, IsValidPlate(p), p)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"(11) 98765-4321":   "5511987654321",
		"+55 11 98765-4321": "5511987654321",
		"011987654321":      "5511987654321",
		"4733221100":        "554733221100",
		"55 47 3322-1100":   "554733221100",
	}
	for in, want := range cases {
		got, err := NormalizePhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"12345", "(11) 88765-4321", "(11) 9876-543", "(00) 98765-4321", ""} {
		_, err := NormalizePhone(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "123", FormatCPF("123"))
}
