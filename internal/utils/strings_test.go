package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := GenerateNumericCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		assert.Regexp(t, `^[0-9]+$`, code)
	}

	_, err := GenerateNumericCode(0)
	assert.Error(t, err)
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*********4321", MaskPhoneNumber("+55 (11) 98765-4321"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "jo**@transportes.com.br", MaskEmail("joao@transportes.com.br"))
	assert.Equal(t, "ab@x.com", MaskEmail("ab@x.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
