package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	for i := range b {
		assert.Equal(t, byte(0), b[i])
	}
}

func TestWipeByteArray_Nil(t *testing.T) {
	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
