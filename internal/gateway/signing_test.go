package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	signature := Signature([]string{"ref", "10000", "COP"}, "secret")

	assert.Equal(t, "1676f08186fe875d8e8fea368838a7b8135050ee651c7659e374a9f92fbd1ef3", signature)
}

func TestSignatureIsDeterministic(t *testing.T) {
	first := Signature([]string{"ref", "10000", "COP"}, "secret")
	second := Signature([]string{"ref", "10000", "COP"}, "secret")

	assert.Equal(t, first, second)
}

func TestSignatureVariesWithSecret(t *testing.T) {
	first := Signature([]string{"ref", "10000", "COP"}, "secret")
	second := Signature([]string{"ref", "10000", "COP"}, "other-secret")

	assert.NotEqual(t, first, second)
}

func TestSignatureSupportsOptionalExpiration(t *testing.T) {
	without := Signature([]string{"ref", "10000", "COP"}, "secret")
	with := Signature([]string{"ref", "10000", "COP", "2026-12-31T23:59:59Z"}, "secret")

	assert.NotEqual(t, without, with)
}

func TestReference(t *testing.T) {
	reference := Reference("a@b.com", 1726000000000)

	assert.Equal(t, "22fae2c86b9f393c3d21fbb5d15e776e8601f1e8f2a7ebf145c14e01cdfec66f", reference)
}

func TestReferenceVariesWithTimestamp(t *testing.T) {
	first := Reference("a@b.com", 1726000000000)
	second := Reference("a@b.com", 1726000000001)

	assert.NotEqual(t, first, second)
}
