package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", digest)

	assert.True(t, h.Verify("s3cret", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := New(bcrypt.MinCost)

	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := New(0)

	// A broken digest is a verification failure, never a fault.
	assert.False(t, h.Verify("s3cret", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("s3cret", ""))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := New(0)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
