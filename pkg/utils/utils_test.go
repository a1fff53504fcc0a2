package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA1Hex(t *testing.T) {
	assert.Equal(t, "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3", SHA1Hex("test"))
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", SHA1Hex(""))
}

func TestDigestEqual(t *testing.T) {
	assert.True(t, DigestEqual(SHA1Hex("abc"), SHA1Hex("abc")))
	assert.False(t, DigestEqual(SHA1Hex("abc"), SHA1Hex("abd")))
	assert.False(t, DigestEqual(SHA1Hex("abc"), ""))
}

func TestParseExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseExpiry("", now)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseExpiry("2025-03-04T10:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), *got)

	got, err = ParseExpiry("2025-03-04", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 23, 59, 59, 0, time.UTC), *got)

	got, err = ParseExpiry("48h", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(48*time.Hour), *got)

	_, err = ParseExpiry("-1h", now)
	assert.Error(t, err)

	_, err = ParseExpiry("next week", now)
	assert.Error(t, err)
}
