package auth

import (
	"encoding/hex"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_HashAndVerify(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	digest, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, "Password123!", digest)

	assert.True(t, hasher.Verify("Password123!", salt, digest))
	assert.False(t, hasher.Verify("Password123?", salt, digest))
	assert.False(t, hasher.Verify("", salt, digest))
}

func TestPBKDF2Hasher_HashProducesDistinctSalts(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	digest1, salt1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	digest2, salt2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, digest1, digest2)

	// Each digest still verifies against its own salt.
	assert.True(t, hasher.Verify("same-password", salt1, digest1))
	assert.True(t, hasher.Verify("same-password", salt2, digest2))

	// Cross-salt verification fails.
	assert.False(t, hasher.Verify("same-password", salt1, digest2))
}

func TestPBKDF2Hasher_VerifyIsDeterministic(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	digest, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	for range 5 {
		assert.True(t, hasher.Verify("Password123!", salt, digest))
	}
}

func TestPBKDF2Hasher_Parameters(t *testing.T) {
	// Hash and Verify must share the same fixed parameters; a drift in any
	// of these constants invalidates every stored credential.
	assert.Equal(t, 16, saltBytes)
	assert.Equal(t, 1000, iterations)
	assert.Equal(t, 64, keyLength)

	hasher := NewPBKDF2Hasher()
	digest, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	rawSalt, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, saltBytes)

	rawDigest, err := hex.DecodeString(digest)
	require.NoError(t, err)
	assert.Len(t, rawDigest, keyLength)
}

func TestPBKDF2Hasher_VerifyMissingAccount(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	assert.False(t, hasher.VerifyMissingAccount("anything"))
	assert.False(t, hasher.VerifyMissingAccount(""))
}

func TestPBKDF2Hasher_InvalidStoredDigest(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	_, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("Password123!", salt, "not-hex"))
}

// TestPBKDF2Hasher_DecoyTiming checks that the decoy path for a missing
// account costs about the same as a real failed verification, so an attacker
// cannot distinguish "unknown email" from "wrong password" by response time.
// Medians over many samples are compared with a generous tolerance.
func TestPBKDF2Hasher_DecoyTiming(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	digest, salt, err := hasher.Hash("Correct-Horse-1!")
	require.NoError(t, err)

	const samples = 41

	wrongPassword := make([]time.Duration, 0, samples)
	missingAccount := make([]time.Duration, 0, samples)

	for range samples {
		start := time.Now()
		hasher.Verify("wrong-password!", salt, digest)
		wrongPassword = append(wrongPassword, time.Since(start))

		start = time.Now()
		hasher.VerifyMissingAccount("wrong-password!")
		missingAccount = append(missingAccount, time.Since(start))
	}

	medWrong := median(wrongPassword)
	medMissing := median(missingAccount)

	assert.Less(t, medWrong, 2*medMissing, "wrong-password path much slower than decoy path")
	assert.Less(t, medMissing, 2*medWrong, "decoy path much slower than wrong-password path")
}

func median(durations []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return sorted[len(sorted)/2]
}
