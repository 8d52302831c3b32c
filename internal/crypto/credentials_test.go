// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_MeetsPolicy(t *testing.T) {
	sealer := NewCredentialSealer("deployment-secret")

	pw, err := sealer.GeneratePassword()
	require.NoError(t, err)
	assert.Len(t, pw, passwordLength)

	assert.True(t, strings.ContainsAny(pw, lowerChars), "expected a lowercase char")
	assert.True(t, strings.ContainsAny(pw, upperChars), "expected an uppercase char")
	assert.True(t, strings.ContainsAny(pw, digitChars), "expected a digit")
	assert.True(t, strings.ContainsAny(pw, symbolChars), "expected a symbol")
}

func TestGeneratePassword_NotRepeating(t *testing.T) {
	sealer := NewCredentialSealer("deployment-secret")

	first, err := sealer.GeneratePassword()
	require.NoError(t, err)
	second, err := sealer.GeneratePassword()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	sealer := NewCredentialSealer("deployment-secret")

	sealed, err := sealer.Seal("hunter2-but-long")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "hunter2")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "hunter2-but-long", opened)
}

func TestSeal_UniqueBlobs(t *testing.T) {
	sealer := NewCredentialSealer("deployment-secret")

	first, err := sealer.Seal("same-plaintext")
	require.NoError(t, err)
	second, err := sealer.Seal("same-plaintext")
	require.NoError(t, err)

	// fresh salt and nonce per seal
	assert.NotEqual(t, first, second)
}

func TestOpen_WrongSecret(t *testing.T) {
	sealed, err := NewCredentialSealer("right-secret").Seal("credential")
	require.NoError(t, err)

	_, err = NewCredentialSealer("wrong-secret").Open(sealed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt credential")
}

func TestOpen_MalformedInput(t *testing.T) {
	sealer := NewCredentialSealer("deployment-secret")

	_, err := sealer.Open("not base64 at all %%%")
	require.Error(t, err)

	_, err = sealer.Open("c2hvcnQ=") // valid base64, too short for salt+nonce
	require.Error(t, err)
}
