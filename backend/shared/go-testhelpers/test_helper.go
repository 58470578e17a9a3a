package testhelpers

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper bundles what web-facing tests need: a signing key and an
// in-process marketplace API that trusts it.
type TestHelper struct {
	T          *testing.T
	Ctx        context.Context
	PrivateKey *rsa.PrivateKey
	API        *FakeAPI
}

// NewTestHelper starts a FakeAPI seeded with nothing; it is torn down with t.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "Failed to generate RSA key")

	h := &TestHelper{
		T:          t,
		Ctx:        context.Background(),
		PrivateKey: privateKey,
	}
	h.API = newFakeAPI(t, privateKey)
	return h
}
