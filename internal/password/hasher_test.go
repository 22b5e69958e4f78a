package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"

	"github.com/dom/gameshelf/internal/password"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fastOptions keeps the suite quick; production defaults are exercised once below.
var fastOptions = password.Options{
	BcryptCost: bcrypt.MinCost,
	Argon2: password.Argon2Params{
		Time:    1,
		Memory:  8 * 1024,
		Threads: 1,
		SaltLen: 16,
		KeyLen:  32,
	},
}

func newHasher(t *testing.T, scheme password.Scheme) password.Hasher {
	t.Helper()
	h, err := password.New(scheme, fastOptions)
	require.NoError(t, err)
	return h
}

func TestNew_UnknownScheme(t *testing.T) {
	_, err := password.New("md5", password.Options{})
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	tests := []struct {
		name   string
		scheme password.Scheme
		prefix string
	}{
		{name: "argon2id", scheme: password.SchemeArgon2id, prefix: "$argon2id$v=19$"},
		{name: "bcrypt", scheme: password.SchemeBcrypt, prefix: "$2a$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := newHasher(t, tt.scheme)

			t.Run("produces self-describing digest", func(t *testing.T) {
				digest, err := hasher.Hash("secret1")
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(digest, tt.prefix), digest)
			})

			t.Run("same password produces different digests", func(t *testing.T) {
				d1, err := hasher.Hash("samepassword")
				require.NoError(t, err)
				d2, err := hasher.Hash("samepassword")
				require.NoError(t, err)
				assert.NotEqual(t, d1, d2)

				for _, d := range []string{d1, d2} {
					ok, err := hasher.Verify("samepassword", d)
					require.NoError(t, err)
					assert.True(t, ok)
				}
			})

			t.Run("rejects empty password", func(t *testing.T) {
				_, err := hasher.Hash("")
				assert.ErrorIs(t, err, password.ErrEmptyPassword)
			})
		})
	}
}

func TestMaxPasswordBytes(t *testing.T) {
	tests := []struct {
		name      string
		scheme    password.Scheme
		wantLimit int
	}{
		{name: "argon2id has no limit", scheme: password.SchemeArgon2id, wantLimit: 0},
		{name: "bcrypt stops at 72 bytes", scheme: password.SchemeBcrypt, wantLimit: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := newHasher(t, tt.scheme)
			assert.Equal(t, tt.wantLimit, hasher.MaxPasswordBytes())

			long := strings.Repeat("a", 73)
			_, err := hasher.Hash(long)
			if tt.wantLimit == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, password.ErrPasswordTooLong)

			_, err = hasher.Hash(strings.Repeat("a", tt.wantLimit))
			assert.NoError(t, err)
		})
	}
}

func TestVerify(t *testing.T) {
	for _, scheme := range []password.Scheme{password.SchemeArgon2id, password.SchemeBcrypt} {
		t.Run(string(scheme), func(t *testing.T) {
			hasher := newHasher(t, scheme)

			digest, err := hasher.Hash("correctpassword")
			require.NoError(t, err)

			ok, err := hasher.Verify("correctpassword", digest)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = hasher.Verify("wrongpassword", digest)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestVerify_MalformedDigestFailsClosed(t *testing.T) {
	hasher := newHasher(t, password.SchemeArgon2id)

	digests := map[string]string{
		"empty":             "",
		"not a digest":      "not-a-valid-hash",
		"raw plaintext":     "secret1",
		"unknown algorithm": "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"bad version":       "$argon2id$vXX$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"wrong version":     "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"bad params":        "$argon2id$v=19$m=abc$c2FsdA$aGFzaA",
		"zero threads":      "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA",
		"bad salt":          "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"bad key":           "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
		"truncated argon":   "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA",
		"truncated bcrypt":  "$2a$10$short",
	}

	for name, digest := range digests {
		t.Run(name, func(t *testing.T) {
			ok, err := hasher.Verify("password", digest)
			assert.False(t, ok)
			assert.Error(t, err)
		})
	}
}

func TestVerify_DispatchesOnDigestScheme(t *testing.T) {
	argon := newHasher(t, password.SchemeArgon2id)
	bc := newHasher(t, password.SchemeBcrypt)

	bcryptDigest, err := bc.Hash("secret1")
	require.NoError(t, err)
	argonDigest, err := argon.Hash("secret1")
	require.NoError(t, err)

	ok, err := argon.Verify("secret1", bcryptDigest)
	require.NoError(t, err)
	assert.True(t, ok, "argon2id hasher must still verify bcrypt digests")

	ok, err = bc.Verify("secret1", argonDigest)
	require.NoError(t, err)
	assert.True(t, ok, "bcrypt hasher must still verify argon2id digests")
}

func TestNeedsRehash(t *testing.T) {
	argon := newHasher(t, password.SchemeArgon2id)
	bc := newHasher(t, password.SchemeBcrypt)

	argonDigest, err := argon.Hash("secret1")
	require.NoError(t, err)
	bcryptDigest, err := bc.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, argon.NeedsRehash(argonDigest))
	assert.True(t, argon.NeedsRehash(bcryptDigest))
	assert.False(t, bc.NeedsRehash(bcryptDigest))
	assert.True(t, bc.NeedsRehash(argonDigest))
	assert.True(t, argon.NeedsRehash("garbage"))

	t.Run("weaker parameters", func(t *testing.T) {
		stronger := fastOptions
		stronger.Argon2.Time = 2
		stronger.BcryptCost = bcrypt.MinCost + 1

		strongArgon, err := password.New(password.SchemeArgon2id, stronger)
		require.NoError(t, err)
		strongBcrypt, err := password.New(password.SchemeBcrypt, stronger)
		require.NoError(t, err)

		assert.True(t, strongArgon.NeedsRehash(argonDigest))
		assert.True(t, strongBcrypt.NeedsRehash(bcryptDigest))
	})
}

func TestDefaultParams(t *testing.T) {
	hasher, err := password.New(password.SchemeArgon2id, password.Options{})
	require.NoError(t, err)

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.Contains(t, digest, "$m=65536,t=1,p=4$")

	ok, err := hasher.Verify("secret1", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}
