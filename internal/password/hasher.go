// Package password hashes and verifies user passwords.
//
// Digests are self-describing: the scheme identifier and its parameters are
// encoded in the digest string, so a Hasher configured for one scheme still
// verifies digests produced by the other one. NeedsRehash reports digests
// that should be replaced after the next successful login.
package password

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
)

// Scheme names a supported hashing algorithm.
type Scheme string

const (
	SchemeArgon2id Scheme = "argon2id"
	SchemeBcrypt   Scheme = "bcrypt"
)

var (
	// ErrEmptyPassword is returned when attempting to hash an empty password.
	ErrEmptyPassword = oops.Code("PASSWORD_EMPTY").Errorf("password cannot be empty")

	// ErrMalformedDigest is returned by Verify for digests it cannot parse.
	ErrMalformedDigest = oops.Code("PASSWORD_MALFORMED_DIGEST").Errorf("malformed password digest")

	// ErrPasswordTooLong is returned by Hash for input beyond MaxPasswordBytes.
	ErrPasswordTooLong = oops.Code("PASSWORD_TOO_LONG").Errorf("password exceeds the scheme's length limit")
)

// Hasher hashes passwords with one scheme and verifies any supported one.
type Hasher interface {
	// Hash produces a salted digest of the password.
	Hash(password string) (string, error)

	// Verify checks the password against a digest.
	// Returns (true, nil) on match, (false, nil) on mismatch and
	// (false, err) when the digest cannot be parsed.
	Verify(password, digest string) (bool, error)

	// NeedsRehash reports whether digest was produced with a different
	// scheme or weaker parameters than the ones currently configured.
	NeedsRehash(digest string) bool

	// MaxPasswordBytes is the longest password Hash accepts, or 0 when the
	// scheme has no limit.
	MaxPasswordBytes() int
}

// Options tunes the configured scheme. Zero values select the defaults.
type Options struct {
	BcryptCost int
	Argon2     Argon2Params
}

// New returns a Hasher producing digests with scheme.
func New(scheme Scheme, opts Options) (Hasher, error) {
	argon := newArgon2idHasher(opts.Argon2)
	bc := newBcryptHasher(opts.BcryptCost)

	switch scheme {
	case SchemeArgon2id:
		return &dispatcher{primary: argon, argon: argon, bcrypt: bc}, nil
	case SchemeBcrypt:
		return &dispatcher{primary: bc, argon: argon, bcrypt: bc}, nil
	default:
		return nil, fmt.Errorf("unsupported hash scheme %q", scheme)
	}
}

// schemeOf reads the scheme identifier from a digest.
func schemeOf(digest string) (Scheme, bool) {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return SchemeArgon2id, true
	case strings.HasPrefix(digest, "$2a$"),
		strings.HasPrefix(digest, "$2b$"),
		strings.HasPrefix(digest, "$2y$"):
		return SchemeBcrypt, true
	default:
		return "", false
	}
}

type schemeHasher interface {
	Hasher
	scheme() Scheme
}

type dispatcher struct {
	primary schemeHasher
	argon   *argon2idHasher
	bcrypt  *bcryptHasher
}

func (d *dispatcher) Hash(password string) (string, error) {
	return d.primary.Hash(password)
}

func (d *dispatcher) Verify(password, digest string) (bool, error) {
	scheme, ok := schemeOf(digest)
	if !ok {
		return false, ErrMalformedDigest
	}
	if scheme == SchemeBcrypt {
		return d.bcrypt.Verify(password, digest)
	}
	return d.argon.Verify(password, digest)
}

func (d *dispatcher) MaxPasswordBytes() int {
	return d.primary.MaxPasswordBytes()
}

func (d *dispatcher) NeedsRehash(digest string) bool {
	scheme, ok := schemeOf(digest)
	if !ok || scheme != d.primary.scheme() {
		return true
	}
	return d.primary.NeedsRehash(digest)
}
