package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params follows the OWASP baseline for argon2id.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

type argon2idHasher struct {
	params Argon2Params
}

func newArgon2idHasher(p Argon2Params) *argon2idHasher {
	d := DefaultArgon2Params
	if p.Time == 0 {
		p.Time = d.Time
	}
	if p.Memory == 0 {
		p.Memory = d.Memory
	}
	if p.Threads == 0 {
		p.Threads = d.Threads
	}
	if p.SaltLen == 0 {
		p.SaltLen = d.SaltLen
	}
	if p.KeyLen == 0 {
		p.KeyLen = d.KeyLen
	}
	return &argon2idHasher{params: p}
}

func (h *argon2idHasher) scheme() Scheme { return SchemeArgon2id }

func (h *argon2idHasher) MaxPasswordBytes() int { return 0 }

// Hash encodes the result as a PHC string:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (h *argon2idHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("PASSWORD_SALT_FAILED").Wrap(err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

type argon2Digest struct {
	version int
	params  Argon2Params
	salt    []byte
	key     []byte
}

func parseArgon2id(digest string) (*argon2Digest, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, ErrMalformedDigest
	}

	var d argon2Digest
	if _, err := fmt.Sscanf(parts[2], "v=%d", &d.version); err != nil {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Wrap(err)
	}
	if d.version != argon2.Version {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Errorf("unsupported argon2 version %d", d.version)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &d.params.Memory, &d.params.Time, &threads); err != nil {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Wrap(err)
	}
	if threads == 0 || threads > 255 {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Errorf("threads value %d out of range", threads)
	}
	if d.params.Time == 0 || d.params.Memory == 0 {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Errorf("zero cost parameter")
	}
	d.params.Threads = uint8(threads)

	var err error
	if d.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Wrap(err)
	}
	if d.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Wrap(err)
	}
	if len(d.key) == 0 || len(d.key) > 1<<10 {
		return nil, oops.Code("PASSWORD_MALFORMED_DIGEST").Errorf("invalid key length %d", len(d.key))
	}
	d.params.SaltLen = uint32(len(d.salt))
	d.params.KeyLen = uint32(len(d.key))

	return &d, nil
}

func (h *argon2idHasher) Verify(password, digest string) (bool, error) {
	d, err := parseArgon2id(digest)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), d.salt, d.params.Time, d.params.Memory, d.params.Threads, d.params.KeyLen)

	return subtle.ConstantTimeCompare(computed, d.key) == 1, nil
}

func (h *argon2idHasher) NeedsRehash(digest string) bool {
	d, err := parseArgon2id(digest)
	if err != nil {
		return true
	}
	return d.params.Time < h.params.Time ||
		d.params.Memory < h.params.Memory ||
		d.params.Threads != h.params.Threads ||
		d.params.KeyLen < h.params.KeyLen
}
