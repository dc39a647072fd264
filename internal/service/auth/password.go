package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/config"
	"golang.org/x/crypto/argon2"
)

// PasswordHasher hashes new passwords and checks candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a self-describing encoding of password that includes its
	// salt and cost parameters.
	Hash(password string) (string, error)

	// Compare checks password against hashedPassword.
	// Returns nil on success, ErrPasswordMismatch when the password is wrong,
	// or ErrInvalidHash when hashedPassword cannot be decoded.
	Compare(hashedPassword, password string) error
}

const (
	argon2SaltLength = 16
	argon2KeyLength  = 32
)

// Argon2Hasher implements PasswordHasher with argon2id and the PHC string
// format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

var _ PasswordHasher = (*Argon2Hasher)(nil)

// NewArgon2Hasher creates a hasher with the configured cost parameters.
func NewArgon2Hasher(cfg config.Argon2Config) (*Argon2Hasher, error) {
	if cfg.Time == 0 || cfg.MemoryKiB == 0 || cfg.Threads == 0 {
		return nil, fmt.Errorf("argon2 parameters must be positive: t=%d m=%d p=%d",
			cfg.Time, cfg.MemoryKiB, cfg.Threads)
	}
	return &Argon2Hasher{
		time:    cfg.Time,
		memory:  cfg.MemoryKiB,
		threads: cfg.Threads,
	}, nil
}

// Hash implements PasswordHasher.Hash with a fresh random salt.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Compare implements PasswordHasher.Compare. The cost parameters come from
// the stored hash, so hashes made under older settings still verify.
func (h *Argon2Hasher) Compare(hashedPassword, password string) error {
	p, salt, key, err := decodeArgon2Hash(hashedPassword)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func decodeArgon2Hash(encoded string) (*Argon2Hasher, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	p := &Argon2Hasher{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return nil, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, nil, ErrInvalidHash
	}

	return p, salt, key, nil
}
