package keysmith

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a serial or token into a value that can be stored in its
// place. Salted hashers (argon2, bcrypt) embed their salt and parameters in
// the result; digest hashers (sha256, sha512) return lowercase hex.
type Hasher interface {
	Hash(plaintext []byte) (string, error)
}

// canonicalSerial returns v in canonical serial form when it parses as a
// serial, and v unchanged otherwise. Check accepts hex in either case, so
// every accepted spelling of a serial has to reach the hasher identically.
func canonicalSerial(v string) string {
	s, err := ParseSerial(v)
	if err != nil {
		return v
	}
	return s.String()
}

// fingerprint hashes v with h after canonicalizing serials.
func fingerprint(h Hasher, v string) (string, error) {
	return h.Hash([]byte(canonicalSerial(v)))
}

// digestHasher hashes with an unsalted digest. Equal serials give equal
// fingerprints, so stored rows can be looked up by serial.
type digestHasher struct {
	newHash func() hash.Hash
}

// SHA256Hasher returns a SHA-256 fingerprint hasher (64 hex characters).
func SHA256Hasher() Hasher {
	return digestHasher{newHash: sha256.New}
}

// SHA512Hasher returns a SHA-512 fingerprint hasher (128 hex characters).
func SHA512Hasher() Hasher {
	return digestHasher{newHash: sha512.New}
}

func (h digestHasher) Hash(plaintext []byte) (string, error) {
	d := h.newHash()
	d.Write(plaintext)
	return hex.EncodeToString(d.Sum(nil)), nil
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // passes over memory
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params returns the Argon2id parameters used by Argon2.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

// encode renders salt and key in PHC string format:
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
func (p Argon2Params) encode(salt, key []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "$argon2id$v=%d$m=%d,t=%d,p=%d$", argon2.Version, p.Memory, p.Time, p.Threads)
	sb.WriteString(base64.RawStdEncoding.EncodeToString(salt))
	sb.WriteByte('$')
	sb.WriteString(base64.RawStdEncoding.EncodeToString(key))
	return sb.String()
}

type argon2Hasher struct {
	params Argon2Params
}

// Argon2 returns an Argon2id hasher with DefaultArgon2Params.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams returns an Argon2id hasher with custom parameters.
func Argon2WithParams(params Argon2Params) Hasher {
	return argon2Hasher{params: params}
}

func (h argon2Hasher) Hash(plaintext []byte) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("argon2 salt: %w", err)
	}
	key := argon2.IDKey(plaintext, salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
	return h.params.encode(salt, key), nil
}

// BcryptCost is the bcrypt work factor.
type BcryptCost int

// Bcrypt cost bounds and default.
const (
	BcryptMinCost     = BcryptCost(bcrypt.MinCost)
	BcryptDefaultCost = BcryptCost(bcrypt.DefaultCost)
	BcryptMaxCost     = BcryptCost(bcrypt.MaxCost)
)

type bcryptHasher struct {
	cost BcryptCost
}

// Bcrypt returns a bcrypt hasher at BcryptDefaultCost.
func Bcrypt() Hasher {
	return BcryptWithCost(BcryptDefaultCost)
}

// BcryptWithCost returns a bcrypt hasher at cost.
func BcryptWithCost(cost BcryptCost) Hasher {
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(plaintext []byte) (string, error) {
	out, err := bcrypt.GenerateFromPassword(plaintext, int(h.cost))
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(out), nil
}

// builtinHashers returns the default hasher registry.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashArgon2: Argon2(),
		HashBcrypt: Bcrypt(),
		HashSHA256: SHA256Hasher(),
		HashSHA512: SHA512Hasher(),
	}
}
