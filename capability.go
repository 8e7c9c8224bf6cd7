package keysmith

// HashAlgo represents a supported hashing algorithm.
// Use these constants in struct tags: `store.hash:"sha256"`
type HashAlgo string

const (
	// HashArgon2 uses Argon2id (salted, slow).
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses bcrypt (salted, slow).
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 uses SHA-256 for deterministic fingerprints (fast, no salt).
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512 for deterministic fingerprints (fast, no salt).
	HashSHA512 HashAlgo = "sha512"
)

// Struct tag keys recognised by the Processor, in {context}.{action} form.
const (
	TagIssueSerial = "issue.serial"
	TagIssueEncode = "issue.encode"
	TagCheckSerial = "check.serial"
	TagCheckEncode = "check.encode"
	TagStoreHash   = "store.hash"
	TagSendMask    = "send.mask"
	TagSendRedact  = "send.redact"
)

// contextTags lists every tag key in scan order.
var contextTags = []string{
	TagIssueSerial,
	TagIssueEncode,
	TagCheckSerial,
	TagCheckEncode,
	TagStoreHash,
	TagSendMask,
	TagSendRedact,
}

// validHashAlgos contains all valid hash algorithms for tag validation.
var validHashAlgos = map[HashAlgo]bool{
	HashArgon2: true,
	HashBcrypt: true,
	HashSHA256: true,
	HashSHA512: true,
}

// validMaskTypes contains all valid mask types for tag validation.
var validMaskTypes = map[MaskType]bool{
	MaskSerial: true,
	MaskToken:  true,
	MaskEmail:  true,
	MaskName:   true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}
