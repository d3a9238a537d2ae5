package model

import "time"

// API key statuses.  A key moves from active to revoked exactly once;
// revoking an already revoked key is a conflict, unlike course
// archival which is idempotent.
const (
	APIKeyActive  = "active"
	APIKeyRevoked = "revoked"
)

// APIKey models an entry in the `api_keys` table.  The plaintext
// secret is never stored; only its SHA-256 hex digest.  RevokedAt is
// non-nil exactly when Status is revoked.
//
// Fields:
//  ID        – primary key identifier.
//  KeyName   – human-readable label for the key.
//  KeyHash   – SHA-256 hex digest of the secret (unique).
//  CreatedBy – user who issued the key.
//  Status    – active or revoked.
//  CreatedAt – timestamp of creation.
//  RevokedAt – when the key was revoked (nil while active).
type APIKey struct {
	ID        uint64     // api_keys.id
	KeyName   string     // api_keys.key_name
	KeyHash   string     // api_keys.key_hash
	CreatedBy uint64     // api_keys.created_by
	Status    string     // api_keys.status
	CreatedAt time.Time  // api_keys.created_at
	RevokedAt *time.Time // api_keys.revoked_at (nullable)
}
