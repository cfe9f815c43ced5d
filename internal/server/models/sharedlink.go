package models

import "time"

// SharedLink is an invite-link identity with its own keypair. Revocation
// is terminal: RevokedAt is set once and never cleared.
type SharedLink struct {
	ID            string
	LinkPublicKey []byte
	DisplayName   string
	CreatedAt     time.Time
	RevokedAt     *time.Time
}
