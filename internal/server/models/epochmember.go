package models

import "time"

// EpochMember is a wrap: one member's copy of an epoch's private key,
// encrypted under that member's public key. VisibleFromEpoch is stamped
// from the membership record at rotation time.
type EpochMember struct {
	EpochID          string
	MemberPublicKey  []byte
	WrappedKey       []byte
	VisibleFromEpoch int64
	CreatedAt        time.Time
}
