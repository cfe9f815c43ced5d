package models

// NewMember is the client-built material for granting a user access to a
// conversation: the user's public key plus the current epoch's private
// key wrapped under it.
type NewMember struct {
	UserID           string
	PublicKey        []byte
	Privilege        string
	VisibleFromEpoch int64
	CurrentEpochID   string
	WrappedKey       []byte
}

// NewLink is the client-built material for an invite link grant.
type NewLink struct {
	DisplayName      string
	PublicKey        []byte
	Privilege        string
	VisibleFromEpoch int64
	CurrentEpochID   string
	WrappedKey       []byte
}
