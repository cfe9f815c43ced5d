// Package models defines the client-side views of conversations and the
// key material exchanged with the KeyFold server.
package models

// EpochWrap is one epoch private key sealed to the member's public key.
type EpochWrap struct {
	EpochNumber      int64
	WrappedKey       []byte
	VisibleFromEpoch int64
}

// EpochChainLink lets the holder of an epoch's private key derive the
// previous epoch's private key.
type EpochChainLink struct {
	EpochNumber int64
	ChainLink   []byte
}

// EpochConfirmation is the server-stored hash a recovered epoch private
// key is checked against.
type EpochConfirmation struct {
	EpochNumber      int64
	ConfirmationHash []byte
}

// KeyChain is a full key-chain fetch: wraps, chain links and
// confirmations down to the member's visibility floor, the conversation's
// current epoch, and the title sealed under its epoch key.
type KeyChain struct {
	Wraps            []EpochWrap
	ChainLinks       []EpochChainLink
	Confirmations    []EpochConfirmation
	CurrentEpoch     int64
	CurrentEpochID   string
	EncryptedTitle   []byte
	TitleEpochNumber int64
}

// Member is one active conversation member as reported by the server.
type Member struct {
	MemberID         string
	Kind             string
	PublicKey        []byte
	Privilege        string
	VisibleFromEpoch int64
}

// MemberWrap pairs a member public key with the new epoch private key
// wrapped under it.
type MemberWrap struct {
	MemberPublicKey []byte
	WrappedKey      []byte
}

// Rotation is the client-computed material for one epoch advance.
// NewEpochPrivateKey never leaves the client.
type Rotation struct {
	ExpectedEpoch       int64
	NewEpochPublicKey   []byte
	NewEpochPrivateKey  []byte
	NewConfirmationHash []byte
	NewChainLink        []byte
	MemberWraps         []MemberWrap
	NewEncryptedTitle   []byte
}

// RotationResult identifies the epoch a successful rotation created.
type RotationResult struct {
	NewEpochNumber int64
	NewEpochID     string
}

// ConversationSeed is the client-generated material for a conversation's
// first epoch. EpochPrivateKey never leaves the client.
type ConversationSeed struct {
	EncryptedTitle    []byte
	CreatorPublicKey  []byte
	EpochPublicKey    []byte
	EpochPrivateKey   []byte
	ConfirmationHash  []byte
	CreatorWrappedKey []byte
}

// Conversation summarizes a freshly created conversation.
type Conversation struct {
	ConversationID string
	CurrentEpoch   int64
	EpochID        string
}

// AddMemberResult reports a membership add. Created is false when the
// user already held an open membership.
type AddMemberResult struct {
	MemberID string
	Created  bool
}

// RemoveMemberResult reports a membership removal and the rotation that
// accompanied it, if any.
type RemoveMemberResult struct {
	Removed  bool
	Rotation *RotationResult
}

// CreateLinkResult reports an invite-link creation.
type CreateLinkResult struct {
	LinkID   string
	MemberID string
	Created  bool
}

// RevokeLinkResult reports a link revocation. MemberID is empty when the
// link held no active membership.
type RevokeLinkResult struct {
	Revoked  bool
	MemberID string
	Rotation *RotationResult
}

// ChangeLinkPrivilegeResult reports a link privilege change.
type ChangeLinkPrivilegeResult struct {
	Changed  bool
	MemberID string
}
