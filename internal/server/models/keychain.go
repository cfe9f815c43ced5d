package models

// MemberKey is one active participant as seen by rotation callers: the
// public key to wrap for, plus the authoritative visibility floor.
type MemberKey struct {
	MemberID         string
	Kind             IdentityKind
	PublicKey        []byte
	Privilege        string
	VisibleFromEpoch int64
}

// EpochWrap is a member's copy of one epoch's private key together with
// the epoch it belongs to.
type EpochWrap struct {
	EpochNumber      int64
	WrappedKey       []byte
	VisibleFromEpoch int64
}

// EpochChainLink pairs an epoch number with the link that derives the
// previous epoch's private key.
type EpochChainLink struct {
	EpochNumber int64
	ChainLink   []byte
}

// EpochConfirmation carries the hash a client checks a recovered epoch
// private key against.
type EpochConfirmation struct {
	EpochNumber      int64
	ConfirmationHash []byte
}

// KeyChain is everything a member needs to recover the epoch keys they
// are entitled to: their wraps, the chain links above their floor, one
// confirmation hash per reachable epoch, and the conversation's current
// epoch. CurrentEpochID is the row id mutating calls pass back as their
// concurrency token.
type KeyChain struct {
	Wraps          []EpochWrap
	ChainLinks     []EpochChainLink
	Confirmations  []EpochConfirmation
	CurrentEpoch   int64
	CurrentEpochID string
}
