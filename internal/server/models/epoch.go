package models

import "time"

// Epoch is one generation of a conversation's key material. ChainLink is
// nil for epoch 1; for later epochs it lets a holder of this epoch's
// private key derive the previous epoch's private key.
type Epoch struct {
	ID               string
	ConversationID   string
	EpochNumber      int64
	EpochPublicKey   []byte
	ConfirmationHash []byte
	ChainLink        []byte
	CreatedAt        time.Time
}
