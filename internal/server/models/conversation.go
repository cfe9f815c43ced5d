// Package models defines server-side data models persisted in the database.
package models

import "time"

// Conversation is a multi-party encrypted conversation. The title is an
// opaque ciphertext re-encrypted on every rotation; TitleEpochNumber
// records the epoch whose key it was last sealed under.
type Conversation struct {
	ID               string
	CurrentEpoch     int64
	Title            []byte
	TitleEpochNumber int64
	CreatedAt        time.Time
}
