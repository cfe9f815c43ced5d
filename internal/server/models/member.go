package models

import "time"

// IdentityKind distinguishes account-backed members from invite-link
// members.
type IdentityKind string

const (
	IdentityKindUser IdentityKind = "user"
	IdentityKindLink IdentityKind = "link"
)

const (
	PrivilegeOwner  = "owner"
	PrivilegeMember = "member"
	PrivilegeViewer = "viewer"
)

// ConversationMember is the authoritative membership record. Exactly one
// of UserID and LinkID is set. Removal is soft: LeftAt is stamped and the
// row is kept for audit.
type ConversationMember struct {
	ID               string
	ConversationID   string
	UserID           *string
	LinkID           *string
	MemberPublicKey  []byte
	Privilege        string
	VisibleFromEpoch int64
	JoinedAt         time.Time
	LeftAt           *time.Time
}

// Kind reports whether the member is backed by a user account or an
// invite link.
func (m *ConversationMember) Kind() IdentityKind {
	if m.LinkID != nil {
		return IdentityKindLink
	}
	return IdentityKindUser
}
