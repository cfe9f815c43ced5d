package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/server/models"
)

func TestActiveMembers_MapsKinds(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.m.active = []*models.ConversationMember{
		userMember("m-1", "alice", []byte("pub-a"), 1),
		linkMember("m-2", "l-1", []byte("pub-b"), 3),
	}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	keys, err := s.ActiveMembers(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("ActiveMembers error: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("members: %d", len(keys))
	}
	if keys[0].MemberID != "m-1" || keys[0].Kind != models.IdentityKindUser || keys[0].VisibleFromEpoch != 1 {
		t.Fatalf("unexpected first member: %+v", keys[0])
	}
	if keys[1].MemberID != "m-2" || keys[1].Kind != models.IdentityKindLink || keys[1].Privilege != models.PrivilegeViewer {
		t.Fatalf("unexpected second member: %+v", keys[1])
	}
	if !bytes.Equal(keys[1].PublicKey, []byte("pub-b")) {
		t.Fatalf("public key not carried over: %+v", keys[1])
	}
}

func TestActiveMembers_Error(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.m.listErr = errBoom{}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	_, err := s.ActiveMembers(context.Background(), "conv-1")
	if err == nil || !strings.Contains(err.Error(), "error listing members:") {
		t.Fatalf("want wrapped error, got %v", err)
	}
}

func TestVerifyMembership(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.m.findUserOut = userMember("m-1", "alice", []byte("pub-a"), 1)

	s := NewMembershipService(db, m, NewRotationService(db, m))

	member, err := s.VerifyMembership(context.Background(), "conv-1", "alice")
	if err != nil {
		t.Fatalf("VerifyMembership error: %v", err)
	}
	if member.ID != "m-1" {
		t.Fatalf("unexpected member: %+v", member)
	}

	m.m.findUserOut = nil
	m.m.findUserErr = common.ErrorNotFound
	_, err = s.VerifyMembership(context.Background(), "conv-1", "mallory")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestAddMember_Fresh(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := newFakeRepoManager()
	m.c.epoch = 3
	m.e.getByNumberOut = &models.Epoch{ID: "epoch-3", EpochNumber: 3}
	m.m.findUserErr = common.ErrorNotFound

	s := NewMembershipService(db, m, NewRotationService(db, m))

	res, err := s.AddMember(context.Background(), AddMemberParams{
		ConversationID:   "conv-1",
		UserID:           "bob",
		MemberPublicKey:  []byte("pub-bob"),
		Privilege:        models.PrivilegeMember,
		VisibleFromEpoch: 3,
		CurrentEpochID:   "epoch-3",
		WrappedKey:       []byte("wrap-bob"),
	})
	if err != nil {
		t.Fatalf("AddMember error: %v", err)
	}
	if !res.Created || res.MemberID != "member-1" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(m.m.created) != 1 {
		t.Fatalf("membership rows created: %d", len(m.m.created))
	}
	row := m.m.created[0]
	if row.UserID == nil || *row.UserID != "bob" || row.LinkID != nil {
		t.Fatalf("unexpected membership row: %+v", row)
	}
	if row.VisibleFromEpoch != 3 || row.Privilege != models.PrivilegeMember {
		t.Fatalf("unexpected membership row: %+v", row)
	}

	if len(m.w.ifAbsent) != 1 {
		t.Fatalf("wraps installed: %d", len(m.w.ifAbsent))
	}
	wrap := m.w.ifAbsent[0]
	if wrap.EpochID != "epoch-3" || !bytes.Equal(wrap.WrappedKey, []byte("wrap-bob")) || wrap.VisibleFromEpoch != 3 {
		t.Fatalf("unexpected wrap: %+v", wrap)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestAddMember_Idempotent(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := newFakeRepoManager()
	m.c.epoch = 3
	m.e.getByNumberOut = &models.Epoch{ID: "epoch-3", EpochNumber: 3}
	m.m.findUserOut = userMember("m-9", "bob", []byte("pub-bob"), 2)

	s := NewMembershipService(db, m, NewRotationService(db, m))

	res, err := s.AddMember(context.Background(), AddMemberParams{
		ConversationID:  "conv-1",
		UserID:          "bob",
		MemberPublicKey: []byte("pub-bob"),
		CurrentEpochID:  "epoch-3",
	})
	if err != nil {
		t.Fatalf("AddMember error: %v", err)
	}
	if res.Created || res.MemberID != "m-9" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(m.m.created) != 0 || len(m.w.ifAbsent) != 0 {
		t.Fatalf("idempotent add must not write")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestAddMember_StaleEpochRow(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := newFakeRepoManager()
	m.c.epoch = 4
	m.e.getByNumberOut = &models.Epoch{ID: "epoch-4", EpochNumber: 4}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	_, err := s.AddMember(context.Background(), AddMemberParams{
		ConversationID: "conv-1",
		UserID:         "bob",
		CurrentEpochID: "epoch-3",
	})

	var stale *StaleEpochError
	if !errors.As(err, &stale) {
		t.Fatalf("want StaleEpochError, got %v", err)
	}
	if stale.CurrentEpoch != 4 {
		t.Fatalf("unexpected current epoch: %d", stale.CurrentEpoch)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRemoveMember_ClosesThenRotates(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	keyA := []byte("pub-a")
	keyB := []byte("pub-b")

	m := newFakeRepoManager()
	m.c.epoch = 5
	m.m.active = []*models.ConversationMember{
		userMember("m-1", "alice", keyA, 1),
		userMember("m-2", "bob", keyB, 2),
	}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	res, err := s.RemoveMember(context.Background(), RemoveMemberParams{
		ConversationID: "conv-1",
		MemberID:       "m-2",
		Rotation: &RotationParams{
			ExpectedEpoch: 5,
			MemberWraps:   []MemberWrap{{MemberPublicKey: keyA, WrappedKey: []byte("wa")}},
		},
	})
	if err != nil {
		t.Fatalf("RemoveMember error: %v", err)
	}
	if !res.Removed || res.Rotation == nil || res.Rotation.NewEpochNumber != 6 {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(m.m.closed) != 1 || m.m.closed[0] != "m-2" {
		t.Fatalf("membership not closed: %v", m.m.closed)
	}
	if len(m.w.created) != 1 || !bytes.Equal(m.w.created[0].MemberPublicKey, keyA) {
		t.Fatalf("rotation wraps: %+v", m.w.created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// The supplied wrap set is checked against the membership left after the
// close: a wrap for the member being removed must fail the rotation.
func TestRemoveMember_WrapForRemovedMemberRejected(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	keyA := []byte("pub-a")
	keyB := []byte("pub-b")

	m := newFakeRepoManager()
	m.c.epoch = 5
	m.m.active = []*models.ConversationMember{
		userMember("m-1", "alice", keyA, 1),
		userMember("m-2", "bob", keyB, 2),
	}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	_, err := s.RemoveMember(context.Background(), RemoveMemberParams{
		ConversationID: "conv-1",
		MemberID:       "m-2",
		Rotation: &RotationParams{
			ExpectedEpoch: 5,
			MemberWraps: []MemberWrap{
				{MemberPublicKey: keyA, WrappedKey: []byte("wa")},
				{MemberPublicKey: keyB, WrappedKey: []byte("wb")},
			},
		},
	})
	if !errors.Is(err, common.ErrWrapSetMismatch) {
		t.Fatalf("want wrap set mismatch, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRemoveMember_UnknownMember(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := newFakeRepoManager()
	m.m.active = []*models.ConversationMember{userMember("m-1", "alice", []byte("pub-a"), 1)}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	res, err := s.RemoveMember(context.Background(), RemoveMemberParams{
		ConversationID: "conv-1",
		MemberID:       "m-9",
	})
	if err != nil {
		t.Fatalf("RemoveMember error: %v", err)
	}
	if res.Removed {
		t.Fatalf("unknown member must not report removed")
	}
	if len(m.m.closed) != 0 {
		t.Fatalf("nothing should be closed: %v", m.m.closed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRemoveMember_RotationRequired(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := newFakeRepoManager()
	m.m.active = []*models.ConversationMember{userMember("m-1", "alice", []byte("pub-a"), 1)}

	s := NewMembershipService(db, m, NewRotationService(db, m))

	_, err := s.RemoveMember(context.Background(), RemoveMemberParams{
		ConversationID: "conv-1",
		MemberID:       "m-1",
	})
	if !errors.Is(err, ErrRotationRequired) {
		t.Fatalf("want ErrRotationRequired, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
