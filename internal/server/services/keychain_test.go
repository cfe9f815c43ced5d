package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/server/models"
)

func TestKeyChain_FullHistoryMember(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.c.epoch = 3
	m.w.wraps = []models.EpochWrap{
		{EpochNumber: 1, WrappedKey: []byte("w1"), VisibleFromEpoch: 1},
		{EpochNumber: 2, WrappedKey: []byte("w2"), VisibleFromEpoch: 1},
		{EpochNumber: 3, WrappedKey: []byte("w3"), VisibleFromEpoch: 1},
	}
	m.e.links = []models.EpochChainLink{
		{EpochNumber: 2, ChainLink: []byte("l2")},
		{EpochNumber: 3, ChainLink: []byte("l3")},
	}
	m.e.confirmations = []models.EpochConfirmation{
		{EpochNumber: 1, ConfirmationHash: []byte("h1")},
		{EpochNumber: 2, ConfirmationHash: []byte("h2")},
		{EpochNumber: 3, ConfirmationHash: []byte("h3")},
	}
	m.e.getByNumberOut = &models.Epoch{ID: "epoch-3", EpochNumber: 3}

	s := NewKeyChainService(db, m)

	kc, err := s.KeyChain(context.Background(), "conv-1", []byte("pub-a"))
	if err != nil {
		t.Fatalf("KeyChain error: %v", err)
	}

	if len(kc.Wraps) != 3 {
		t.Fatalf("all wraps expected, got %d", len(kc.Wraps))
	}
	if m.e.linksFloor != 1 {
		t.Fatalf("links queried with floor %d, want 1", m.e.linksFloor)
	}
	if len(kc.ChainLinks) != 2 {
		t.Fatalf("chain links: %d", len(kc.ChainLinks))
	}
	if m.e.confsFloor != 1 || len(kc.Confirmations) != 3 {
		t.Fatalf("confirmations: floor %d, count %d", m.e.confsFloor, len(kc.Confirmations))
	}
	if kc.CurrentEpoch != 3 {
		t.Fatalf("current epoch: %d", kc.CurrentEpoch)
	}
	if kc.CurrentEpochID != "epoch-3" {
		t.Fatalf("current epoch id: %q", kc.CurrentEpochID)
	}
}

// A wrap from before the member's floor must not surface, and the floor
// epoch's own chain link stays withheld: the floor epoch key is the
// earliest this member can derive.
func TestKeyChain_FloorFiltering(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.c.epoch = 6
	m.w.wraps = []models.EpochWrap{
		{EpochNumber: 2, WrappedKey: []byte("leaked"), VisibleFromEpoch: 5},
		{EpochNumber: 4, WrappedKey: []byte("w4"), VisibleFromEpoch: 4},
		{EpochNumber: 6, WrappedKey: []byte("w6"), VisibleFromEpoch: 5},
	}
	m.e.links = []models.EpochChainLink{
		{EpochNumber: 5, ChainLink: []byte("l5")},
		{EpochNumber: 6, ChainLink: []byte("l6")},
	}
	m.e.getByNumberOut = &models.Epoch{ID: "epoch-6", EpochNumber: 6}

	s := NewKeyChainService(db, m)

	kc, err := s.KeyChain(context.Background(), "conv-1", []byte("pub-a"))
	if err != nil {
		t.Fatalf("KeyChain error: %v", err)
	}

	if len(kc.Wraps) != 2 {
		t.Fatalf("wraps below the floor must be filtered, got %d", len(kc.Wraps))
	}
	if kc.Wraps[0].EpochNumber != 4 || kc.Wraps[1].EpochNumber != 6 {
		t.Fatalf("unexpected wraps: %+v", kc.Wraps)
	}
	if m.e.linksFloor != 4 {
		t.Fatalf("links queried with floor %d, want 4", m.e.linksFloor)
	}
	if m.e.confsFloor != 4 {
		t.Fatalf("confirmations queried with floor %d, want 4", m.e.confsFloor)
	}
}

func TestKeyChain_NotAMember(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()

	s := NewKeyChainService(db, m)

	_, err := s.KeyChain(context.Background(), "conv-1", []byte("pub-stranger"))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestKeyChain_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *fakeRepoManager)
		wantMsg string
	}{
		{
			name:    "wraps query fails",
			mutate:  func(m *fakeRepoManager) { m.w.wrapsErr = errBoom{} },
			wantMsg: "error listing wraps:",
		},
		{
			name:    "links query fails",
			mutate:  func(m *fakeRepoManager) { m.e.linksErr = errBoom{} },
			wantMsg: "error listing chain links:",
		},
		{
			name:    "confirmations query fails",
			mutate:  func(m *fakeRepoManager) { m.e.confsErr = errBoom{} },
			wantMsg: "error listing confirmations:",
		},
		{
			name:    "epoch read fails",
			mutate:  func(m *fakeRepoManager) { m.c.currentErr = errBoom{} },
			wantMsg: "error reading current epoch:",
		},
		{
			name:    "epoch row load fails",
			mutate:  func(m *fakeRepoManager) { m.e.getByNumberErr = errBoom{} },
			wantMsg: "error reading current epoch row:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			defer db.Close()

			m := newFakeRepoManager()
			m.w.wraps = []models.EpochWrap{{EpochNumber: 1, WrappedKey: []byte("w1"), VisibleFromEpoch: 1}}
			tt.mutate(m)

			s := NewKeyChainService(db, m)

			_, err := s.KeyChain(context.Background(), "conv-1", []byte("pub-a"))
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("want %q, got %v", tt.wantMsg, err)
			}
		})
	}
}
