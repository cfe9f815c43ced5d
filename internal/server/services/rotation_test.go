package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/repositories/conversations"
	"github.com/keyfold/keyfold/internal/server/repositories/epochmembers"
	"github.com/keyfold/keyfold/internal/server/repositories/epochs"
	"github.com/keyfold/keyfold/internal/server/repositories/members"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
	"github.com/keyfold/keyfold/internal/server/repositories/sharedlinks"
)

// -------- test fakes --------

// fakeConversationsRepo backs the epoch counter with a mutex so the
// conditional advance behaves like the real store under concurrency.
type fakeConversationsRepo struct {
	conversations.Repository

	mu    sync.Mutex
	epoch int64

	advanceErr error
	currentErr error

	createOut *models.Conversation
	createErr error

	getOut *models.Conversation
	getErr error

	updatedTitle      []byte
	updatedTitleEpoch int64
	titleErr          error
}

func (f *fakeConversationsRepo) AdvanceEpoch(ctx context.Context, conversationID string, expectedEpoch int64) (bool, error) {
	if f.advanceErr != nil {
		return false, f.advanceErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != expectedEpoch {
		return false, nil
	}
	f.epoch++
	return true, nil
}

func (f *fakeConversationsRepo) GetCurrentEpoch(ctx context.Context, conversationID string) (int64, error) {
	if f.currentErr != nil {
		return 0, f.currentErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.epoch, nil
}

func (f *fakeConversationsRepo) Create(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeConversationsRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeConversationsRepo) UpdateTitle(ctx context.Context, conversationID string, title []byte, titleEpochNumber int64) error {
	if f.titleErr != nil {
		return f.titleErr
	}
	f.updatedTitle = title
	f.updatedTitleEpoch = titleEpochNumber
	return nil
}

type fakeEpochsRepo struct {
	epochs.Repository

	createErr error
	created   []*models.Epoch

	getByNumberOut *models.Epoch
	getByNumberErr error

	links      []models.EpochChainLink
	linksErr   error
	linksFloor int64

	confirmations []models.EpochConfirmation
	confsErr      error
	confsFloor    int64
}

func (f *fakeEpochsRepo) Create(ctx context.Context, epoch *models.Epoch) (*models.Epoch, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := *epoch
	e.ID = fmt.Sprintf("epoch-%d", e.EpochNumber)
	f.created = append(f.created, &e)
	return &e, nil
}

func (f *fakeEpochsRepo) GetByNumber(ctx context.Context, conversationID string, epochNumber int64) (*models.Epoch, error) {
	if f.getByNumberErr != nil {
		return nil, f.getByNumberErr
	}
	return f.getByNumberOut, nil
}

func (f *fakeEpochsRepo) ListChainLinks(ctx context.Context, conversationID string, floor int64) ([]models.EpochChainLink, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	f.linksFloor = floor
	return f.links, nil
}

func (f *fakeEpochsRepo) ListConfirmations(ctx context.Context, conversationID string, floor int64) ([]models.EpochConfirmation, error) {
	if f.confsErr != nil {
		return nil, f.confsErr
	}
	f.confsFloor = floor
	return f.confirmations, nil
}

type fakeEpochMembersRepo struct {
	epochmembers.Repository

	createErr error
	created   []*models.EpochMember

	ifAbsentErr error
	ifAbsent    []*models.EpochMember

	wraps    []models.EpochWrap
	wrapsErr error

	deleted     []int64
	deleteCount int64
	deleteErr   error
}

func (f *fakeEpochMembersRepo) Create(ctx context.Context, wrap *models.EpochMember) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, wrap)
	return nil
}

func (f *fakeEpochMembersRepo) CreateIfAbsent(ctx context.Context, wrap *models.EpochMember) error {
	if f.ifAbsentErr != nil {
		return f.ifAbsentErr
	}
	f.ifAbsent = append(f.ifAbsent, wrap)
	return nil
}

func (f *fakeEpochMembersRepo) ListByMemberKey(ctx context.Context, conversationID string, memberPublicKey []byte) ([]models.EpochWrap, error) {
	if f.wrapsErr != nil {
		return nil, f.wrapsErr
	}
	return f.wraps, nil
}

func (f *fakeEpochMembersRepo) DeleteByEpochNumber(ctx context.Context, conversationID string, epochNumber int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleted = append(f.deleted, epochNumber)
	return f.deleteCount, nil
}

// fakeMembersRepo keeps a closed set so ListActive reflects Close calls
// made earlier in the same scenario.
type fakeMembersRepo struct {
	members.Repository

	active  []*models.ConversationMember
	listErr error

	createOut *models.ConversationMember
	createErr error
	created   []*models.ConversationMember

	findUserOut *models.ConversationMember
	findUserErr error

	findLinkOut *models.ConversationMember
	findLinkErr error

	closed   []string
	closeErr error

	updatedPrivileges map[string]string
	updatePrivErr     error
}

func (f *fakeMembersRepo) isClosed(id string) bool {
	for _, c := range f.closed {
		if c == id {
			return true
		}
	}
	return false
}

func (f *fakeMembersRepo) ListActive(ctx context.Context, conversationID string) ([]*models.ConversationMember, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.ConversationMember, 0, len(f.active))
	for _, m := range f.active {
		if f.isClosed(m.ID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMembersRepo) Create(ctx context.Context, m *models.ConversationMember) (*models.ConversationMember, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, m)
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *m
	out.ID = fmt.Sprintf("member-%d", len(f.created))
	return &out, nil
}

func (f *fakeMembersRepo) FindActiveByUser(ctx context.Context, conversationID, userID string) (*models.ConversationMember, error) {
	if f.findUserErr != nil {
		return nil, f.findUserErr
	}
	return f.findUserOut, nil
}

func (f *fakeMembersRepo) FindActiveByLink(ctx context.Context, conversationID, linkID string) (*models.ConversationMember, error) {
	if f.findLinkErr != nil {
		return nil, f.findLinkErr
	}
	return f.findLinkOut, nil
}

func (f *fakeMembersRepo) Close(ctx context.Context, memberID string) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed = append(f.closed, memberID)
	return nil
}

func (f *fakeMembersRepo) UpdatePrivilege(ctx context.Context, memberID, privilege string) error {
	if f.updatePrivErr != nil {
		return f.updatePrivErr
	}
	if f.updatedPrivileges == nil {
		f.updatedPrivileges = map[string]string{}
	}
	f.updatedPrivileges[memberID] = privilege
	return nil
}

type fakeSharedLinksRepo struct {
	sharedlinks.Repository

	createOut *models.SharedLink
	createErr error
	created   []*models.SharedLink

	getByIDOut *models.SharedLink
	getByIDErr error

	getByKeyOut *models.SharedLink
	getByKeyErr error

	revokeOK  bool
	revokeErr error
	revoked   []string
}

func (f *fakeSharedLinksRepo) Create(ctx context.Context, link *models.SharedLink) (*models.SharedLink, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, link)
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *link
	out.ID = fmt.Sprintf("link-%d", len(f.created))
	return &out, nil
}

func (f *fakeSharedLinksRepo) GetByID(ctx context.Context, id string) (*models.SharedLink, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeSharedLinksRepo) GetByPublicKey(ctx context.Context, linkPublicKey []byte) (*models.SharedLink, error) {
	if f.getByKeyErr != nil {
		return nil, f.getByKeyErr
	}
	return f.getByKeyOut, nil
}

func (f *fakeSharedLinksRepo) Revoke(ctx context.Context, linkID string) (bool, error) {
	if f.revokeErr != nil {
		return false, f.revokeErr
	}
	if f.revokeOK {
		f.revoked = append(f.revoked, linkID)
	}
	return f.revokeOK, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	c *fakeConversationsRepo
	e *fakeEpochsRepo
	w *fakeEpochMembersRepo
	m *fakeMembersRepo
	l *fakeSharedLinksRepo
}

func (f *fakeRepoManager) Conversations(db dbx.DBTX) conversations.Repository { return f.c }
func (f *fakeRepoManager) Epochs(db dbx.DBTX) epochs.Repository               { return f.e }
func (f *fakeRepoManager) EpochMembers(db dbx.DBTX) epochmembers.Repository   { return f.w }
func (f *fakeRepoManager) Members(db dbx.DBTX) members.Repository             { return f.m }
func (f *fakeRepoManager) SharedLinks(db dbx.DBTX) sharedlinks.Repository     { return f.l }

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		c: &fakeConversationsRepo{},
		e: &fakeEpochsRepo{},
		w: &fakeEpochMembersRepo{},
		m: &fakeMembersRepo{},
		l: &fakeSharedLinksRepo{},
	}
}

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userMember(id, userID string, pubKey []byte, floor int64) *models.ConversationMember {
	return &models.ConversationMember{
		ID:               id,
		ConversationID:   "conv-1",
		UserID:           &userID,
		MemberPublicKey:  pubKey,
		Privilege:        models.PrivilegeMember,
		VisibleFromEpoch: floor,
	}
}

func linkMember(id, linkID string, pubKey []byte, floor int64) *models.ConversationMember {
	return &models.ConversationMember{
		ID:               id,
		ConversationID:   "conv-1",
		LinkID:           &linkID,
		MemberPublicKey:  pubKey,
		Privilege:        models.PrivilegeViewer,
		VisibleFromEpoch: floor,
	}
}

// -------- tests --------

func TestRotate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	keyA := []byte("pub-alice")
	keyB := []byte("pub-link-b")

	m := newFakeRepoManager()
	m.c.epoch = 4
	m.m.active = []*models.ConversationMember{
		userMember("m-1", "alice", keyA, 1),
		linkMember("m-2", "l-1", keyB, 3),
	}

	s := NewRotationService(db, m)

	p := RotationParams{
		ConversationID:      "conv-1",
		ExpectedEpoch:       4,
		NewEpochPublicKey:   []byte("new-pub"),
		NewConfirmationHash: []byte("new-hash"),
		NewChainLink:        []byte("new-link"),
		MemberWraps: []MemberWrap{
			{MemberPublicKey: keyA, WrappedKey: []byte("wrap-a")},
			{MemberPublicKey: keyB, WrappedKey: []byte("wrap-b")},
		},
		NewEncryptedTitle: []byte("new-title"),
	}

	res, err := s.Rotate(context.Background(), db, p)
	if err != nil {
		t.Fatalf("Rotate error: %v", err)
	}
	if res.NewEpochNumber != 5 || res.NewEpochID != "epoch-5" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(m.e.created) != 1 {
		t.Fatalf("epoch rows created: %d", len(m.e.created))
	}
	ep := m.e.created[0]
	if ep.ConversationID != "conv-1" || ep.EpochNumber != 5 {
		t.Fatalf("unexpected epoch row: %+v", ep)
	}
	if !bytes.Equal(ep.EpochPublicKey, []byte("new-pub")) ||
		!bytes.Equal(ep.ConfirmationHash, []byte("new-hash")) ||
		!bytes.Equal(ep.ChainLink, []byte("new-link")) {
		t.Fatalf("epoch key material mismatch: %+v", ep)
	}

	if len(m.w.created) != 2 {
		t.Fatalf("wraps created: %d", len(m.w.created))
	}
	for _, w := range m.w.created {
		if w.EpochID != "epoch-5" {
			t.Fatalf("wrap bound to wrong epoch: %+v", w)
		}
	}
	if m.w.created[0].VisibleFromEpoch != 1 || m.w.created[1].VisibleFromEpoch != 3 {
		t.Fatalf("wrap visibility not taken from membership: %+v, %+v", m.w.created[0], m.w.created[1])
	}

	if len(m.w.deleted) != 1 || m.w.deleted[0] != 4 {
		t.Fatalf("superseded epoch wraps not purged: %v", m.w.deleted)
	}

	if !bytes.Equal(m.c.updatedTitle, []byte("new-title")) || m.c.updatedTitleEpoch != 5 {
		t.Fatalf("title not re-sealed: %q epoch %d", m.c.updatedTitle, m.c.updatedTitleEpoch)
	}
}

func TestRotate_EmptyMembership(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.c.epoch = 2

	s := NewRotationService(db, m)

	res, err := s.Rotate(context.Background(), db, RotationParams{
		ConversationID: "conv-1",
		ExpectedEpoch:  2,
	})
	if err != nil {
		t.Fatalf("Rotate error: %v", err)
	}
	if res.NewEpochNumber != 3 {
		t.Fatalf("unexpected epoch number: %d", res.NewEpochNumber)
	}
	if len(m.w.created) != 0 {
		t.Fatalf("no wraps expected, got %d", len(m.w.created))
	}
}

func TestRotate_StaleEpoch_LostRace(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.c.epoch = 6

	s := NewRotationService(db, m)

	_, err := s.Rotate(context.Background(), db, RotationParams{
		ConversationID: "conv-1",
		ExpectedEpoch:  5,
	})

	var stale *StaleEpochError
	if !errors.As(err, &stale) {
		t.Fatalf("want StaleEpochError, got %v", err)
	}
	if stale.CurrentEpoch != 6 {
		t.Fatalf("unexpected current epoch: %d", stale.CurrentEpoch)
	}
	if !errors.Is(err, common.ErrStaleEpoch) {
		t.Fatalf("want ErrStaleEpoch identity, got %v", err)
	}
	if len(m.e.created) != 0 {
		t.Fatalf("no epoch row should exist after a lost race")
	}
}

func TestRotate_StaleEpoch_ConversationGone(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeRepoManager()
	m.c.epoch = 9
	m.c.currentErr = common.ErrorNotFound

	s := NewRotationService(db, m)

	_, err := s.Rotate(context.Background(), db, RotationParams{
		ConversationID: "conv-gone",
		ExpectedEpoch:  5,
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestRotate_WrapSetMismatch(t *testing.T) {
	keyA := []byte("pub-a")
	keyB := []byte("pub-b")
	keyX := []byte("pub-stranger")

	tests := []struct {
		name     string
		wraps    []MemberWrap
		expected int
		provided int
	}{
		{
			name:     "missing wrap",
			wraps:    []MemberWrap{{MemberPublicKey: keyA, WrappedKey: []byte("wa")}},
			expected: 2,
			provided: 1,
		},
		{
			name: "unknown key",
			wraps: []MemberWrap{
				{MemberPublicKey: keyA, WrappedKey: []byte("wa")},
				{MemberPublicKey: keyX, WrappedKey: []byte("wx")},
			},
			expected: 2,
			provided: 2,
		},
		{
			name: "duplicate key",
			wraps: []MemberWrap{
				{MemberPublicKey: keyA, WrappedKey: []byte("wa")},
				{MemberPublicKey: keyA, WrappedKey: []byte("wa2")},
			},
			expected: 2,
			provided: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			defer db.Close()

			m := newFakeRepoManager()
			m.c.epoch = 1
			m.m.active = []*models.ConversationMember{
				userMember("m-1", "alice", keyA, 1),
				userMember("m-2", "bob", keyB, 1),
			}

			s := NewRotationService(db, m)

			_, err := s.Rotate(context.Background(), db, RotationParams{
				ConversationID: "conv-1",
				ExpectedEpoch:  1,
				MemberWraps:    tt.wraps,
			})

			var mismatch *WrapSetMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("want WrapSetMismatchError, got %v", err)
			}
			if mismatch.Expected != tt.expected || mismatch.Provided != tt.provided {
				t.Fatalf("unexpected counts: %+v", mismatch)
			}
			if !errors.Is(err, common.ErrWrapSetMismatch) {
				t.Fatalf("want ErrWrapSetMismatch identity, got %v", err)
			}
			if len(m.w.created) != 0 {
				t.Fatalf("no wraps should be written on mismatch")
			}
		})
	}
}

func TestRotate_RepositoryErrors(t *testing.T) {
	keyA := []byte("pub-a")

	tests := []struct {
		name    string
		mutate  func(m *fakeRepoManager)
		wantMsg string
	}{
		{
			name:    "advance fails",
			mutate:  func(m *fakeRepoManager) { m.c.advanceErr = errBoom{} },
			wantMsg: "boom",
		},
		{
			name:    "epoch insert fails",
			mutate:  func(m *fakeRepoManager) { m.e.createErr = errBoom{} },
			wantMsg: "failed to insert new epoch:",
		},
		{
			name:    "member list fails",
			mutate:  func(m *fakeRepoManager) { m.m.listErr = errBoom{} },
			wantMsg: "failed to list active members:",
		},
		{
			name:    "wrap insert fails",
			mutate:  func(m *fakeRepoManager) { m.w.createErr = errBoom{} },
			wantMsg: "failed to insert wrap:",
		},
		{
			name:    "purge fails",
			mutate:  func(m *fakeRepoManager) { m.w.deleteErr = errBoom{} },
			wantMsg: "failed to purge superseded wraps:",
		},
		{
			name:    "title update fails",
			mutate:  func(m *fakeRepoManager) { m.c.titleErr = errBoom{} },
			wantMsg: "failed to update title:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			defer db.Close()

			m := newFakeRepoManager()
			m.c.epoch = 1
			m.m.active = []*models.ConversationMember{userMember("m-1", "alice", keyA, 1)}
			tt.mutate(m)

			s := NewRotationService(db, m)

			_, err := s.Rotate(context.Background(), db, RotationParams{
				ConversationID: "conv-1",
				ExpectedEpoch:  1,
				MemberWraps:    []MemberWrap{{MemberPublicKey: keyA, WrappedKey: []byte("wa")}},
			})
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("want %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestRotateConversation_CommitsOnSuccess(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	keyA := []byte("pub-a")
	m := newFakeRepoManager()
	m.c.epoch = 1
	m.m.active = []*models.ConversationMember{userMember("m-1", "alice", keyA, 1)}

	s := NewRotationService(db, m)

	res, err := s.RotateConversation(context.Background(), RotationParams{
		ConversationID: "conv-1",
		ExpectedEpoch:  1,
		MemberWraps:    []MemberWrap{{MemberPublicKey: keyA, WrappedKey: []byte("wa")}},
	})
	if err != nil {
		t.Fatalf("RotateConversation error: %v", err)
	}
	if res.NewEpochNumber != 2 {
		t.Fatalf("unexpected epoch number: %d", res.NewEpochNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRotateConversation_RollsBackOnStaleEpoch(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := newFakeRepoManager()
	m.c.epoch = 3

	s := NewRotationService(db, m)

	_, err := s.RotateConversation(context.Background(), RotationParams{
		ConversationID: "conv-1",
		ExpectedEpoch:  2,
	})

	var stale *StaleEpochError
	if !errors.As(err, &stale) {
		t.Fatalf("want StaleEpochError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// Two rotations race on the same conversation: the epoch counter picks
// exactly one winner and the loser learns the fresh epoch to retry from.
func TestRotateConversation_RaceSingleWinner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	keyA := []byte("pub-a")
	m := newFakeRepoManager()
	m.c.epoch = 1
	m.m.active = []*models.ConversationMember{userMember("m-1", "alice", keyA, 1)}

	s := NewRotationService(db, m)

	p := RotationParams{
		ConversationID: "conv-1",
		ExpectedEpoch:  1,
		MemberWraps:    []MemberWrap{{MemberPublicKey: keyA, WrappedKey: []byte("wa")}},
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.RotateConversation(context.Background(), p)
		}(i)
	}
	wg.Wait()

	var winners, losers int
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var stale *StaleEpochError
		if !errors.As(err, &stale) {
			t.Fatalf("loser should see StaleEpochError, got %v", err)
		}
		if stale.CurrentEpoch != 2 {
			t.Fatalf("loser should see epoch 2, got %d", stale.CurrentEpoch)
		}
		losers++
	}
	if winners != 1 || losers != 1 {
		t.Fatalf("want one winner and one loser, got %d/%d", winners, losers)
	}

	if len(m.e.created) != 1 {
		t.Fatalf("exactly one epoch row expected, got %d", len(m.e.created))
	}
	if m.c.epoch != 2 {
		t.Fatalf("counter should land on 2, got %d", m.c.epoch)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// Exact wrap sets rotate; any perturbation (dropped, foreign, or
// duplicated key) is rejected, regardless of member count or order.
func TestRotate_WrapSetPerturbations(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	run := func(active []*models.ConversationMember, wraps []MemberWrap) error {
		db, _ := newSQLMockDB(t)
		defer db.Close()

		m := newFakeRepoManager()
		m.c.epoch = 1
		m.m.active = active

		s := NewRotationService(db, m)
		_, err := s.Rotate(context.Background(), db, RotationParams{
			ConversationID: "conv-1",
			ExpectedEpoch:  1,
			MemberWraps:    wraps,
		})
		return err
	}

	for i := 0; i < 20; i++ {
		n := 1 + rnd.Intn(6)
		active := make([]*models.ConversationMember, 0, n)
		exact := make([]MemberWrap, 0, n)
		for j := 0; j < n; j++ {
			pk := make([]byte, 16)
			rnd.Read(pk)
			active = append(active, userMember(fmt.Sprintf("m-%d", j), fmt.Sprintf("u-%d", j), pk, int64(1+rnd.Intn(5))))
			exact = append(exact, MemberWrap{MemberPublicKey: pk, WrappedKey: []byte{byte(j)}})
		}
		rnd.Shuffle(len(exact), func(a, b int) { exact[a], exact[b] = exact[b], exact[a] })

		if err := run(active, exact); err != nil {
			t.Fatalf("round %d: exact set must rotate, got %v", i, err)
		}

		dropped := exact[:len(exact)-1]
		if err := run(active, dropped); !errors.Is(err, common.ErrWrapSetMismatch) {
			t.Fatalf("round %d: dropped wrap must mismatch, got %v", i, err)
		}

		stranger := make([]byte, 16)
		rnd.Read(stranger)
		foreign := append(append([]MemberWrap{}, dropped...), MemberWrap{MemberPublicKey: stranger, WrappedKey: []byte("f")})
		if err := run(active, foreign); !errors.Is(err, common.ErrWrapSetMismatch) {
			t.Fatalf("round %d: foreign key must mismatch, got %v", i, err)
		}

		if n >= 2 {
			duplicated := append(append([]MemberWrap{}, dropped...), dropped[0])
			if err := run(active, duplicated); !errors.Is(err, common.ErrWrapSetMismatch) {
				t.Fatalf("round %d: duplicated key must mismatch, got %v", i, err)
			}
		}
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
