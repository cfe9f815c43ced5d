package repomanager

import (
	"context"
	"database/sql"

	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/repositories/conversations"
	"github.com/keyfold/keyfold/internal/server/repositories/epochmembers"
	"github.com/keyfold/keyfold/internal/server/repositories/epochs"
	"github.com/keyfold/keyfold/internal/server/repositories/members"
	"github.com/keyfold/keyfold/internal/server/repositories/sharedlinks"
)

// RepositoryManager vends repositories bound to a DBTX, letting services
// run several repositories inside one transaction by handing each the
// same *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Conversations(db dbx.DBTX) conversations.Repository
	Epochs(db dbx.DBTX) epochs.Repository
	EpochMembers(db dbx.DBTX) epochmembers.Repository
	Members(db dbx.DBTX) members.Repository
	SharedLinks(db dbx.DBTX) sharedlinks.Repository
}
