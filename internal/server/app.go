// Package server initializes and runs the KeyFold server. It wires the
// configuration, database, repositories and services together, starts the
// gRPC endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/keyfold/keyfold/internal/logging"
	"github.com/keyfold/keyfold/internal/server/config"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
	"github.com/keyfold/keyfold/internal/server/services"

	gs "github.com/keyfold/keyfold/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	conversations *services.ConversationService
	keychains     *services.KeyChainService
	memberships   *services.MembershipService
	rotations     *services.RotationService
	links         *services.LinkService
	attachments   *services.AttachmentService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	logger.Debug(context.Background(), "database migrations applied")

	rs := services.NewRotationService(db, rm)

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		conversations: services.NewConversationService(db, rm),
		keychains:     services.NewKeyChainService(db, rm),
		memberships:   services.NewMembershipService(db, rm, rs),
		rotations:     rs,
		links:         services.NewLinkService(db, rm, rs),
		attachments:   services.NewAttachmentService(c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.conversations, app.keychains, app.memberships, app.rotations, app.links, app.attachments,
		app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
