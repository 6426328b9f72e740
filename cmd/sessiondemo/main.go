package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	logOpts, err := logger.FromConfig(logCfg)
	if err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	logOpts = append(logOpts, logger.WithContextExtractors(session.LoggerExtractor()))
	lg := logger.New(logOpts...)
	logger.SetAsDefault(lg)

	sessCfg, err := session.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load session configuration: %v", err)
	}

	manager := session.NewFromConfig(sessCfg,
		session.WithLogger(lg),
		session.WithStore(session.NewMemoryStore(session.WithIDGenerator(session.UUIDGenerator))),
	)
	ctx := session.WithManager(context.Background(), manager)

	if err := run(ctx, manager); err != nil {
		log.Fatalf("Session walkthrough failed: %v", err)
	}
}

func run(ctx context.Context, manager *session.Manager) error {
	if err := manager.Start(ctx); err != nil {
		return err
	}
	if err := manager.Set("user", "alice"); err != nil {
		return err
	}

	id, err := manager.ID()
	if err != nil {
		return err
	}
	fmt.Printf("started %s session %s\n", manager.Name(), id)

	// Preconditions are reported, not fatal
	if err := manager.SetName("OTHER"); errors.Is(err, session.ErrSessionAlreadyActive) {
		fmt.Printf("set name refused: %v (code %d)\n", err, session.ErrorCode(err))
	}

	if err := manager.Regenerate(ctx, true); err != nil {
		return err
	}
	if id, err = manager.ID(); err != nil {
		return err
	}
	fmt.Printf("regenerated id %s\n", id)

	if err := manager.Close(ctx); err != nil {
		return err
	}
	if err := manager.SetID(id); err != nil {
		return err
	}
	if err := manager.Start(ctx); err != nil {
		return err
	}

	all, err := manager.All()
	if err != nil {
		return err
	}
	fmt.Printf("resumed data: %v\n", all)

	if err := manager.Destroy(ctx); err != nil {
		return err
	}
	fmt.Printf("active after destroy: %t\n", manager.IsActive())
	return nil
}
