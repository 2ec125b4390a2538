package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pixlab/transferapi/infra/repository/memory"
	"github.com/pixlab/transferapi/pkg/config"
	transfersvc "github.com/pixlab/transferapi/pkg/service/transfer"
	usersvc "github.com/pixlab/transferapi/pkg/service/user"
	"github.com/pixlab/transferapi/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	store := memory.New()
	userSvc := usersvc.New(store.Users(), logger)
	transferSvc := transfersvc.New(userSvc, store.Transfers(), cfg.Transfer.NonFavoredCap, logger)

	app := webapi.New(cfg, userSvc, transferSvc, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
