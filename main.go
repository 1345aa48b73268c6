package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"retireterm/app/client/assistant"
	"retireterm/app/client/simulation"
	"retireterm/app/config"
	"retireterm/app/service/conversation"
	"retireterm/app/ui"
	"retireterm/app/util/mylog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Config load failed", "error", err)
		os.Exit(1)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		slog.Error("Logging init failed", "error", err)
		os.Exit(1)
	}

	do.Provide(di, simulation.NewClient)
	do.Provide(di, assistant.NewClient)
	do.Provide(di, conversation.New)
	do.Provide(di, ui.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		cancel()
	}()

	program := tea.NewProgram(
		do.MustInvoke[*ui.Model](di),
		tea.WithAltScreen(),
		tea.WithContext(appCtx),
	)

	if _, err := program.Run(); err != nil {
		slog.Error("UI terminated with error", "error", err)
		os.Exit(1)
	}
}
