package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/stigoleg/timefield/internal/config"
	"github.com/stigoleg/timefield/internal/ui"
)

const ErrDomain = "cli"

// ErrAborted is returned when the user leaves without submitting.
var ErrAborted = errors.New("aborted without submitting")

func run(cmd *cobra.Command, cfg config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = slogctx.NewCtx(ctx, logger)
	ctx = slogctx.With(ctx, "field", cfg.Field.Name)

	model := ui.InitialModel(ui.Options{
		Name:        cfg.Field.Name,
		Value:       cfg.Field.Value,
		Placeholder: cfg.Field.Placeholder,
		ClassName:   cfg.Field.ClassName,
		Locale:      cfg.UI.Locale,
		Required:    cfg.Field.Required,
		Width:       cfg.Field.Width,
		Logger:      slogctx.FromCtx(ctx),
	})

	// The form renders on stderr so stdout carries only the result.
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	}
	if in := cmd.InOrStdin(); in != os.Stdin {
		opts = append(opts, tea.WithInput(in))
	}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case sig := <-sigChan:
			slogctx.Info(ctx, "received signal", "signal", sig.String())
			p.Kill()
		case <-done:
		}
	}()

	slogctx.Info(ctx, "starting", "value", cfg.Field.Value, "locale", cfg.UI.Locale)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ErrAborted
		}
		return oops.In(ErrDomain).Wrapf(err, "running program")
	}

	value, ok := final.(ui.Model).Result()
	if !ok {
		slogctx.Info(ctx, "aborted")
		return ErrAborted
	}

	slogctx.Info(ctx, "done", "value", value)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

// newLogger returns a context aware logger writing to the configured log
// file, or discarding everything when no file is configured.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return slog.New(slogctx.NewHandler(slog.DiscardHandler, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(cfg.Log.File, AppName)
	if err != nil {
		return nil, nil, oops.In(ErrDomain).With("path", cfg.Log.File).Wrapf(err, "open log file")
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(slogctx.NewHandler(h, nil)), func() { _ = f.Close() }, nil
}
