package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/app"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Open builds the application for commands that need the store.
	// Tests replace it to inject repositories and a fixed clock.
	Open func(ctx context.Context, verbose bool) (*app.App, error)
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for clinicctl.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(&RootOptions{Open: openApp})
}

func NewRootCommandWith(opts *RootOptions) *cobra.Command {
	if opts.Open == nil {
		opts.Open = openApp
	}

	cmd := &cobra.Command{
		Use:   "clinicctl",
		Short: "Operate the clinic appointment book",
		Long:  "Inspect and book appointments against the configured store without going through HTTP.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))
	cmd.AddCommand(NewAvailabilityCommand(opts))
	cmd.AddCommand(NewBookCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}

func openApp(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(false, level)
	if err != nil {
		return nil, err
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("open app", zap.Error(err))
		return nil, err
	}
	return a, nil
}

// withApp opens the application, runs fn and closes it again.
func withApp(cmd *cobra.Command, opts *RootOptions, fn func(a *app.App) error) error {
	a, err := opts.Open(cmd.Context(), opts.Verbose)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "close: %v\n", cerr)
		}
	}()
	return fn(a)
}
