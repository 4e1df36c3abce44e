// Package cli wires the lvkit subcommands: flag parsing, configuration,
// logging and output around the ringbuffer and knapsack packages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvkit/internal/config"
	"github.com/katalvlaran/lvkit/internal/logger"
)

// Context carries what every subcommand needs once flags are resolved.
type Context struct {
	context.Context

	Command *cobra.Command
	Config  *config.Config
	Logger  *slog.Logger

	closers []io.Closer
}

// Stdout is where results are written.
func (c *Context) Stdout() io.Writer { return c.Command.OutOrStdout() }

// Stdin is read when no file argument is given.
func (c *Context) Stdin() io.Reader { return c.Command.InOrStdin() }

func (c *Context) close() error {
	var errs []error
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}

	return errors.Join(errs...)
}

// runFunc is the body of a subcommand.
type runFunc func(ctx *Context, args []string) error

// newCommand attaches config loading and logger setup to cmd before run.
func newCommand(v *viper.Viper, cmd *cobra.Command, run runFunc) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext(v, cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := ctx.close(); cerr != nil {
				ctx.Logger.Warn("Failed to close resources", "err", cerr)
			}
		}()

		return run(ctx, args)
	}

	return cmd
}

func newContext(v *viper.Viper, cmd *cobra.Command) (*Context, error) {
	cfgFile, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	ctx := &Context{Command: cmd, Config: cfg}

	opts := []logger.Option{
		logger.WithFormat(cfg.LogFormat),
		logger.WithConsole(cmd.ErrOrStderr()),
	}
	if cfg.Debug {
		opts = append(opts, logger.WithDebug())
	}
	if cfg.Quiet {
		opts = append(opts, logger.WithQuiet())
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		ctx.closers = append(ctx.closers, f)
		opts = append(opts, logger.WithWriter(f))
	}
	ctx.Logger = logger.New(opts...)

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx.Context = logger.WithLogger(base, ctx.Logger)

	return ctx, nil
}

// openInput opens path for reading; "" or "-" selects stdin.
func openInput(ctx *Context, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(ctx.Stdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
