package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvkit/internal/config"
	"github.com/katalvlaran/lvkit/internal/logger"
	"github.com/katalvlaran/lvkit/internal/output"
	"github.com/katalvlaran/lvkit/ringbuffer"
)

func tailCmd(v *viper.Viper) *cobra.Command {
	cmd := newCommand(v, &cobra.Command{
		Use:   "tail [file]",
		Short: "Print the last N lines of a file or stdin",
		Long: `Stream lines through a fixed-size ring buffer and print the retained
window, oldest line first. Memory use is bounded by --lines regardless of
input length.

Example:
  journalctl | lvkit tail -n 20
`,
		Args: cobra.MaximumNArgs(1),
	}, runTail)

	cmd.Flags().IntP(config.KeyLines, "n", 10, "number of lines to keep")
	if err := v.BindPFlag(config.KeyLines, cmd.Flags().Lookup(config.KeyLines)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", config.KeyLines, err))
	}

	return cmd
}

func runTail(ctx *Context, args []string) error {
	rb, err := ringbuffer.New[string](ctx.Config.Lines)
	if err != nil {
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	in, err := openInput(ctx, path)
	if err != nil {
		return err
	}
	defer in.Close()

	// ReadString has no line length limit.
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			rb.Append(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
	logger.FromContext(ctx).Debug("Tail finished", "read", rb.Written(), "kept", rb.Len())

	return output.WriteLines(ctx.Stdout(), ctx.Config.Output, rb.Get())
}
