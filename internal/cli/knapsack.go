package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvkit/internal/config"
	"github.com/katalvlaran/lvkit/internal/logger"
	"github.com/katalvlaran/lvkit/internal/output"
	"github.com/katalvlaran/lvkit/knapsack"
)

// ErrCapacityRequired is returned when no source provides a capacity.
var ErrCapacityRequired = errors.New("capacity is required (argument, --capacity or LVKIT_CAPACITY)")

func knapsackCmd(v *viper.Viper) *cobra.Command {
	cmd := newCommand(v, &cobra.Command{
		Use:   "knapsack <file> [capacity]",
		Short: "Solve a 0/1 knapsack instance",
		Long: `Read items from a file ("-" for stdin), one per line as

  <index> <size> <value>

and print the maximum total value that fits the capacity together with the
chosen item indices. Lines starting with '#' are ignored.

Example:
  lvkit knapsack data/small1.txt 100
  LVKIT_CAPACITY=100 lvkit knapsack -o json data/small1.txt
`,
		Args: cobra.RangeArgs(1, 2),
	}, runKnapsack)

	cmd.Flags().Int(config.KeyCapacity, config.CapacityUnset, "knapsack capacity")
	if err := v.BindPFlag(config.KeyCapacity, cmd.Flags().Lookup(config.KeyCapacity)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", config.KeyCapacity, err))
	}

	return cmd
}

func runKnapsack(ctx *Context, args []string) error {
	capacity := ctx.Config.Capacity
	if len(args) == 2 {
		c, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid capacity %q: %w", args[1], err)
		}
		capacity = c
	}
	if capacity == config.CapacityUnset {
		return ErrCapacityRequired
	}

	in, err := openInput(ctx, args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	items, err := knapsack.ReadItems(in)
	if err != nil {
		return fmt.Errorf("failed to read items: %w", err)
	}

	start := time.Now()
	res, err := knapsack.Solve(items, capacity)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	logger.FromContext(ctx).Debug("Knapsack solved",
		"items", len(items),
		"capacity", capacity,
		"value", res.Value,
		"chosen", len(res.Chosen),
		"elapsed", time.Since(start),
	)

	return output.WriteSolution(ctx.Stdout(), ctx.Config.Output, output.NewSolution(items, capacity, res))
}
