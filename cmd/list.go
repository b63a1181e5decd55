package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psacc/buflist/internal/config"
	"github.com/psacc/buflist/internal/host"
	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/output"
	"github.com/psacc/buflist/internal/source"
	"github.com/psacc/buflist/internal/source/buffer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open buffers",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	h, closeHost, err := dialHost(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeHost()

	items, err := gatherItems(ctx, h, cfg)
	if err != nil {
		return err
	}
	return output.RenderItems(cmd.OutOrStdout(), items, getFormat(), colorEnabled(cfg.Color))
}

// gatherItems pulls one ranked listing from the buffer source.
func gatherItems(ctx context.Context, h host.Host, cfg config.Config) ([]model.ResultItem, error) {
	current := flagCurrent
	if current == 0 {
		if cb, ok := h.(host.CurrentBuffer); ok {
			n, err := cb.CurrentBuffer(ctx)
			if err != nil {
				return nil, err
			}
			current = n
		}
	}

	src, ok := source.Get(buffer.Name)
	if !ok {
		return nil, fmt.Errorf("source %q not registered", buffer.Name)
	}
	args := source.GatherArgs{CurrentID: current, Params: gatherParams(cfg)}
	return src.Gather(ctx, h, args).Collect(ctx)
}
