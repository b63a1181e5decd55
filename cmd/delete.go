package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psacc/buflist/internal/action"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <bufnr>...",
	Short: "Close listed buffers that have no unsaved changes",
	Long:  "Close buffers in the given order. The first buffer that is gone or modified stops the batch; buffers closed before it stay closed.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseBufferIDs(args)
	if err != nil {
		return err
	}

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
	selected, err := selectItems(items, ids)
	if err != nil {
		return err
	}

	out := action.DeleteAll(ctx, h, selected)
	if out.Err != nil {
		logx.WithAction(logx.Ctx(ctx), action.DeleteName).Warn("delete stopped",
			"err", out.Err, "closed", len(out.Closed), "requested", len(selected))
	}
	return output.RenderOutcome(cmd.OutOrStdout(), out, getFormat())
}

// selectItems picks the listed items for ids, in the order given.
func selectItems(items []model.ResultItem, ids []int) ([]model.ResultItem, error) {
	byID := make(map[int]model.ResultItem, len(items))
	for _, it := range items {
		byID[it.BufferID] = it
	}
	selected := make([]model.ResultItem, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("buffer %d is not in the buffer list", id)
		}
		selected = append(selected, it)
	}
	return selected, nil
}
