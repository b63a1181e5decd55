package cmd

import (
	"os"

	"github.com/neovim/go-client/nvim/plugin"
	"github.com/spf13/cobra"

	nvimhost "github.com/psacc/buflist/internal/host/nvim"
	"github.com/psacc/buflist/internal/logx"
	"github.com/psacc/buflist/internal/rplugin"
)

var flagManifest string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a Neovim remote plugin on stdio",
	Long: `Run as a Neovim remote plugin. Neovim starts this command and talks to it
over stdin/stdout. It registers BuflistGather, BuflistDelete and BuflistActions.

Print the registration manifest with:

  buflist serve --manifest buflist`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagManifest, "manifest", "", "Print the plugin manifest for this host name and exit")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// plugin.Main parses os.Args with the flag package; cobra already
	// consumed ours.
	os.Args = pluginArgs(os.Args[0], flagManifest)

	logx.Ctx(ctx).Debug("serving remote plugin", "inline_kind", cfg.InlineKind, "orderby", cfg.OrderBy)
	plugin.Main(func(p *plugin.Plugin) error {
		rplugin.Register(ctx, p, nvimhost.Options{InlineKind: cfg.InlineKind}, gatherParams(cfg))
		return nil
	})
	return nil
}

func pluginArgs(argv0, manifest string) []string {
	if manifest == "" {
		return []string{argv0}
	}
	return []string{argv0, "-manifest", manifest}
}
