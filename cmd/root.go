package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/psacc/buflist/internal/config"
	"github.com/psacc/buflist/internal/host"
	nvimhost "github.com/psacc/buflist/internal/host/nvim"
	"github.com/psacc/buflist/internal/output"
	"github.com/psacc/buflist/internal/source"

	// Register the buffer source and its actions via init()
	_ "github.com/psacc/buflist/internal/action"
	_ "github.com/psacc/buflist/internal/source/buffer"
)

var (
	flagJSON    bool
	flagConfig  string
	flagServer  string
	flagOrderBy string
	flagCurrent int
	flagColor   string
)

var rootCmd = &cobra.Command{
	Use:           "buflist",
	Short:         "List and close Neovim buffers",
	Long:          "List the open buffers of a running Neovim ordered by last use, close clean buffers, or serve both as a remote plugin.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/buflist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Neovim server address (default $NVIM, then a running nvim --listen)")
	rootCmd.PersistentFlags().StringVar(&flagOrderBy, "orderby", "", "Order by last use: asc or desc (desc keeps the current buffer last)")
	rootCmd.PersistentFlags().IntVar(&flagCurrent, "current", 0, "Buffer to treat as current (0 = ask nvim)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color labels: auto, always or never")
}

func getFormat() output.Format {
	if flagJSON {
		return output.FormatJSON
	}
	return output.FormatTable
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagServer != "" {
		cfg.Server = flagServer
	}
	if flagOrderBy != "" {
		cfg.OrderBy = flagOrderBy
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// dialHost connects to the editor. Tests swap it for a fake.
var dialHost = func(ctx context.Context, cfg config.Config) (host.Host, func() error, error) {
	addr, err := nvimhost.ResolveAddress(ctx, cfg.Server)
	if err != nil {
		return nil, nil, err
	}
	h, err := nvimhost.Dial(ctx, addr, nvimhost.Options{InlineKind: cfg.InlineKind})
	if err != nil {
		return nil, nil, err
	}
	return h, h.Close, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func gatherParams(cfg config.Config) source.Params {
	return source.Params{OrderBy: cfg.Order()}
}

// stdoutIsTerminal is swapped in tests.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorEnabled reports whether labels get styled.
func colorEnabled(mode string) bool {
	switch strings.ToLower(mode) {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	default:
		return stdoutIsTerminal()
	}
}

// parseBufferIDs converts positional arguments to buffer numbers.
func parseBufferIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid buffer number %q", a)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
