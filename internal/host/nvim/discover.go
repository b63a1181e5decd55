package nvim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrNoServer is returned when no Neovim server address could be found.
var ErrNoServer = errors.New("no nvim server found: set --server, $NVIM or start nvim with --listen")

// ResolveAddress picks the server to talk to: explicit, then $NVIM, then
// $NVIM_LISTEN_ADDRESS, then the first running nvim started with --listen.
func ResolveAddress(ctx context.Context, explicit string) (string, error) {
	return resolveAddress(ctx, explicit, os.Getenv, Discover)
}

func resolveAddress(ctx context.Context, explicit string, getenv func(string) string, discover func(context.Context) ([]string, error)) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, key := range []string{"NVIM", "NVIM_LISTEN_ADDRESS"} {
		if v := getenv(key); v != "" {
			return v, nil
		}
	}
	addrs, err := discover(ctx)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", ErrNoServer
	}
	return addrs[0], nil
}

// Discover scans running processes for nvim instances with a --listen
// address. Processes that vanish or cannot be inspected are skipped.
func Discover(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, p := range procs {
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil || len(args) == 0 {
			continue
		}
		if !isNvim(args[0]) {
			continue
		}
		if addr, ok := listenAddress(args[1:]); ok {
			addrs = append(addrs, addr)
		}
	}
	return addrs, nil
}

func isNvim(argv0 string) bool {
	base := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	return base == "nvim"
}

// listenAddress extracts the value of --listen from nvim's arguments.
func listenAddress(args []string) (string, bool) {
	for i, a := range args {
		if a == "--" {
			return "", false
		}
		if v, ok := strings.CutPrefix(a, "--listen="); ok && v != "" {
			return v, true
		}
		if a == "--listen" && i+1 < len(args) && args[i+1] != "" {
			return args[i+1], true
		}
	}
	return "", false
}
