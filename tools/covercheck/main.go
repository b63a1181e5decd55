// covercheck fails when a package's statement coverage drops below a
// threshold.
//
//	go test -coverprofile=coverage.out ./...
//	go run ./tools/covercheck coverage.out
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// defaultExempt skips the main package and the in-memory host used only by
// tests.
var defaultExempt = []string{"github.com/psacc/buflist", "hosttest"}

var (
	flagThreshold int
	flagExempt    []string
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:           "covercheck [flags] coverage.out",
	Short:         "Enforce per-package statement coverage",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		pkgs, err := parseProfile(f, flagExempt)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if failed := report(cmd.OutOrStdout(), pkgs, flagThreshold); len(failed) > 0 {
			return fmt.Errorf("%d package(s) below %d%%", len(failed), flagThreshold)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagThreshold, "threshold", 80, "Minimum coverage percentage per package")
	rootCmd.Flags().StringSliceVar(&flagExempt, "exempt", defaultExempt, "Package paths or path segments to skip")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "covercheck:", err)
		os.Exit(1)
	}
}

type coverage struct {
	statements int
	covered    int
}

func (c coverage) percent() float64 {
	if c.statements == 0 {
		return 100
	}
	return float64(c.covered) / float64(c.statements) * 100
}

// parseProfile sums statements per package from a coverage profile. Lines
// look like "pkg/path/file.go:1.2,3.4 stmts count".
func parseProfile(r io.Reader, exempt []string) (map[string]coverage, error) {
	pkgs := make(map[string]coverage)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "mode:") {
			continue
		}
		file, block, ok := cutLast(line, ":")
		if !ok {
			continue
		}
		pkg, _, ok := cutLast(file, "/")
		if !ok || exempted(pkg, exempt) {
			continue
		}
		fields := strings.Fields(block)
		if len(fields) != 3 {
			continue
		}
		stmts, err1 := strconv.Atoi(fields[1])
		hits, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			continue
		}
		c := pkgs[pkg]
		c.statements += stmts
		if hits > 0 {
			c.covered += stmts
		}
		pkgs[pkg] = c
	}
	return pkgs, sc.Err()
}

func cutLast(s, sep string) (before, after string, ok bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// exempted matches a full package path, or a path segment anywhere in pkg.
func exempted(pkg string, exempt []string) bool {
	for _, e := range exempt {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if pkg == e || strings.HasSuffix(pkg, "/"+e) || strings.Contains(pkg, "/"+e+"/") {
			return true
		}
	}
	return false
}

// report writes one line per package and returns those under threshold.
func report(w io.Writer, pkgs map[string]coverage, threshold int) []string {
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)

	var failed []string
	for _, name := range names {
		pct := pkgs[name].percent()
		if pct < float64(threshold) {
			failed = append(failed, name)
			fmt.Fprintf(w, "%s %-60s %5.1f%% (need %d%%)\n", failStyle.Render("FAIL"), name, pct, threshold)
			continue
		}
		fmt.Fprintf(w, "%s   %-60s %5.1f%%\n", okStyle.Render("ok"), name, pct)
	}
	return failed
}
