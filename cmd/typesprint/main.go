// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/i18n"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/passage"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/textproc"
	"github.com/verte-zerg/typesprint/internal/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesprint",
		Short:         "Timed typing test in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTypingCmd,
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newPassagesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup resolves the configuration, installs the logger and loads the
// locale. The returned func closes the log file, if any.
func setup(cmd *cobra.Command) (config.Config, context.Context, func(), error) {
	cfg, err := config.Load(cmd.Flags(), config.DefaultConfigPath())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if err := i18n.Init(cfg.Settings.Lang); err != nil {
		closeLog()
		return config.Config{}, nil, nil, fmt.Errorf("init i18n: %w", err)
	}
	ctx := i18n.WithLocalizer(cmd.Context(), i18n.NewLocalizer(cfg.Settings.Lang))
	return cfg, ctx, closeLog, nil
}

func runTypingCmd(cmd *cobra.Command, _ []string) error {
	cfg, ctx, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := passage.Builtin()
	if err != nil {
		return fmt.Errorf("failed to load passages: %w", err)
	}
	builder, err := passage.NewBuilder(catalog, cfg.Settings.Lang, generator.New())
	if err != nil {
		return fmt.Errorf("failed to build word list: %w", err)
	}
	slog.Debug("starting typing test",
		"difficulty", cfg.Settings.Difficulty,
		"passage", cfg.Settings.PassageID,
		"duration", cfg.Settings.Duration,
		"lang", cfg.Settings.Lang,
		"vocabulary", builder.Words(),
	)

	m := tui.NewModel(ctx, cfg.Settings, catalog, builder)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := writeSession(cmd.OutOrStdout(), m.Results()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// writeSession prints the last attempt in detail followed by the session
// summary.
func writeSession(w io.Writer, results []model.TestResult) error {
	if n := len(results); n > 0 {
		last := results[n-1]
		if err := stats.BuildReport(last, 5).Render(w); err != nil {
			return err
		}
		if len(last.Errors) > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := stats.RenderErrorTable(w, last.Errors); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return stats.RenderSummary(w, results)
}

func newPassagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passages",
		Short: "List built-in passages with computed difficulty",
		Args:  cobra.NoArgs,
		RunE:  runPassagesCmd,
	}
}

func runPassagesCmd(cmd *cobra.Command, _ []string) error {
	cfg, ctx, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := passage.Builtin()
	if err != nil {
		return fmt.Errorf("failed to load passages: %w", err)
	}
	return writePassages(ctx, cmd.OutOrStdout(), catalog, cfg.Settings.Difficulty)
}

func writePassages(ctx context.Context, w io.Writer, catalog *passage.Catalog, only model.Difficulty) error {
	levels := catalog.Difficulties()
	if only != "" {
		levels = []model.Difficulty{only}
	}
	headers := []string{"ID", "Score", "Level", "Words", "Avg len", "Source"}
	for _, d := range levels {
		if _, err := fmt.Fprintf(w, "%s (%s)\n", i18n.T(ctx, difficultyKey(d)), i18n.Tp(ctx, "PassagesAvailable", catalog.Count(d))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		var rows [][]string
		for _, p := range catalog.ByDifficulty(d) {
			computed := textproc.TextDifficulty(p.Text)
			rows = append(rows, []string{
				p.ID,
				fmt.Sprintf("%d", computed.Score),
				string(computed.Level),
				fmt.Sprintf("%d", computed.Factors.WordCount),
				fmt.Sprintf("%.1f", computed.Factors.AvgWordLength),
				p.Source,
			})
		}
		if err := stats.WriteTable(w, headers, rows, map[int]bool{1: true, 3: true, 4: true}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := config.EnsureFile(path)
	if err != nil {
		return err
	}
	if created {
		slog.Info("created config", "path", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if _, err := config.LoadConfig(path); err != nil {
		slog.Warn("config has problems", "path", path, "error", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "typesprint %s\n", version)
			return err
		},
	}
}

// setupLogging installs the default slog logger. Logs go to stderr unless a
// file is configured, since the TUI owns the terminal.
func setupLogging(l config.Log) (func(), error) {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if l.File != "" {
		if err := os.MkdirAll(filepath.Dir(l.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch l.Format {
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
	return closeFn, nil
}

func difficultyKey(d model.Difficulty) string {
	s := string(d)
	if s == "" {
		return "DifficultyBeginner"
	}
	return "Difficulty" + strings.ToUpper(s[:1]) + s[1:]
}
