package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/infrastructure/config"
)

var (
	logsFollow bool
	logsLines  int
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
	shortSessionLen  = 8
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the interactive session log",
	Long: `View the log written by 'tiles run'.

The log file is logging.file, or $XDG_STATE_HOME/tiles/tiles.log when unset.

Examples:
  tiles logs              # Last 50 lines
  tiles logs -n 200       # Last 200 lines
  tiles logs -f           # Follow new lines in real-time`,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the log file and its backup",
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// resolveLogFile returns logging.file or the XDG state location.
func resolveLogFile(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Logging.File != "" {
		return cfg.Logging.File, nil
	}
	return xdgPaths.LogFile()
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := resolveLogFile(app.Config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No log yet. Run 'tiles run' to create "+path))
		return nil
	} else if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return followLog(ctx, out, path, app.Theme)
	}

	return showLog(out, path, logsLines, app.Theme)
}

func showLog(w io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	// Ring of the last N lines
	tail := make([]string, 0, lines)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if lines <= 0 {
			continue
		}
		if len(tail) == lines {
			tail = tail[1:]
		}
		tail = append(tail, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to the log until ctx is done.
func followLog(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Seek to end
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(w)

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()

	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err == nil {
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log file: %w", err)
		}

		// No full line yet; keep partial data.
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Session   string `json:"session"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: "15:04:05 INF message key=value"
	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Session != "" {
		short := entry.Session
		if len(short) > shortSessionLen {
			short = short[:shortSessionLen]
		}
		msg = theme.Highlight.Render(short) + " " + msg
	}
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := resolveLogFile(app.Config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var removed int
	for _, p := range []string{path, path + ".1"} {
		err := os.Remove(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			fmt.Fprintf(out, "%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), p, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", app.Theme.Highlight.Render(styles.IconCheck), p)
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
	}
	return nil
}
