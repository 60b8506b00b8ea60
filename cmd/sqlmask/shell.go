package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/tuannm99/sqlmask/internal/sql/executor"
	"github.com/tuannm99/sqlmask/sqlclient"
)

var (
	shellAddr     string
	shellTimeout  time.Duration
	shellHistory  string
	shellHistMax  int
	shellOneShot  string
	shellShowCols bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive client for a running sqlmask server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := resolveString(shellAddr, cfg.Server.Addr)
		cli, err := sqlclient.Dial(addr, shellTimeout)
		if err != nil {
			return fmt.Errorf("dial: %w", err)
		}
		defer func() { _ = cli.Close() }()
		cli.SetMaxFrameSize(cfg.Server.MaxFrameSize)

		out := cmd.OutOrStdout()

		// one-shot mode
		if strings.TrimSpace(shellOneShot) != "" {
			res, err := cli.Anonymize(shellOneShot)
			if err != nil {
				return err
			}
			printResult(out, res, shellShowCols)
			return nil
		}

		return runShell(cli, addr, out)
	},
}

func init() {
	shellCmd.Flags().StringVar(&shellAddr, "addr", "", "server address (default from config)")
	shellCmd.Flags().DurationVar(&shellTimeout, "timeout", 3*time.Second, "dial timeout")
	shellCmd.Flags().StringVar(&shellHistory, "history", defaultHistoryPath(), "history file path")
	shellCmd.Flags().IntVar(&shellHistMax, "history-max", 2000, "max history lines loaded into memory")
	shellCmd.Flags().StringVarP(&shellOneShot, "command", "c", "", "pseudonymize one statement and exit")
	shellCmd.Flags().BoolVar(&shellShowCols, "columns", false, "also print the name -> digest mapping")
}

func runShell(cli *sqlclient.Client, addr string, out io.Writer) error {
	h := NewHistory(shellHistory)
	_ = h.Load(shellHistMax)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlmask> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	for _, line := range h.Lines() {
		_ = rl.SaveHistory(line)
	}

	var buf strings.Builder
	showCols := shellShowCols

	fmt.Fprintf(out, "connected to %s\n", addr)
	fmt.Fprintln(out, `type \help for help`)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C clears current buffer
			if buf.Len() > 0 {
				buf.Reset()
				rl.SetPrompt("sqlmask> ")
			}
			continue
		}
		if err != nil {
			// EOF
			fmt.Fprintln(out)
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buf.Len() == 0 && isMetaCommand(line) {
			switch line {
			case `\q`, "quit", "exit":
				return nil
			case `\help`:
				fmt.Fprintln(out, `meta commands:
  \q | quit | exit       quit
  \history               print history
  \columns               toggle the name -> digest mapping
  \help                  show help

sql:
  end statement with ';'
  multiline is supported (shell waits until ';')`)
			case `\history`:
				h.Print(out, 50)
			case `\columns`:
				showCols = !showCols
				fmt.Fprintf(out, "columns: %v\n", showCols)
			default:
				fmt.Fprintf(out, "unknown command: %s\n", line)
			}
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(line)

		if !statementComplete(buf.String()) {
			rl.SetPrompt("...> ")
			continue
		}

		stmt := strings.TrimSpace(buf.String())
		buf.Reset()
		rl.SetPrompt("sqlmask> ")

		_ = h.Append(stmt)
		_ = rl.SaveHistory(compactOneLine(stmt))

		res, err := cli.Anonymize(stmt)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		printResult(out, res, showCols)
	}
}

// statementComplete checks for a terminating ';' outside double quotes.
func statementComplete(buf string) bool {
	inQuote := false
	escaped := false

	for _, r := range buf {
		if escaped {
			escaped = false
			continue
		}
		if inQuote && r == '\\' {
			escaped = true
			continue
		}
		if r == '"' {
			inQuote = !inQuote
			continue
		}
		if r == ';' && !inQuote {
			return true
		}
	}
	return false
}

func isMetaCommand(line string) bool {
	return strings.HasPrefix(line, `\`) || line == "quit" || line == "exit"
}

func printResult(w io.Writer, res *executor.Result, showCols bool) {
	fmt.Fprintln(w, res.SQL)
	if !showCols || len(res.Columns) == 0 {
		return
	}

	width := len("column")
	for _, c := range res.Columns {
		if n := len(c.Name); n > width {
			width = n
		}
	}

	fmt.Fprintf(w, "%s | digest\n", padRight("column", width))
	fmt.Fprintf(w, "%s-+-%s\n", strings.Repeat("-", width), strings.Repeat("-", 32))
	for _, c := range res.Columns {
		fmt.Fprintf(w, "%s | %s\n", padRight(string(c.Name), width), c.Digest)
	}
	fmt.Fprintf(w, "(%d columns)\n", len(res.Columns))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".sqlmask_history"
	}
	return filepath.Join(home, ".sqlmask_history")
}
