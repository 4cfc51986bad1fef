package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"FundPicker/internal/bot"
	"FundPicker/internal/notifier"
	"FundPicker/internal/session"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive recommendation session in the terminal",
	Long: `Repl reads commands from stdin, one per line, and prints the replies.

Commands are the bot's commands without the leading slash:
  amount 9000
  risk low
  period 5
  submit
  next / prev / clear / quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	out, err := terminalOut(os.Stdout)
	if err != nil {
		return err
	}

	store := session.NewStore(a.catalog, a.engine, 0, a.log)
	h := bot.NewHandler(store, a.catalog, a.engine, notifier.MarkdownFormatter{Currency: a.cfg.Display.Currency}, nil, a.log)
	id := uuid.NewString()
	a.log.Debug().Str("session", id).Msg("repl session started")

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		if err := out.Send(h.HandleCommand(id, "help")); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Fprint(os.Stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		}
		if err := out.Send(h.HandleCommand(id, line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
