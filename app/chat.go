package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/chat"
	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/ui"
)

// chatAction answers a single message given as arguments, or holds a
// conversation on stdin until an empty line or EOF.
func chatAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	client, err := chat.NewClient(chat.Options{
		Endpoint:     e.cfg.Chat.Endpoint,
		APIKey:       e.cfg.Chat.APIKey,
		Bearer:       e.cfg.Chat.Bearer,
		SystemPrompt: e.cfg.Chat.SystemPrompt,
		MaxTokens:    e.cfg.Chat.MaxTokens,
		Temperature:  e.cfg.Chat.Temperature,
		Timeout:      e.cfg.Chat.Timeout,
	})
	if err != nil {
		return err
	}

	s := chat.NewSession(client, e.log)

	if ctx.Args().Present() {
		fmt.Fprintln(config.Stdout, s.Send(ctx.Context, strings.Join(ctx.Args().Slice(), " ")))
		return nil
	}

	fmt.Fprintln(config.Stdout, ui.Green(chat.Greeting))

	scanner := bufio.NewScanner(config.Stdin)

	for {
		fmt.Fprint(config.Stdout, ui.Blue("> "))

		if !scanner.Scan() {
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			return nil
		}

		spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone().Start("Thinking...")
		reply := s.Send(ctx.Context, text)
		_ = spinner.Stop()

		fmt.Fprintln(config.Stdout, ui.Green(reply))
	}
}
