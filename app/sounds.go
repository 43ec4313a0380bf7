package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/ui"
	"github.com/ayoisaiah/zenfocus/sound"
)

// soundsAction lists every track that can be used as an ambient or alert
// sound.
func soundsAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	catalogue, err := sound.NewCatalogue(e.paths.SoundsDir, e.cfg.Sound.Tracks)
	if err != nil {
		return err
	}

	rows := [][]string{{"NAME", "KIND", "SOURCE"}}

	for _, t := range catalogue.Tracks() {
		name := t.Name
		if name == e.cfg.Sound.Ambient || name == e.cfg.Sound.Alert {
			name = ui.Highlight(name)
		}

		rows = append(rows, []string{name, string(t.Kind), t.Source})
	}

	ui.PrintTable(rows, config.Stdout)

	return nil
}
