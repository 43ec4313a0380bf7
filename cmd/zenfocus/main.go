package main

import (
	"os"

	"github.com/ayoisaiah/zenfocus/app"
	"github.com/ayoisaiah/zenfocus/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
