package main

import (
	"log"
	"os"

	"github.com/gitseed/gitseed/internal/art"
	"github.com/gitseed/gitseed/internal/cli"
	"github.com/gitseed/gitseed/internal/config"
	"github.com/gitseed/gitseed/internal/service"
	ucli "github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	app := cli.NewApp(runApp)
	app.Before = func(c *ucli.Context) error {
		if !c.Bool("json") {
			art.PrintLogo()
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runApp(c *ucli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return err
	}

	return service.NewOrchestrator(cfg).Run(c.Context)
}
