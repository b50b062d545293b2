package main

import (
	"log"
	"os"

	showcasecli "github.com/go-barry/showcase/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "showcase",
		Usage: "Serve the responsive template demo site",
		Commands: []*clilib.Command{
			showcasecli.InitCommand,
			showcasecli.DevCommand,
			showcasecli.ProdCommand,
			showcasecli.CleanCommand,
			showcasecli.CheckCommand,
			showcasecli.InfoCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
