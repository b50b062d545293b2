package cli

import (
	"github.com/go-barry/showcase"
	"github.com/go-barry/showcase/core"

	"github.com/urfave/cli/v2"
)

const defaultPort = 8080

func portFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "port to listen on",
		Value:   defaultPort,
		EnvVars: []string{"SHOWCASE_PORT"},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the site config file",
		Value:   core.ConfigFile,
	}
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start the showcase in dev mode (no caching, live reload)",
	Flags: []cli.Flag{portFlag(), configFlag()},
	Action: func(c *cli.Context) error {
		showcase.Start(showcase.RuntimeConfig{
			Env:         "dev",
			EnableCache: false,
			Port:        c.Int("port"),
			ConfigPath:  c.String("config"),
		})
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start the showcase in production mode (caching on by default)",
	Flags: []cli.Flag{
		portFlag(),
		configFlag(),
		&cli.BoolFlag{Name: "no-cache", Usage: "serve every page fresh"},
	},
	Action: func(c *cli.Context) error {
		showcase.Start(showcase.RuntimeConfig{
			Env:         "prod",
			EnableCache: !c.Bool("no-cache"),
			Port:        c.Int("port"),
			ConfigPath:  c.String("config"),
		})
		return nil
	},
}
