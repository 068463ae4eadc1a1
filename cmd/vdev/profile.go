package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/virtualdev/cmd/vdev/console"
	"github.com/mklimuk/virtualdev/profile"
)

var profileCmd = cli.Command{
	Name:  "profile",
	Usage: "manage simulation profiles",
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "write a default simulation profile",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "vdev.yaml",
					Usage:   "profile file to write",
				},
			},
			Action: func(c *cli.Context) error {
				path := c.String("output")
				if _, err := os.Stat(path); err == nil {
					answer, err := console.YesOrNo("profile file exists, overwrite?")
					if err != nil {
						return console.Exit(1, "prompt error: %s", console.Red(err))
					}
					if answer != console.Yes {
						console.Infof("keeping existing %s", path)
						return nil
					}
				}
				if err := profile.Default().Save(path); err != nil {
					return console.Exit(1, "could not write profile: %s", console.Red(err))
				}
				console.PInfof(console.PictoPin, "profile written to %s", path)
				return nil
			},
		},
		{
			Name:  "check",
			Usage: "validate a simulation profile",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Required: true,
					Usage:    "profile file to validate",
				},
			},
			Action: func(c *cli.Context) error {
				prof, err := profile.Load(c.String("file"))
				if err != nil {
					return console.Exit(1, "invalid profile: %s", console.Red(err))
				}
				console.Infof("profile %s is valid", console.Bold(prof.Name))
				return nil
			},
		},
	},
}
