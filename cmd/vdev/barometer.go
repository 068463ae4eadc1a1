package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/barometric"
	"github.com/mklimuk/virtualdev/cmd/vdev/console"
	"github.com/mklimuk/virtualdev/fixedpoint"
)

var barometerCmd = cli.Command{
	Name:    "barometer",
	Aliases: []string{"baro"},
	Usage:   "read pressure and altitude from a simulated device",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "simulation profile file",
		},
		&cli.Float64Flag{
			Name:  "slp",
			Usage: "sea level pressure in hPa used for altitude correction",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		prof, err := loadProfile(c.String("profile"))
		if err != nil {
			return console.Exit(1, "profile error: %s", console.Red(err))
		}
		notifier := barometric.NewNotifier(barometric.NewSimPressureSensor(prof.PressureBehavior()))
		if slp := c.Float64("slp"); slp > 0 {
			notifier.SetSeaLevelPressure(fixedpoint.UQ22x10FromFloat(slp))
		}

		var sample barometric.Sample
		capture := func(s barometric.Sample) { sample = s }
		notifier.RegisterSampleCb(capture)
		defer notifier.UnregisterSampleCb(capture)

		if _, err := notifier.ReadPressure(ctx); err != nil {
			return console.Exit(1, "error getting barometric read: %s", console.Red(err))
		}
		if console.IsVerbose(ctx) {
			console.Infof("profile %s, raw pressure %d, raw altitude %d",
				prof.Name, uint32(sample.Pressure), int32(sample.Altitude))
		}
		console.Printf("%s %s\n%s %s\n",
			console.PictoPressure, console.White(virtualdev.Pressure(sample.Pressure)),
			console.PictoMountain, console.White(virtualdev.Altitude(sample.Altitude)))
		return nil
	},
}
