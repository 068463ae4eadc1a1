package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/cmd/vdev/console"
	"github.com/mklimuk/virtualdev/environment"
	"github.com/mklimuk/virtualdev/profile"
)

var climateCmd = cli.Command{
	Name:    "climate",
	Aliases: []string{"temp"},
	Usage:   "read temperature and humidity from a simulated device",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "simulation profile file",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		prof, err := loadProfile(c.String("profile"))
		if err != nil {
			return console.Exit(1, "profile error: %s", console.Red(err))
		}
		sensor := environment.NewSimClimateSensor(prof.TemperatureBehavior(), prof.HumidityBehavior())
		climate, err := environment.NewClimateNotifier(sensor).GetClimate(ctx)
		if err != nil {
			return console.Exit(1, "error getting climate read: %s", console.Red(err))
		}
		if console.IsVerbose(ctx) {
			console.Infof("profile %s, raw temperature %d, raw humidity %d",
				prof.Name, int32(climate.Temperature), int8(climate.Humidity))
		}
		console.Printf("%s  %s\n%s %s\n",
			console.PictoThermometer, console.White(virtualdev.Temperature(climate.Temperature)),
			console.PictoHumidity, console.White(virtualdev.Humidity(climate.Humidity)))
		return nil
	},
}

func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.Load(path)
}
