package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/barometric"
	"github.com/mklimuk/virtualdev/cmd/vdev/console"
	"github.com/mklimuk/virtualdev/device"
	"github.com/mklimuk/virtualdev/environment"
)

var watchCmd = cli.Command{
	Name:  "watch",
	Usage: "continuously watch simulated devices through callbacks",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "simulation profile file",
		},
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Usage:   "poll interval",
			Value:   2 * time.Second,
		},
	},
	Action: func(c *cli.Context) error {
		prof, err := loadProfile(c.String("profile"))
		if err != nil {
			return console.Exit(1, "profile error: %s", console.Red(err))
		}
		interval := c.Duration("interval")

		climate := environment.NewClimateNotifier(
			environment.NewSimClimateSensor(prof.TemperatureBehavior(), prof.HumidityBehavior()))
		climate.RegisterSampleCb(func(sample environment.Climate) {
			console.PInfof(console.PictoThermometer, "%s  %s %s",
				console.White(virtualdev.Temperature(sample.Temperature)),
				console.PictoHumidity, console.White(virtualdev.Humidity(sample.Humidity)))
		})
		climate.RegisterErrorCb(func() {
			console.Errorf("climate device returned an invalid sample")
		})
		defer climate.Close()

		baro := barometric.NewNotifier(barometric.NewSimPressureSensor(prof.PressureBehavior()))
		baro.RegisterSampleCb(func(sample barometric.Sample) {
			console.PInfof(console.PictoPressure, "%s  %s %s",
				console.White(virtualdev.Pressure(sample.Pressure)),
				console.PictoMountain, console.White(virtualdev.Altitude(sample.Altitude)))
		})
		baro.RegisterErrorCb(func() {
			console.Errorf("barometric device returned an invalid sample")
		})
		defer baro.Close()

		async := barometric.NewAsync(baro)

		drivers := device.NewRegistry()
		register := func(name string, drv device.Driver) error {
			if err := drivers.Register(name, drv); err != nil {
				return console.Exit(1, "driver registration error: %s", console.Red(err))
			}
			return nil
		}
		if err := register("baro0", async); err != nil {
			return err
		}
		if err := register("baro0-req", device.NewPoller(func(ctx context.Context) error {
			err := async.RequestSample()
			if errors.Is(err, virtualdev.ErrQueueFull) {
				slog.Debug("barometric request queue full, skipping tick")
				return nil
			}
			return err
		}, device.WithInterval(interval), device.WithKind(device.Barometer))); err != nil {
			return err
		}
		if err := register("climate0", device.NewPoller(func(ctx context.Context) error {
			_, err := climate.GetClimate(ctx)
			return err
		}, device.WithInterval(interval), device.WithKind(device.Climate))); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := drivers.StartAll(); err != nil {
			_ = drivers.StopAll()
			return console.Exit(1, "driver start error: %s", console.Red(err))
		}
		console.Infof("watching %v every %s, press ctrl-c to stop", drivers.Names(), interval)
		<-ctx.Done()
		if err := drivers.StopAll(); err != nil {
			return console.Exit(1, "driver stop error: %s", console.Red(err))
		}
		console.PInfof(console.PictoStop, "stopped")
		return nil
	},
}
