package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/birdcall/birdcall/cmd/birdcall/application"
	"github.com/birdcall/birdcall/cmd/birdcall/commander"
	"github.com/birdcall/birdcall/cmd/birdcall/components/api"
	"github.com/birdcall/birdcall/cmd/birdcall/components/exporter"
	"github.com/birdcall/birdcall/cmd/birdcall/logging"
)

// @title        Birdcall API
// @version      1.0
// @description  Service status and build metadata
// @BasePath     /
func main() {
	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("birdcall"),
		kong.Description("Birdcall status service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		application.Module,
		fx.Supply(application.ReleaseConfig{
			Mode: cli.Globals.Mode,
		}),
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
			LogFile:   cli.Globals.LogFile,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
