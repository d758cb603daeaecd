package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/birdcall/birdcall/cmd/birdcall/build"
	"github.com/birdcall/birdcall/internal/core/entities/release"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"          help:"Sets the minimum severity level for log messages"`     // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json,file" help:"Specifies the format for log output"`                  // nolint:lll
	LogFile   string `help:"Path to the rotated log file used by the file output"`

	Mode string `env:"BIRDCALL_MODE" help:"Overrides the mode the binary was built with (e.g. production, development)"`

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll
}

// FormatVersion renders the build in a human-readable form
func FormatVersion(info release.Info) string {
	return fmt.Sprintf(
		"Version: %s (%s) built at %s, mode %s",
		info.Version, info.Commit, info.BuildTime, info.Mode,
	)
}

type VersionCmd struct{}

// Run reports the same mode the status endpoint would, --mode included
func (v *VersionCmd) Run(globals *Globals) error {
	fmt.Println(FormatVersion(build.Release(globals.Mode))) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:""`
}
