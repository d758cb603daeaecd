// Package build holds the metadata stamped into the binary at link time, e.g.:
//
//	go build -ldflags "-X github.com/birdcall/birdcall/cmd/birdcall/build.Version=v1.2.3 \
//	  -X github.com/birdcall/birdcall/cmd/birdcall/build.Commit=$(git rev-parse HEAD) \
//	  -X github.com/birdcall/birdcall/cmd/birdcall/build.Time=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/birdcall/birdcall/cmd/birdcall/build.Mode=production"
package build

import (
	"github.com/birdcall/birdcall/internal/core/entities/release"
)

var (
	Version = "development"
	Commit  = "unknown"
	Time    = "unknown"
	Mode    = "development"
)

// Release combines the linked metadata with an optional startup override of the mode
func Release(modeOverride string) release.Info {
	return release.New(Mode, Version, Commit, Time).WithMode(modeOverride)
}
