package testapp

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/birdcall/birdcall/cmd/birdcall/build"
)

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// StampBuild replaces the linked build metadata for the duration of a test
func StampBuild(tb testing.TB, mode, version, commit, builtAt string) {
	prevMode, prevVersion, prevCommit, prevTime := build.Mode, build.Version, build.Commit, build.Time
	build.Mode, build.Version, build.Commit, build.Time = mode, version, commit, builtAt
	tb.Cleanup(func() {
		build.Mode, build.Version, build.Commit, build.Time = prevMode, prevVersion, prevCommit, prevTime
	})
}
