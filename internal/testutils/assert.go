package testutils

import (
	"testing"
)

func MustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Ignore reports an error that must not fail the test, such as one returned by a deferred stop
func Ignore(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Logf("Error ignored: %v", err)
	}
}
