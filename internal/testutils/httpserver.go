package testutils

import (
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/birdcall/birdcall/cmd/birdcall/application"
	"github.com/birdcall/birdcall/cmd/birdcall/components/api"
	"github.com/birdcall/birdcall/internal/metrics"
	"github.com/birdcall/birdcall/internal/testutils/testapp"
)

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Supply(api.Config{
			HTTPListenAddr:      "localhost:3000",
			HTTPReadTimeout:     time.Second,
			HTTPWriteTimeout:    time.Second,
			HTTPShutdownTimeout: time.Second,
		}),
		fx.Supply(application.ReleaseConfig{}),
		fx.Provide(testapp.NoLogging),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop() // nolint: errcheck
		defer ts.Close()
	}
}

func PrepareTestServerWithMetrics(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, *metrics.Collector, func()) {
	var collector *metrics.Collector
	extra = append(extra, fx.Populate(&collector))
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, collector, cleanup
}
