package api_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/birdcall/birdcall/cmd/birdcall/application"
	"github.com/birdcall/birdcall/cmd/birdcall/components/api"
	"github.com/birdcall/birdcall/internal/rest/middleware"
	tu "github.com/birdcall/birdcall/internal/testutils"
	"github.com/birdcall/birdcall/internal/testutils/testapp"
)

func makeApp(cfg api.Config, extra ...fx.Option) *fx.App {
	opts := []fx.Option{
		fx.Provide(testapp.NoLogging),
		fx.Supply(application.ReleaseConfig{}),
		application.Module,
		fx.Supply(cfg),
		api.Module,
		fx.NopLogger,
		fx.Invoke(func(*api.Component) {}),
	}
	return fx.New(append(opts, extra...)...)
}

func TestAPI_Run(t *testing.T) {
	testapp.StampBuild(t, "production", "v1.0.0", "foobar", "2022-04-24T11:22:33Z")

	app := makeApp(api.Config{
		HTTPListenAddr:      "localhost:11337",
		HTTPReadTimeout:     time.Second,
		HTTPWriteTimeout:    time.Second,
		HTTPShutdownTimeout: time.Second,
	})
	require.NoError(t, app.Start(context.TODO()))
	defer func() {
		tu.Ignore(t, app.Stop(context.TODO()))
	}()

	resp, err := http.Get("http://localhost:11337/status/anything") // nolint: noctx
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(
		t,
		`{"status":"ok","mode":"production","version":"v1.0.0","git_sha":"foobar","build_time":"2022-04-24T11:22:33Z"}`,
		string(body),
	)
}

func TestAPI_Stop(t *testing.T) {
	app := makeApp(api.Config{
		HTTPListenAddr:      "localhost:11337",
		HTTPReadTimeout:     time.Second,
		HTTPWriteTimeout:    time.Second,
		HTTPShutdownTimeout: time.Second,
	})
	require.NoError(t, app.Start(context.TODO()))
	require.NoError(t, app.Stop(context.TODO()))

	_, err := http.Get("http://localhost:11337/status") // nolint: noctx,bodyclose
	assert.Error(t, err)
}

func TestAPI_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  api.Config
	}{
		{
			"missing address",
			api.Config{
				HTTPReadTimeout:     time.Second,
				HTTPWriteTimeout:    time.Second,
				HTTPShutdownTimeout: time.Second,
			},
		},
		{
			"malformed address",
			api.Config{
				HTTPListenAddr:      "localhost",
				HTTPReadTimeout:     time.Second,
				HTTPWriteTimeout:    time.Second,
				HTTPShutdownTimeout: time.Second,
			},
		},
		{
			"zero timeout",
			api.Config{
				HTTPListenAddr:      "localhost:11337",
				HTTPReadTimeout:     time.Second,
				HTTPShutdownTimeout: time.Second,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := makeApp(tt.cfg)
			err := app.Err()
			require.Error(t, err)
			assert.ErrorContains(t, err, "api: invalid config")
		})
	}
}
