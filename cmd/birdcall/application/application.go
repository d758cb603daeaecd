package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/birdcall/birdcall/cmd/birdcall/build"
	"github.com/birdcall/birdcall/cmd/birdcall/components/exporter"
	"github.com/birdcall/birdcall/cmd/birdcall/logging"
	"github.com/birdcall/birdcall/internal/core/entities/release"
	"github.com/birdcall/birdcall/internal/metrics"
	"github.com/birdcall/birdcall/internal/validation"
)

// ReleaseConfig carries the startup overrides applied on top of the linked build metadata
type ReleaseConfig struct {
	Mode string
}

func provideRelease(cfg ReleaseConfig) release.Info {
	return build.Release(cfg.Mode)
}

func provideMetrics(info release.Info) *metrics.Collector {
	collector := metrics.New()
	collector.SetBuildInfo(info)
	return collector
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(provideRelease),
	fx.Provide(provideMetrics),
)
