package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Init installs a global jaeger tracer, the returned closer flushes spans.
// With tracing disabled the opentracing no-op tracer stays in place.
func Init(cfg config, defaultService string) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	service := cfg.ServiceName()
	if service == "" {
		service = defaultService
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: false,
		},
	}
	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("service", service))
	return closer, nil
}
