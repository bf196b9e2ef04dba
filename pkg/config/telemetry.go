package config

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/elite100/visualizer-go/version"
)

type Telemetry struct {
	provider *sdkmetric.MeterProvider
}

func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = t.provider.Shutdown(ctx)
}

// SetupTelemetry initializes the global meter provider. Metrics are
// exported via OTLP when TelemetryEndpoint is set, otherwise to stdout.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	var (
		exporter sdkmetric.Exporter
		err      error
	)
	if TelemetryEndpoint != "" {
		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(TelemetryEndpoint),
			otlpmetricgrpc.WithInsecure())
	} else {
		exporter, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("could not create metric exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", "elite100-visualizer"),
		attribute.String("service.version", version.Version),
	)
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(15*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)
	return &Telemetry{provider: provider}, nil
}
