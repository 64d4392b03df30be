package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"levelzero/internal/platform/config"
	"levelzero/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), config.Telemetry{Enabled: true, ServiceName: "test"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	cfg := config.Telemetry{Endpoint: "http://localhost:4318", ServiceName: "test"}

	shutdown, err := otel.Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	cfg := config.Telemetry{Endpoint: "http://192.0.2.1:4318", Enabled: true, ServiceName: "test"}

	shutdown, err := otel.Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
