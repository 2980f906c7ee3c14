package telemetry

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitOtel_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{ServiceName: "tic-tac-toe"})

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
