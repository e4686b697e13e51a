package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitialize_Disabled(t *testing.T) {
	p, err := Initialize(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInitialize_ExportsSpans(t *testing.T) {
	got := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	p, err := Initialize(context.Background(), Config{
		ServiceName:  "movefit-test",
		OTLPEndpoint: strings.TrimPrefix(srv.URL, "http://"),
		Insecure:     true,
		Enabled:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	_, span := otel.Tracer("test").Start(context.Background(), "unit")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, "/v1/traces", <-got)
}
