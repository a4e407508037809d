package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meemoo/sidecar-creator/pkg/sidecar"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/api"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/transfer/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (http.Handler, *memory.Sink) {
	t.Helper()

	sink := memory.New()
	svc, err := sidecar.New(
		sidecar.WithSink(sink),
		sidecar.WithDestinationDir("/incoming"),
	)
	require.NoError(t, err)

	return api.NewNotificationHandler(svc).Routes(), sink
}

const notificationBody = `{
  "Records": [
    {
      "s3": {
        "bucket": {"name": "MAM_HighresVideo", "metadata": {"tenant": "VRT"}},
        "domain": {"name": "s3"},
        "object": {"key": "essence.MXF", "metadata": {"md5sum": "abc123"}}
      }
    }
  ]
}`

func TestHandleNotification(t *testing.T) {
	handler, sink := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(notificationBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "accepted")

	content, ok := sink.Get("/incoming", "essence.MXF.xml")
	require.True(t, ok)
	assert.Contains(t, string(content), "abc123")
}

func TestHandleNotificationBadBody(t *testing.T) {
	handler, sink := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, sink.Len())
}

func TestHandleNotificationPipelineFailure(t *testing.T) {
	handler, sink := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Records": []}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, sink.Len())
}
