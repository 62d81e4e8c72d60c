//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"commission-tracker/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.POST("/api/purchase/flows/:id/service", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		middleware.SetFlowID(c, id)
		c.Status(http.StatusOK)
	})
	r.GET("/api/catalog", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRequestLogger_FlowRouteCarriesFlowID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	flowID := uuid.New()

	req := nethttptest.NewRequest(http.MethodPost, "/api/purchase/flows/"+flowID.String()+"/service", nil)
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)

	entry := lastLine(t, &buf)
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, flowID.String(), entry["flow_id"])
	assert.Equal(t, "/api/purchase/flows/:id/service", entry["route"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), entry["request_id"])
}

func TestRequestLogger_UnparsedFlowIDIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	req := nethttptest.NewRequest(http.MethodPost, "/api/purchase/flows/not-a-uuid/service", nil)
	r.ServeHTTP(nethttptest.NewRecorder(), req)

	entry := lastLine(t, &buf)
	assert.NotContains(t, entry, "flow_id")
	assert.Equal(t, "WARN", entry["level"])
}

func TestRequestLogger_RequestID(t *testing.T) {
	t.Run("incoming id is kept", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := nethttptest.NewRequest(http.MethodGet, "/api/catalog", nil)
		req.Header.Set(middleware.RequestIDHeader, "edge-42")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "edge-42", rec.Header().Get(middleware.RequestIDHeader))
		entry := lastLine(t, &buf)
		assert.Equal(t, "edge-42", entry["request_id"])
		assert.NotContains(t, entry, "flow_id")
	})

	t.Run("missing id is generated", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/api/catalog", nil))

		_, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err)
	})
}
