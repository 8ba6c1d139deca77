package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"biztime-backend/internal/routes"
	"biztime-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type api struct {
	t  *testing.T
	db *gorm.DB
	r  *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	db := testutil.OpenDB(t)
	return &api{t: t, db: db, r: routes.NewRouter(db, routes.Options{Quiet: true})}
}

// do sends a request and decodes the JSON response body.
func (a *api) do(method, path, body string) (int, map[string]any) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w.Code, out
}

func obj(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func list(t *testing.T, v any) []any {
	t.Helper()
	l, ok := v.([]any)
	require.True(t, ok, "expected array, got %T", v)
	return l
}

func errorOf(t *testing.T, body map[string]any) (string, float64) {
	t.Helper()
	e := obj(t, body["error"])
	return e["message"].(string), e["status"].(float64)
}

func today() string { return time.Now().UTC().Format("2006-01-02") }
