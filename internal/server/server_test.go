package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/internal/config"
	"github.com/katalvlaran/lplab/internal/server"
)

const (
	textbookJSON = `{
  "goal": "minimize",
  "objective": ["-10", "5", "7", "-3"],
  "constraints": [["-1", "-2", "3", "3"], ["1", "1", "7", "2"], ["2", "2", "8", "1"]],
  "rhs": ["3/2", "7/2", "4"]
}`
	factoryJSON = `{
  "goal": "maximize",
  "form": "inequality",
  "objective": [3, 5],
  "constraints": [[1, 0], [0, 2], [3, 2]],
  "rhs": [4, 12, 18]
}`
)

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}

	return rec.Code, out
}

func TestHealth(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()
	code, out := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", out["status"])
}

func TestSolve(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	code, out := do(t, h, http.MethodPost, "/solve?verify=true", textbookJSON)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "optimal", out["type"])
	require.Equal(t, "-18", out["value"])
	require.Equal(t, []any{"3/2", "0", "0", "1"}, out["point"])
	require.Equal(t, true, out["verified"])

	code, out = do(t, h, http.MethodPost, "/solve?goal=max", textbookJSON)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "maximize", out["goal"])
	require.Equal(t, "7/2", out["value"])

	code, out = do(t, h, http.MethodPost, "/solve", `{"objective": [1]}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, out["error"], "constraints")

	code, _ = do(t, h, http.MethodPost, "/solve?field=complex", textbookJSON)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestGraph(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	code, out := do(t, h, http.MethodPost, "/graph", factoryJSON)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "optimal", out["type"])
	plot := out["plot"].(map[string]any)
	require.Equal(t, "36", plot["extreme_value"])
	require.Equal(t, map[string]any{"x": "2", "y": "6"}, plot["extreme_vertex"])
	require.Len(t, plot["vertices"], 5)

	code, _ = do(t, h, http.MethodPost, "/graph", textbookJSON)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestRationalize(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	code, out := do(t, h, http.MethodPost, "/rationalize", `{"x": 3.14159265358979, "max_denominator": 1000}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "355/113", out["value"])

	code, _ = do(t, h, http.MethodPost, "/rationalize", `{}`)
	require.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, h, http.MethodPost, "/rationalize", `{"x": 1e300}`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestSessions(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	code, out := do(t, h, http.MethodPost, "/sessions", textbookJSON)
	require.Equal(t, http.StatusCreated, code)
	id := out["id"].(string)
	state := out["state"].(map[string]any)
	require.Equal(t, true, state["has_next"])
	require.Equal(t, map[string]any{"row": float64(0), "col": float64(2)}, state["hint"])

	base := "/sessions/" + id

	code, _ = do(t, h, http.MethodGet, base+"/solution", "")
	require.Equal(t, http.StatusConflict, code)

	code, _ = do(t, h, http.MethodPost, base+"/previous", "")
	require.Equal(t, http.StatusConflict, code)

	code, _ = do(t, h, http.MethodPost, base+"/next", `{"row": 7, "col": 0}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, out = do(t, h, http.MethodPost, base+"/next", `{"row": 0, "col": 2}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(1), out["state"].(map[string]any)["iterations"])

	for i := 0; i < 10; i++ {
		code, out = do(t, h, http.MethodPost, base+"/next", "")
		if code != http.StatusOK {
			break
		}
		if out["state"].(map[string]any)["has_next"] == false {
			break
		}
	}
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "optimal", out["state"].(map[string]any)["outcome"])

	code, out = do(t, h, http.MethodGet, base+"/solution", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "-18", out["value"])

	code, _ = do(t, h, http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusConflict, code)

	code, out = do(t, h, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(0), out["state"].(map[string]any)["iterations"])

	code, _ = do(t, h, http.MethodDelete, base, "")
	require.Equal(t, http.StatusNoContent, code)
	code, _ = do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodGet, "/sessions/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, code)
}
