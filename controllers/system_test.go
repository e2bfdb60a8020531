package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHello(t *testing.T) {
	sc := NewSystemController(nil)

	for _, handler := range []http.HandlerFunc{sc.Root, sc.Hello} {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["message"])
	}
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	sc := NewSystemController(nil)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	sc.Test(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var diag diagnostics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &diag))
	assert.Equal(t, "running", diag.Backend)
	assert.Equal(t, "not available", diag.Database)
	assert.Equal(t, "not connected", diag.ConnectionStatus)
	assert.Empty(t, diag.Collections)
}

func TestDiagnosticsEnvFlags(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "")

	sc := NewSystemController(nil)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	sc.Test(rec, req)

	var diag diagnostics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &diag))
	assert.Equal(t, "set", diag.DatabaseURL)
	assert.Equal(t, "not set", diag.DatabaseName)
}
