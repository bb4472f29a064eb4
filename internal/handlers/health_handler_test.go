package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andriamanitra/portfolio-api/internal/config"
)

func TestRoot(t *testing.T) {
	r := newTestRouter(new(mockGateway), nil)

	w := performRequest(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body.Bytes())
	assert.Equal(t, "Portfolio/CV API running", body["message"])
}

func TestDatabaseDiagnosticUnavailable(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Available").Return(false)

	r := newTestRouter(gw, &config.Config{})
	w := performRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body.Bytes())
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "not available", body["database"])
	assert.Equal(t, "not set", body["database_url"])
	assert.Equal(t, "not set", body["database_name"])
	assert.Equal(t, "not connected", body["connection_status"])
	assert.Empty(t, body["collections"])
}

func TestDatabaseDiagnosticConnected(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Available").Return(true)
	gw.On("Collections", mock.Anything).Return([]string{"cv", "project"}, nil)

	cfg := &config.Config{MongoURI: "mongodb://localhost", DatabaseName: "portfolio"}
	r := newTestRouter(gw, cfg)
	w := performRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body.Bytes())
	assert.Equal(t, "connected and working", body["database"])
	assert.Equal(t, "set", body["database_url"])
	assert.Equal(t, "set", body["database_name"])
	assert.Equal(t, "connected", body["connection_status"])
	assert.Equal(t, []interface{}{"cv", "project"}, body["collections"])
}

func TestDatabaseDiagnosticIntrospectionError(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Available").Return(true)
	gw.On("Collections", mock.Anything).Return(nil, errors.New("listCollections timed out"))

	cfg := &config.Config{MongoURI: "mongodb://localhost", DatabaseName: "portfolio"}
	r := newTestRouter(gw, cfg)
	w := performRequest(r, http.MethodGet, "/test", "")

	// introspection failure downgrades to a status string, never an error
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body.Bytes())
	assert.Contains(t, body["database"], "connected but error")
}
