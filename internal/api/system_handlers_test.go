package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, resp).Status)
}

func TestGetInstance(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/instance")
	require.Equal(t, http.StatusOK, resp.Code)

	instance := decode[InstanceResponse](t, resp)
	assert.NotEmpty(t, instance.ID)
	assert.Equal(t, "Quill Test", instance.Name)
	assert.NotEmpty(t, instance.Version)

	// The identifier survives repeated reads.
	again := decode[InstanceResponse](t, ts.api.Get("/api/v1/instance"))
	assert.Equal(t, instance.ID, again.ID)
}
