package outbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaReturnsExistingID(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, schemaRegistryContentType, r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "JSON", body["schemaType"])

		_, _ = w.Write([]byte(`{"subject":"gym_events-value","id":17,"version":1}`))
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL+"/", server.Client())
	id, err := client.EnsureSchema(context.Background(), "gym_events-value", gymCreatedSchema)
	require.NoError(t, err)
	require.Equal(t, 17, id)
	require.Equal(t, []string{"/subjects/gym_events-value"}, paths)
}

func TestEnsureSchemaRegistersUnknownSchema(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/subjects/check_in_events-value" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error_code":40403,"message":"Schema not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":23}`))
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL, server.Client())
	id, err := client.EnsureSchema(context.Background(), "check_in_events-value", checkInCreatedSchema)
	require.NoError(t, err)
	require.Equal(t, 23, id)
	require.Equal(t, []string{"/subjects/check_in_events-value", "/subjects/check_in_events-value/versions"}, paths)
}

func TestEnsureSchemaSurfacesRegistryErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error_code":42201,"message":"Invalid schema"}`))
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL, server.Client())
	_, err := client.EnsureSchema(context.Background(), "gym_events-value", "{")
	require.ErrorContains(t, err, "schema registry error (422)")
}
