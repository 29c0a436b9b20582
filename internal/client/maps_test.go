package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapsClient_AddressFor(t *testing.T) {
	t.Run("resolved address", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/maps", r.URL.Path)
			assert.Equal(t, "40.7", r.URL.Query().Get("lat"))
			assert.Equal(t, "-74", r.URL.Query().Get("lon"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"address":"350 5th Ave","city":"New York","state":"NY","zip":"10118"}`))
		}))
		defer srv.Close()

		client := NewMapsClient(srv.URL)
		addr, err := client.AddressFor(context.Background(), 40.7, -74.0)

		require.NoError(t, err)
		require.NotNil(t, addr)
		assert.Equal(t, "350 5th Ave", addr.Address)
		assert.Equal(t, "New York", addr.City)
		assert.Equal(t, "NY", addr.State)
		assert.Equal(t, "10118", addr.Zip)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewMapsClient(srv.URL)
		_, err := client.AddressFor(context.Background(), 40.7, -74.0)

		assert.Error(t, err)
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewMapsClient(srv.URL)
		_, err := client.AddressFor(context.Background(), 40.7, -74.0)

		assert.Error(t, err)
	})
}
