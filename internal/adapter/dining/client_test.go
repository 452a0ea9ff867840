package dining_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/campus-data-sync/internal/adapter/dining"
)

func TestClient_Menu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"meal": "Breakfast", "course": "", "name": "Eggs"},
			{"meal": "Lunch", "course": "Soup", "name": "Tomato", "description": "With basil"}
		]`))
	}))
	defer srv.Close()

	client := dining.NewClient(5*time.Second, 0)
	items, err := client.Menu(context.Background(), srv.URL)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Breakfast", items[0].Meal)
	assert.Equal(t, "With basil", items[1].Description)
}

func TestClient_MenuError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := dining.NewClient(5*time.Second, 0)
	_, err := client.Menu(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
