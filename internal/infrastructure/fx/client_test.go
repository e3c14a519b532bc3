package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&Config{URL: srv.URL, TimeoutSec: 2}, 600000, nil)
}

func TestFetchRate_Успех(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{"USD":0.002,"RUB":0.18}}`))
	})

	got, ok := c.FetchRate(context.Background(), "usd")
	require.True(t, ok)
	// 600000 * 0.002: цена материализуется в валюте запроса
	assert.InEpsilon(t, 1200.0, got, 1e-9)
}

func TestFetchRate_НетКодаВОтвете(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"USD":0.002}}`))
	})

	got, ok := c.FetchRate(context.Background(), "AMD")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestFetchRate_Не200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, ok := c.FetchRate(context.Background(), "USD")
	assert.False(t, ok)
}

func TestFetchRate_КривойJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rates":`))
	})

	_, ok := c.FetchRate(context.Background(), "USD")
	assert.False(t, ok)
}

func TestFetchRate_НулевойКурс(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"USD":0}}`))
	})

	_, ok := c.FetchRate(context.Background(), "USD")
	assert.False(t, ok)
}

func TestFetchRate_СерверНедоступен(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := New(&Config{URL: srv.URL, TimeoutSec: 1}, 600000, nil)

	_, ok := c.FetchRate(context.Background(), "USD")
	assert.False(t, ok)
}
