package ambient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAndGet(t *testing.T) {
	ctx := With(context.Background(), "tenant", 42)

	v, ok := Get(ctx, "tenant")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = Get(ctx, "missing")
	assert.False(t, ok)

	//nolint:staticcheck // a nil context must be tolerated
	_, ok = Get(nil, "tenant")
	assert.False(t, ok)
}

func TestTxID(t *testing.T) {
	assert.Equal(t, "", TxID(context.Background()))

	ctx := WithTxID(context.Background(), "T123")
	assert.Equal(t, "T123", TxID(ctx))

	v, ok := Get(ctx, TxIDKey)
	require.True(t, ok)
	assert.Equal(t, "T123", v)

	inner := WithTxID(ctx, "T456")
	assert.Equal(t, "T456", TxID(inner))
	assert.Equal(t, "T123", TxID(ctx), "parent context must be unchanged")
}

func TestNewTxID(t *testing.T) {
	a, b := NewTxID(), NewTxID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(TxID(r.Context())))
	})))
	t.Cleanup(srv.Close)
	return srv
}

func TestMiddleware_ReusesHeader(t *testing.T) {
	srv := newEchoServer(t)

	resp, err := resty.New().R().
		SetHeader(TxIDHeader, "this is a transaction id").
		Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "this is a transaction id", resp.String())
	assert.Equal(t, "this is a transaction id", resp.Header().Get(TxIDHeader))
}

func TestMiddleware_GeneratesID(t *testing.T) {
	srv := newEchoServer(t)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)

	id := resp.String()
	require.NotEmpty(t, id)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, resp.Header().Get(TxIDHeader))
}
