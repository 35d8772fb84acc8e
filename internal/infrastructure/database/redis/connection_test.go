package redis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/session"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestClient_JSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	require.NoError(t, client.SetJSON(ctx, "cart:session:abc", document{Name: "widget", Count: 2}, 0))

	raw, err := mr.Get("cart:session:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"widget","count":2}`, raw)

	var got document
	require.NoError(t, client.GetJSON(ctx, "cart:session:abc", &got))
	assert.Equal(t, document{Name: "widget", Count: 2}, got)
}

func TestClient_MissingKey(t *testing.T) {
	client, _ := newTestClient(t)

	var got document
	err := client.GetJSON(context.Background(), "nope", &got)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestClient_TTLAndDelete(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	require.NoError(t, client.SetJSON(ctx, "k", document{Name: "a"}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	var got document
	assert.ErrorIs(t, client.GetJSON(ctx, "k", &got), session.ErrNotFound)

	require.NoError(t, client.SetJSON(ctx, "k", document{Name: "b"}, 0))
	require.NoError(t, client.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
	require.NoError(t, client.Delete(ctx, "k"))
}

func TestClient_CorruptValue(t *testing.T) {
	client, mr := newTestClient(t)
	require.NoError(t, mr.Set("k", "not json"))

	var got document
	err := client.GetJSON(context.Background(), "k", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}

func TestClient_Ping(t *testing.T) {
	client, mr := newTestClient(t)
	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}

func TestNewConnection(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cfg := &config.Config{Redis: config.RedisConfig{Host: host, Port: port, PoolSize: 2}}
	client, err := NewConnection(cfg, logger.Discard())
	require.NoError(t, err)
	defer client.Close()
	assert.NotNil(t, client.GetClient())

	mr.Close()
	_, err = NewConnection(cfg, logger.Discard())
	assert.Error(t, err)
}
