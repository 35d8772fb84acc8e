package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CART_STORE", "")
	t.Setenv("SESSION_STORE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://dummyjson.com/products", cfg.Catalog.URL)
	assert.Equal(t, 6, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, []int{6, 10, 15, 20, 50}, cfg.Catalog.PageSizeOptions)
	assert.InDelta(t, 0.18, cfg.Cart.TaxRate, 1e-9)
	assert.Equal(t, BackendMemory, cfg.Cart.Store)
	assert.Equal(t, BackendMemory, cfg.Session.Store)
	assert.Equal(t, time.Duration(0), cfg.Catalog.FetchTimeout)
	assert.False(t, cfg.UsesRedis())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE_OPTIONS", "5, 25")
	t.Setenv("CART_TAX_RATE", "0.2")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("CATALOG_FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int{5, 25}, cfg.Catalog.PageSizeOptions)
	assert.InDelta(t, 0.2, cfg.Cart.TaxRate, 1e-9)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, 5*time.Second, cfg.Catalog.FetchTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Catalog: CatalogConfig{URL: "http://catalog", DefaultPageSize: 6, PageSizeOptions: []int{6}},
			Cart:    CartConfig{Store: BackendMemory, TaxRate: 0.18},
			Session: SessionConfig{Store: BackendMemory, CookieName: "session_id"},
			Redis:   RedisConfig{Host: "localhost"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT"},
		{name: "zero page size", mutate: func(c *Config) { c.Catalog.DefaultPageSize = 0 }, wantErr: "CATALOG_DEFAULT_PAGE_SIZE"},
		{name: "bad option", mutate: func(c *Config) { c.Catalog.PageSizeOptions = []int{6, -1} }, wantErr: "CATALOG_PAGE_SIZE_OPTIONS"},
		{name: "negative tax", mutate: func(c *Config) { c.Cart.TaxRate = -0.1 }, wantErr: "CART_TAX_RATE"},
		{name: "unknown cart store", mutate: func(c *Config) { c.Cart.Store = "disk" }, wantErr: "CART_STORE"},
		{name: "unknown db driver", mutate: func(c *Config) {
			c.Cart.Store = BackendDatabase
			c.Database.Driver = "mysql"
		}, wantErr: "DB_DRIVER"},
		{name: "sqlite database", mutate: func(c *Config) {
			c.Cart.Store = BackendDatabase
			c.Database.Driver = "sqlite"
		}},
		{name: "session database unsupported", mutate: func(c *Config) { c.Session.Store = BackendDatabase }, wantErr: "SESSION_STORE"},
		{name: "redis without host", mutate: func(c *Config) {
			c.Session.Store = BackendRedis
			c.Redis.Host = ""
		}, wantErr: "REDIS_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "/tmp/cart.db"}}
	assert.Equal(t, "/tmp/cart.db", cfg.GetDatabaseDSN())

	cfg.Database = DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
