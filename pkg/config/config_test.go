package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"ENV", "PORT", "API_PREFIX", "MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT", "ALLOWED_ORIGINS", "AUTH_TOKEN_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "admissions_crm", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb+srv://cluster.example.net")
	t.Setenv("STATS_CACHE_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", " https://crm.example.com , ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "mongodb+srv://cluster.example.net", cfg.Mongo.URI)
	assert.Equal(t, 30*time.Second, cfg.Cache.StatsTTL)
	assert.Equal(t, []string{"https://crm.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:   EnvDevelopment,
			Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "crm", MaxPoolSize: 10},
			Auth:  AuthConfig{TokenSecret: defaultTokenSecret},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Mongo.URI = "postgres://localhost"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Env = EnvProduction
	assert.Error(t, cfg.Validate())

	cfg.Auth.TokenSecret = "rotated"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Mongo.MinPoolSize = 20
	assert.Error(t, cfg.Validate())
}
