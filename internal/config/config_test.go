package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("AUTH_PROVIDER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, StoreFirestore, cfg.Store.Driver)
	assert.Equal(t, AuthFirebase, cfg.Auth.Provider)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProd())
}

func TestLoad_SQLStoreWithOrigins(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQL")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://events.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQL, cfg.Store.Driver)
	assert.Equal(t, "file::memory:", cfg.Store.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://events.example.com"}, cfg.CORSOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "sql")
	t.Setenv("AUTH_PROVIDER", "jwt")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_ProdFirestoreRequiresProject(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORE_DRIVER", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := Load()
	assert.ErrorContains(t, err, "FIREBASE_PROJECT_ID")
}

func TestLoadMailSecrets(t *testing.T) {
	t.Setenv("SG_API_KEY", " SG.key ")
	t.Setenv("SG_FROM_EMAIL", "")

	s, err := LoadMailSecrets()
	require.NoError(t, err)
	assert.Equal(t, "SG.key", s.APIKey)
	assert.Empty(t, s.From)
}
