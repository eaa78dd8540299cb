package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecretAndConnectionString(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing both", env: map[string]string{}},
		{name: "missing secret", env: map[string]string{"DATABASE_URL": "file::memory:"}},
		{name: "missing database url", env: map[string]string{"JWT_SECRET": "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.StrictOrderTransitions)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ListsAndOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092;kafka-2:9092")
	t.Setenv("ORDER_STRICT_TRANSITIONS", "true")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.True(t, cfg.StrictOrderTransitions)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}

func TestValidate(t *testing.T) {
	base := Config{
		GinMode:             "release",
		DBDriver:            "mysql",
		DatabaseURL:         "user:pass@tcp(localhost:3306)/food",
		JWTSecret:           "s3cret",
		JWTTTL:              time.Hour,
		RateLimitRPS:        1,
		RateLimitBurst:      1,
		AuthRateLimitPerMin: 1,
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.DBDriver = "mongodb"
	assert.Error(t, bad.Validate())

	bad = base
	bad.JWTSecret = "   "
	assert.Error(t, bad.Validate())

	bad = base
	bad.RateLimitBurst = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.GinMode = "production"
	assert.Error(t, bad.Validate())
}
