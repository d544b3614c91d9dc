package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	conf, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, config.DriverJSON, conf.Storage.Driver)
	assert.Equal(t, "exact", conf.Delivery.Policy)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 10*time.Minute, conf.Cache.TTL)
	assert.NoError(t, conf.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DELIVERY_POLICY", "on_or_after")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_TTL", "30s")

	conf, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, config.DriverSQLite, conf.Storage.Driver)
	assert.Equal(t, "on_or_after", conf.Delivery.Policy)
	assert.True(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.NoError(t, conf.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "redis"}, wantErr: true},
		{name: "unknown policy", env: map[string]string{"DELIVERY_POLICY": "whenever"}, wantErr: true},
		{name: "unknown env", env: map[string]string{"ENV": "dev"}, wantErr: true},
		{name: "postgres without credentials", env: map[string]string{"STORAGE_DRIVER": "postgres"}, wantErr: true},
		{
			name: "postgres with credentials",
			env: map[string]string{
				"STORAGE_DRIVER":    "postgres",
				"POSTGRES_USER":     "logistics",
				"POSTGRES_PASSWORD": "secret",
			},
		},
		{name: "memory driver", env: map[string]string{"STORAGE_DRIVER": "memory"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			conf, err := config.New()
			require.NoError(t, err)

			err = conf.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
