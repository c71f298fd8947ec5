package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "checkout-events", conf.Kafka.Topic)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
	assert.False(t, conf.Attachments.SkipUnresolved)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("ENV", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_CAPACITY", "10")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("ATTACHMENTS_SKIP_UNRESOLVED", "true")

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 10, conf.Cache.Capacity)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.True(t, conf.Attachments.SkipUnresolved)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{
			name:   "unknown env",
			mutate: func(c *config.Config) { c.Env = "dev" },
		},
		{
			name:   "missing postgres user",
			mutate: func(c *config.Config) { c.Postgres.User = "" },
		},
		{
			name:   "bad ssl mode",
			mutate: func(c *config.Config) { c.Postgres.SSLMode = "sometimes" },
		},
		{
			name:   "zero cache capacity",
			mutate: func(c *config.Config) { c.Cache.Capacity = 0 },
		},
		{
			name:   "assets url is not an url",
			mutate: func(c *config.Config) { c.Shipping.AssetsURL = "assets" },
		},
		{
			name: "kafka enabled without topic",
			mutate: func(c *config.Config) {
				c.Kafka.Enabled = true
				c.Kafka.Topic = ""
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_USER", "shop")
			t.Setenv("POSTGRES_PASSWORD", "secret")

			conf := config.New()
			tc.mutate(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
