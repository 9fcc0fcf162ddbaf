package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "mandoob",
			},
		},
		"combination": map[string]any{
			"maxPickupGapKm": 2.0,
			"pendingLimit":   50,
		},
		"extraction": map[string]any{
			"geocoder": map[string]any{
				"jitterDegrees": 0.05,
			},
		},
		"pubsub": map[string]any{
			"kafkaTopic": "order-events",
		},
		"secretKey": map[string]any{
			"access": "change-me",
		},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":                  "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":          "postgres.master.userName",
		"COMBINATION_MAXPICKUPGAPKM":        "combination.maxPickupGapKm",
		"COMBINATION_PENDINGLIMIT":          "combination.pendingLimit",
		"EXTRACTION_GEOCODER_JITTERDEGREES": "extraction.geocoder.jitterDegrees",
		"PUBSUB_KAFKATOPIC":                 "pubsub.kafkaTopic",
		"SECRETKEY_ACCESS":                  "secretKey.access",
		"REDIS_LOCKTTL":                     "redis.lockttl",
		"EXTRACTION_APPS_TALABAT_PICKUP":    "extraction.apps.talabat.pickup",
		"POSTGRES__MASTER__HOST":            "postgres.master.host",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Env.Env = "develop"
		cfg.HTTP.Port = 8000
		cfg.SecretKey.Access = "secret"
		cfg.applyDefaults()

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("reports every offending key", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Port = 70000
		cfg.SecretKey.Access = ""
		cfg.PubSub = &PubSubConfig{Provider: "sqs"}
		cfg.Combination.MaxPickupGapKm = -1

		err := cfg.Validate()

		assert.EqualError(t, err, "invalid config: combination.maxpickupgapkm (gte), http.port (max), pubsub.provider (oneof), secretkey.access (required)")
	})
}
