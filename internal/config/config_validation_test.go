package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign"
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_DefaultsWithoutSignKey(t *testing.T) {
	err := defaultConfig().validate()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "zero ttl", mutate: func(c *StructuredConfig) { c.App.OTPTTL = 0 }, want: ErrInvalidAppConfigs},
		{name: "unknown mode", mutate: func(c *StructuredConfig) { c.App.VerifyOTPMode = "lenient" }, want: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, want: ErrInvalidServerConfigs},
		{name: "test share one", mutate: func(c *StructuredConfig) { c.Predict.TestShare = 1 }, want: ErrInvalidPredictConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	cfg.Server.HTTPAddress = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{TokenSignKey: "sign"},
			Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second, Identity: 1},
		}
	}

	require.NoError(t, valid().validate())

	noAddr := valid()
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noIdentity := valid()
	noIdentity.Adapter.Identity = 0
	assert.ErrorIs(t, noIdentity.validate(), ErrInvalidAdapterConfigs)

	noKey := valid()
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)
}
