package mqtt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofleet/carbon-tracker/infra/logger"
)

func TestConfigSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.True(t, strings.HasPrefix(cfg.ClientID, "carbon-tracker-"))
	assert.Equal(t, "fleet/trips/submit", cfg.SubmitTopic)
	assert.Equal(t, "fleet/trips/result/", cfg.ResultTopic)

	cfg = Config{ClientID: "fixed", SubmitTopic: "a", ResultTopic: "b/"}
	cfg.SetDefaults()
	assert.Equal(t, "fixed", cfg.ClientID)
	assert.Equal(t, "a", cfg.SubmitTopic)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.Error(t, Config{Enabled: true}.Validate())
	assert.NoError(t, Config{Enabled: true, Broker: "tcp://localhost:1883"}.Validate())
}

func TestNewClientOptions(t *testing.T) {
	cfg := Config{
		Broker:   "tcp://localhost:1883",
		ClientID: "test-client",
		Username: "u",
		Password: "p",
	}
	opts, err := NewClientOptions(cfg, logger.NopLogger{})
	require.NoError(t, err)
	assert.Equal(t, "test-client", opts.ClientID)
	assert.Equal(t, "u", opts.Username)
	assert.True(t, opts.AutoReconnect)
	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "localhost:1883", opts.Servers[0].Host)
}

func TestLoadTLSConfigMissingFiles(t *testing.T) {
	_, err := Config{UseTLS: true}.LoadTLSConfig()
	assert.ErrorContains(t, err, "tls config requires")
}
