// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config gets every default", func(t *testing.T) {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()

		assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
		assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
		assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
		assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
		assert.Equal(t, DefaultSearchDelay, cfg.App.SearchDelay)
		assert.Equal(t, DefaultExternalURL, cfg.External.BaseURL)
		assert.Equal(t, DefaultExternalLimit, cfg.External.Timeout)

		// the secret intentionally stays empty
		assert.Empty(t, cfg.App.TokenSignKey)
	})

	t.Run("configured fields are kept", func(t *testing.T) {
		cfg := &StructuredConfig{
			App: App{
				TokenIssuer:   "custom-issuer",
				TokenDuration: time.Hour,
			},
			Server: Server{HTTPAddress: "localhost:9090"},
		}
		cfg.applyDefaults()

		assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
		assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
		assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid config",
			cfg: StructuredConfig{
				App: App{TokenSignKey: "secret", BcryptCost: 10},
			},
			wantErr: nil,
		},
		{
			name:    "missing token sign key",
			cfg:     StructuredConfig{App: App{BcryptCost: 10}},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name: "bcrypt cost below range",
			cfg: StructuredConfig{
				App: App{TokenSignKey: "secret", BcryptCost: 3},
			},
			wantErr: ErrInvalidBcryptCost,
		},
		{
			name: "bcrypt cost above range",
			cfg: StructuredConfig{
				App: App{TokenSignKey: "secret", BcryptCost: 32},
			},
			wantErr: ErrInvalidBcryptCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("SERVER_ADDRESS", "localhost:8081")
	t.Setenv("EXTERNAL_TIMEOUT", "10s")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.External.Timeout)
}

func TestParseJSON(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		raw := `{
			"app": {
				"token_sign_key": "file-secret",
				"token_issuer": "file-issuer",
				"token_duration": "12h",
				"bcrypt_cost": 8,
				"search_delay": "250ms"
			},
			"server": {
				"http_address": "0.0.0.0:8080",
				"request_timeout": "30s"
			},
			"external": {
				"base_url": "http://posts.internal",
				"timeout": "3s"
			}
		}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, "file-secret", cfg.App.TokenSignKey)
		assert.Equal(t, "file-issuer", cfg.App.TokenIssuer)
		assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
		assert.Equal(t, 8, cfg.App.BcryptCost)
		assert.Equal(t, 250*time.Millisecond, cfg.App.SearchDelay)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "http://posts.internal", cfg.External.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.External.Timeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := parseJSON(path)
		assert.Error(t, err)
	})
}

func TestDurationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "milliseconds string", input: `"100ms"`, want: 100 * time.Millisecond},
		{name: "number of nanoseconds", input: `5000000000`, want: 5 * time.Second},
		{name: "garbage string", input: `"not a duration"`, wantErr: true},
		{name: "invalid json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestNetAddress(t *testing.T) {
	t.Run("set and string round trip", func(t *testing.T) {
		var addr NetAddress
		require.NoError(t, addr.Set("localhost:3000"))
		assert.Equal(t, "localhost", addr.Host)
		assert.Equal(t, 3000, addr.Port)
		assert.Equal(t, "localhost:3000", addr.String())
	})

	t.Run("empty address renders empty", func(t *testing.T) {
		var addr NetAddress
		assert.Equal(t, "", addr.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, input := range []string{"no-port", "host:port:extra", "localhost:abc", "localhost:0", "999.999.0.1:3000"} {
			var addr NetAddress
			assert.Error(t, addr.Set(input), input)
		}
	})
}
