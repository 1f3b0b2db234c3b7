package cmd

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylansGit/ClipSage/internal/infrastructure/config"
)

func TestResolveAPI(t *testing.T) {
	base := config.APIConfig{Enabled: false, Host: "127.0.0.1", Port: 7878}

	tests := []struct {
		name    string
		cfg     config.APIConfig
		listen  string
		want    apiSettings
		wantErr bool
	}{
		{name: "config disabled", cfg: base, want: apiSettings{enabled: false, host: "127.0.0.1", port: 7878}},
		{
			name: "config enabled",
			cfg:  config.APIConfig{Enabled: true, Host: "127.0.0.1", Port: 9000},
			want: apiSettings{enabled: true, host: "127.0.0.1", port: 9000},
		},
		{name: "listen overrides", cfg: base, listen: "0.0.0.0:8080", want: apiSettings{enabled: true, host: "0.0.0.0", port: 8080}},
		{name: "listen port only keeps host", cfg: base, listen: ":9090", want: apiSettings{enabled: true, host: "127.0.0.1", port: 9090}},
		{name: "missing port", cfg: base, listen: "localhost", wantErr: true},
		{name: "bad port", cfg: base, listen: "localhost:http", wantErr: true},
		{name: "port out of range", cfg: base, listen: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAPI(tt.cfg, tt.listen)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPollIntervalFlag(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    time.Duration
		wantErr bool
	}{
		{name: "half second", seconds: 0.5, want: 500 * time.Millisecond},
		{name: "maximum", seconds: 3600, want: time.Hour},
		{name: "zero", seconds: 0, wantErr: true},
		{name: "negative", seconds: -1, wantErr: true},
		{name: "too long", seconds: 3600.5, wantErr: true},
		{name: "rounds to zero", seconds: 1e-12, wantErr: true},
		{name: "nan", seconds: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pollIntervalFlag(tt.seconds)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--interval")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
