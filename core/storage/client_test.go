package storage_test

import (
	"testing"

	"workforce-manager/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	base := storage.Config{
		AccessKey: "archiver",
		SecretKey: "archiver-secret",
		Bucket:    "workforce-audit",
	}

	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		timeout  int
		wantErr  bool
	}{
		{name: "Plain host", endpoint: "localhost:9000"},
		{name: "HTTP scheme stripped", endpoint: "http://minio.internal:9000"},
		{name: "HTTPS scheme stripped", endpoint: "https://s3.amazonaws.com", useSSL: true},
		{name: "Default timeout", endpoint: "localhost:9000", timeout: 0},
		{name: "Path rejected", endpoint: "localhost:9000/changelogs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Endpoint = tt.endpoint
			cfg.UseSSL = tt.useSSL
			cfg.TimeoutSeconds = tt.timeout

			client, err := storage.NewClient(cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to create minio client")
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
