package checks

import (
	"context"
	"errors"
	"testing"

	"workforce-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		report, err := CheckStorage(ctx, nil, "audit")
		require.NoError(t, err)
		assert.False(t, report.Enabled)
		assert.Equal(t, "disabled", report.Status)
	})

	t.Run("Bucket Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(true, nil)

		report, err := CheckStorage(ctx, client, "audit")
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, "ok", report.Status)
		client.AssertExpectations(t)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(false, nil)

		report, err := CheckStorage(ctx, client, "audit")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Equal(t, "missing", report.Status)
	})

	t.Run("Client Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(false, errors.New("connection refused"))

		report, err := CheckStorage(ctx, client, "audit")
		assert.ErrorContains(t, err, "connection refused")
		assert.Nil(t, report)
	})
}

func TestFixStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(false, nil)
		client.On("MakeBucket", ctx, "audit", mock.AnythingOfType("minio.MakeBucketOptions")).Return(nil)

		require.NoError(t, FixStorage(ctx, client, "audit", "", zap.NewNop()))
		client.AssertExpectations(t)
	})

	t.Run("Existing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(true, nil)

		require.NoError(t, FixStorage(ctx, client, "audit", "", zap.NewNop()))
		client.AssertNotCalled(t, "MakeBucket", ctx, "audit", minio.MakeBucketOptions{})
	})

	t.Run("Disabled", func(t *testing.T) {
		assert.EqualError(t, FixStorage(ctx, nil, "audit", "", zap.NewNop()), "storage is disabled")
	})
}
