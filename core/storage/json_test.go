package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"workforce-manager/core/storage"
	"workforce-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "audit", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(false, nil)
		client.On("MakeBucket", ctx, "audit", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "audit", "eu-west-1"))
		client.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "audit").Return(false, errors.New("unreachable"))

		err := storage.EnsureBucket(ctx, client, "audit", "")
		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestPutJSON(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	var written string
	client.On("PutObject", ctx, "audit", "changelogs/1/2.json", mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			written = string(data)
			assert.Equal(t, "application/json", args.Get(5).(minio.PutObjectOptions).ContentType)
		}).
		Return(minio.UploadInfo{}, nil)

	err := storage.PutJSON(ctx, client, "audit", "changelogs/1/2.json", map[string]int{"id": 2})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id": 2}`, written)
}
