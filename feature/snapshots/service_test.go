package snapshots_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"gamestats/core/storage"
	"gamestats/core/storage/mocks"
	"gamestats/feature/snapshots"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(client storage.Client, retention int) *snapshots.Service {
	svc := snapshots.NewService(client, storage.Config{
		Bucket:            "gamestats",
		SnapshotPrefix:    "snapshots/",
		SnapshotRetention: retention,
	}, zap.NewNop())
	svc.SetClock(func() time.Time { return time.Unix(0, 3000) })
	return svc
}

func listing(keys ...string) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(keys))
		for _, k := range keys {
			ch <- minio.ObjectInfo{Key: k, Size: 10}
		}
		close(ch)
		return ch
	}
}

func TestService_Archive(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/3000.json", mock.Anything, int64(2), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "gamestats", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
		return o.Prefix == "snapshots/fortnite/pc/ninja/"
	})).Return(listing(
		"snapshots/fortnite/pc/ninja/1000.json",
		"snapshots/fortnite/pc/ninja/3000.json",
		"snapshots/fortnite/pc/ninja/2000.json",
	))
	client.On("RemoveObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/1000.json", mock.Anything).Return(nil)

	svc := newService(client, 2)
	require.NoError(t, svc.Archive(context.Background(), "fortnite", "PC", "Ninja", []byte("{}")))

	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "RemoveObject", 1)
}

func TestService_ArchiveNoRetention(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "gamestats", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newService(client, 0)
	require.NoError(t, svc.Archive(context.Background(), "fortnite", "pc", "ninja", []byte("{}")))
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ArchiveUploadFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("denied"))

	svc := newService(client, 5)
	assert.Error(t, svc.Archive(context.Background(), "fortnite", "pc", "ninja", []byte("{}")))
}

func TestService_List(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "gamestats", mock.Anything).Return(listing(
		"snapshots/fortnite/pc/ninja/1000.json",
		"snapshots/fortnite/pc/ninja/notes.txt",
		"snapshots/fortnite/pc/ninja/2000.json",
	))

	list, err := newService(client, 0).List(context.Background(), "fortnite", "pc", "ninja")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2000", list[0].ID)
	assert.Equal(t, "1000", list[1].ID)
	assert.Equal(t, time.Unix(0, 2000).UTC(), list[0].Taken)
}

func TestService_Get(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/1000.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"ok":true}`))), nil)
	client.On("GetObject", mock.Anything, "gamestats", "snapshots/fortnite/pc/ninja/2000.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	svc := newService(client, 0)

	body, err := svc.Get(context.Background(), "fortnite", "pc", "ninja", "1000")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))

	_, err = svc.Get(context.Background(), "fortnite", "pc", "ninja", "2000")
	assert.ErrorIs(t, err, snapshots.ErrNotFound)

	_, err = svc.Get(context.Background(), "fortnite", "pc", "ninja", "../secret")
	assert.ErrorIs(t, err, snapshots.ErrNotFound)
}
