package snapshots

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"gamestats/core/storage"
	"gamestats/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNotFound indicates that the snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

const extension = ".json"

// Snapshot describes one archived provider response.
type Snapshot struct {
	ID    string    `json:"id"`
	Key   string    `json:"key"`
	Taken time.Time `json:"taken"`
	Size  int64     `json:"size"`
}

// Service archives raw provider responses to object storage.
type Service struct {
	client    storage.Client
	bucket    string
	prefix    string
	retention int
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new snapshot service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	prefix := strings.Trim(cfg.SnapshotPrefix, "/")
	if prefix == "" {
		prefix = "snapshots"
	}
	return &Service{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    prefix,
		retention: cfg.SnapshotRetention,
		logger:    logger,
		now:       time.Now,
	}
}

// Archive stores body as a new snapshot of the player and drops the oldest
// snapshots beyond the retention limit.
func (s *Service) Archive(ctx context.Context, game, platform, username string, body []byte) error {
	id := strconv.FormatInt(s.now().UnixNano(), 10)
	key := s.objectKey(game, platform, username, id)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	s.logger.Debug("Archived snapshot", zap.String("key", key), zap.Int("bytes", len(body)))

	if s.retention > 0 {
		if err := s.prune(ctx, game, platform, username); err != nil {
			return err
		}
	}
	return nil
}

// List returns the snapshots of a player, newest first.
func (s *Service) List(ctx context.Context, game, platform, username string) ([]Snapshot, error) {
	prefix := s.playerPrefix(game, platform, username)

	list := []Snapshot{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}

		id := strings.TrimSuffix(path.Base(obj.Key), extension)
		nanos, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		list = append(list, Snapshot{
			ID:    id,
			Key:   obj.Key,
			Taken: time.Unix(0, nanos).UTC(),
			Size:  obj.Size,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Taken.After(list[j].Taken)
	})
	return list, nil
}

// Get returns the body of one snapshot.
func (s *Service) Get(ctx context.Context, game, platform, username, id string) ([]byte, error) {
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return nil, ErrNotFound
	}
	key := s.objectKey(game, platform, username, id)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapGetError(key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapGetError(key, err)
	}
	return body, nil
}

func (s *Service) prune(ctx context.Context, game, platform, username string) error {
	list, err := s.List(ctx, game, platform, username)
	if err != nil {
		return err
	}
	if len(list) <= s.retention {
		return nil
	}

	for _, snap := range list[s.retention:] {
		if err := s.client.RemoveObject(ctx, s.bucket, snap.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove snapshot %s: %w", snap.Key, err)
		}
		s.logger.Debug("Pruned snapshot", zap.String("key", snap.Key))
	}
	return nil
}

func (s *Service) playerPrefix(game, platform, username string) string {
	return s.prefix + "/" + utils.JoinKey("/", game, platform, username) + "/"
}

func (s *Service) objectKey(game, platform, username, id string) string {
	return s.playerPrefix(game, platform, username) + id + extension
}

func wrapGetError(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotFound
	}
	return fmt.Errorf("failed to read snapshot %s: %w", key, err)
}
