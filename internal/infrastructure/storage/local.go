package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/video"
)

// resourceMeta is the sidecar file written next to each stored resource so
// the original checksum, content type and file name survive a round trip.
type resourceMeta struct {
	Checksum    string `json:"checksum"`
	ContentType string `json:"content_type"`
	Name        string `json:"name"`
}

// LocalMediaStorage implements video.MediaStorage on the local filesystem.
// Resources live under basePath/<videoID>/<mediaType>, so storing the same
// (video, type) pair twice overwrites rather than duplicates.
type LocalMediaStorage struct {
	basePath string
}

// NewLocalMediaStorage creates a filesystem-backed media storage.
func NewLocalMediaStorage(basePath string) (*LocalMediaStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating media base path: %w", err)
	}
	return &LocalMediaStorage{basePath: basePath}, nil
}

// StoreAudioVideo writes the resource and returns the pending-encode media.
func (s *LocalMediaStorage) StoreAudioVideo(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.AudioVideoMedia, error) {
	location, err := s.write(id, resource, mediaType)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(resource.Checksum(), resource.Name(), location), nil
}

// StoreImage writes the resource and returns the image media.
func (s *LocalMediaStorage) StoreImage(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.ImageMedia, error) {
	location, err := s.write(id, resource, mediaType)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(resource.Checksum(), resource.Name(), location), nil
}

// GetResource reads back a stored resource, nil when nothing is stored for
// the pair.
func (s *LocalMediaStorage) GetResource(ctx context.Context, id catalog.VideoID, mediaType video.MediaType) (*video.Resource, error) {
	path := s.path(id, mediaType)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading media resource: %w", err)
	}

	var meta resourceMeta
	if raw, err := os.ReadFile(path + ".meta.json"); err == nil {
		_ = json.Unmarshal(raw, &meta)
	}

	resource := video.NewResource(content, meta.Checksum, meta.ContentType, meta.Name)
	return &resource, nil
}

// ClearResources deletes everything stored for the video id. Idempotent: a
// missing directory is a no-op.
func (s *LocalMediaStorage) ClearResources(ctx context.Context, id catalog.VideoID) error {
	dir := filepath.Join(s.basePath, id.String())
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clearing media resources: %w", err)
	}
	return nil
}

func (s *LocalMediaStorage) write(id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (string, error) {
	path := s.path(id, mediaType)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating media directory: %w", err)
	}
	if err := os.WriteFile(path, resource.Content(), 0o644); err != nil {
		return "", fmt.Errorf("writing media resource: %w", err)
	}

	meta, err := json.Marshal(resourceMeta{
		Checksum:    resource.Checksum(),
		ContentType: resource.ContentType(),
		Name:        resource.Name(),
	})
	if err != nil {
		return "", fmt.Errorf("encoding media metadata: %w", err)
	}
	if err := os.WriteFile(path+".meta.json", meta, 0o644); err != nil {
		return "", fmt.Errorf("writing media metadata: %w", err)
	}
	return filepath.ToSlash(filepath.Join(id.String(), mediaType.String())), nil
}

func (s *LocalMediaStorage) path(id catalog.VideoID, mediaType video.MediaType) string {
	return filepath.Join(s.basePath, id.String(), mediaType.String())
}
