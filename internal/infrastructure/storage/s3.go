package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/video"
)

const (
	metaChecksum = "checksum"
	metaFilename = "filename"
)

// S3MediaStorage implements video.MediaStorage on S3. Objects are keyed
// <prefix>/<videoID>/<mediaType>, so storing the same pair overwrites.
type S3MediaStorage struct {
	client *s3.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewS3MediaStorage creates an S3-backed media storage using the default
// AWS credential chain.
func NewS3MediaStorage(ctx context.Context, bucket, prefix, region string, logger *zap.Logger) (*S3MediaStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3MediaStorage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		logger: logger.Named("s3-media-storage"),
	}, nil
}

// StoreAudioVideo uploads the resource and returns the pending-encode
// media.
func (s *S3MediaStorage) StoreAudioVideo(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.AudioVideoMedia, error) {
	key, err := s.put(ctx, id, resource, mediaType)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(resource.Checksum(), resource.Name(), key), nil
}

// StoreImage uploads the resource and returns the image media.
func (s *S3MediaStorage) StoreImage(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.ImageMedia, error) {
	key, err := s.put(ctx, id, resource, mediaType)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(resource.Checksum(), resource.Name(), key), nil
}

// GetResource downloads the stored resource, nil when the key is absent.
func (s *S3MediaStorage) GetResource(ctx context.Context, id catalog.VideoID, mediaType video.MediaType) (*video.Resource, error) {
	key := s.key(id, mediaType)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting media object: %w", err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading media object: %w", err)
	}

	resource := video.NewResource(
		content,
		out.Metadata[metaChecksum],
		aws.ToString(out.ContentType),
		out.Metadata[metaFilename],
	)
	return &resource, nil
}

// ClearResources deletes every object under the video prefix. Idempotent:
// an empty listing is a no-op.
func (s *S3MediaStorage) ClearResources(ctx context.Context, id catalog.VideoID) error {
	videoPrefix := s.key(id, "") + "/"
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(path.Join(s.prefix, id.String()) + "/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("listing media objects: %w", err)
		}
		if len(page.Contents) == 0 {
			continue
		}
		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("deleting media objects: %w", err)
		}
	}

	s.logger.Debug("cleared media resources", zap.String("prefix", videoPrefix))
	return nil
}

func (s *S3MediaStorage) put(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (string, error) {
	key := s.key(id, mediaType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(resource.Content()),
		ContentType: aws.String(resource.ContentType()),
		Metadata: map[string]string{
			metaChecksum: resource.Checksum(),
			metaFilename: resource.Name(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("putting media object: %w", err)
	}
	return key, nil
}

func (s *S3MediaStorage) key(id catalog.VideoID, mediaType video.MediaType) string {
	return path.Join(s.prefix, id.String(), mediaType.String())
}
