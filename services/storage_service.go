package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"blog-platform/config"
	"blog-platform/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the slice of the S3 client the storage service needs.
// *s3.Client satisfies it.
type S3API interface {
	manager.UploadAPIClient
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// UploadFile is an uploaded image: original filename plus content.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadKey determines the object key layout:
// {prefix}/{ownerId}/{parentId}/{resourceId}{ext}
type UploadKey struct {
	OwnerID    string
	ParentID   string
	ResourceID string
}

type StorageService interface {
	StoragePrefix() string
	Upload(ctx context.Context, file UploadFile, key UploadKey) (string, error)
	DeleteByURL(ctx context.Context, imageURL string) error
	ListFolder(ctx context.Context, folderKey string) ([]types.Object, error)
	DeleteObjects(ctx context.Context, objects []types.Object) error
}

type storageService struct {
	client   S3API
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func NewStorageService(client S3API, settings config.S3Settings) StorageService {
	return &storageService{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   settings.Bucket,
		prefix:   settings.StoragePrefix,
	}
}

func (s *storageService) StoragePrefix() string {
	return s.prefix
}

func (s *storageService) Upload(ctx context.Context, file UploadFile, key UploadKey) (string, error) {
	objectKey := s.objectKey(file.Name, key)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(objectKey),
		Body:         bytes.NewReader(file.Data),
		CacheControl: aws.String("max-age=63072000"),
	})
	if err != nil {
		return "", models.NewInternalError("error while uploading image to s3 bucket", err)
	}

	return s.objectURL(objectKey), nil
}

func (s *storageService) DeleteByURL(ctx context.Context, imageURL string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyFromURL(imageURL)),
	})
	if err != nil {
		return models.NewInternalError("Unable to delete image", err)
	}

	return nil
}

func (s *storageService) ListFolder(ctx context.Context, folderKey string) ([]types.Object, error) {
	response, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(folderKey),
	})
	if err != nil {
		return nil, models.NewInternalError("Can't retrieve folder content from s3", err)
	}

	return response.Contents, nil
}

func (s *storageService) DeleteObjects(ctx context.Context, objects []types.Object) error {
	if len(objects) == 0 {
		return nil
	}

	identifiers := make([]types.ObjectIdentifier, 0, len(objects))
	for _, object := range objects {
		identifiers = append(identifiers, types.ObjectIdentifier{Key: object.Key})
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: identifiers},
	})
	if err != nil {
		return models.NewInternalError("Can't delete objects from s3", err)
	}

	return nil
}

func (s *storageService) objectKey(filename string, key UploadKey) string {
	ext := filepath.Ext(filename)
	return path.Join(s.prefix, key.OwnerID, key.ParentID, key.ResourceID+ext)
}

func (s *storageService) objectURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectKey)
}

func (s *storageService) keyFromURL(imageURL string) string {
	return strings.TrimPrefix(imageURL, fmt.Sprintf("https://%s.s3.amazonaws.com/", s.bucket))
}
