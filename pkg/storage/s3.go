package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"alumni-directory-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const avatarPrefix = "avatars/"

// Config holds configuration for S3-compatible storage (AWS S3 or MinIO)
type Config struct {
	Endpoint        string // empty for AWS S3
	PublicEndpoint  string // base URL browsers use to fetch objects
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UploadURLTTL    time.Duration
}

// S3Storage issues presigned uploads and deletes avatar objects.
type S3Storage struct {
	client        *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
	ttl           time.Duration
}

var _ domain.AvatarStorage = (*S3Storage)(nil)

// NewS3Storage creates an S3 client with the given config.
// A custom endpoint implies path-style addressing, as MinIO requires.
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	ttl := cfg.UploadURLTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	publicEndpoint := cfg.PublicEndpoint
	if publicEndpoint == "" {
		publicEndpoint = cfg.Endpoint
	}
	if publicEndpoint == "" {
		publicEndpoint = awsVirtualHostEndpoint(cfg.Bucket, cfg.Region)
	}

	return &S3Storage{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: buildPublicBaseURL(publicEndpoint, cfg.Bucket),
		ttl:           ttl,
	}, nil
}

// CreateUploadURL presigns a PUT for a fresh object under the owner's avatar prefix.
func (s *S3Storage) CreateUploadURL(ctx context.Context, ownerID, fileName, contentType string) (*domain.UploadURL, error) {
	key := ObjectKey(ownerID, fileName)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &domain.UploadURL{
		UploadURL: req.URL,
		FileURL:   s.publicBaseURL + "/" + key,
		ObjectKey: key,
	}, nil
}

// DeleteObject removes an object. Missing objects are not an error on S3.
func (s *S3Storage) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// KeyFromURL maps a public file URL produced by CreateUploadURL back to its key.
func (s *S3Storage) KeyFromURL(fileURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(fileURL, prefix)
	if !canonicalKey(key) || !strings.HasPrefix(key, avatarPrefix) {
		return "", false
	}
	return key, true
}

// canonicalKey rejects keys a browser or proxy would rewrite before fetching:
// dot segments, empty segments, escapes, queries and fragments.
func canonicalKey(key string) bool {
	if key == "" || strings.ContainsAny(key, `%?#\`) || path.Clean(key) != key {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

// CheckBucket verifies the bucket is reachable with the configured credentials.
func (s *S3Storage) CheckBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	dashRun       = regexp.MustCompile(`-{2,}`)
)

// SanitizeFileName reduces a client file name to [a-z0-9._-].
func SanitizeFileName(fileName string) string {
	name := strings.TrimSpace(fileName)
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = unsafeChars.ReplaceAllString(name, "")
	name = dashRun.ReplaceAllString(name, "-")
	return strings.ToLower(name)
}

// ObjectKey builds avatars/<owner>/<uuid>-<sanitized name>.
func ObjectKey(ownerID, fileName string) string {
	name := SanitizeFileName(fileName)
	if name == "" {
		name = "upload.bin"
	}
	return OwnerPrefix(ownerID) + uuid.NewString() + "-" + name
}

// OwnerPrefix is the key prefix holding one owner's avatars.
func OwnerPrefix(ownerID string) string {
	return domain.AvatarKeyPrefix(ownerID)
}

// awsVirtualHostEndpoint is the public URL of a bucket on AWS S3 itself.
func awsVirtualHostEndpoint(bucket, region string) string {
	if region == "" {
		region = "us-east-1"
	}
	return "https://" + bucket + ".s3." + region + ".amazonaws.com"
}

// buildPublicBaseURL appends the bucket unless the endpoint already names it
// (virtual-host style host or a path ending in the bucket).
func buildPublicBaseURL(endpoint, bucket string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint + "/" + bucket
	}
	trimmed := strings.Trim(u.Path, "/")
	if strings.HasPrefix(u.Hostname(), bucket+".") || trimmed == bucket || strings.HasSuffix(trimmed, "/"+bucket) {
		return endpoint
	}
	return endpoint + "/" + bucket
}
