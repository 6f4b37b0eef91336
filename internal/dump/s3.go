// Where: internal/dump/s3.go
// What: S3-backed dump downloader.
// Why: Fetch nightly dumps directly from object storage when configured.
package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Credential overrides for self-hosted (MinIO-style) dump buckets.
// When unset, the default AWS credential chain applies.
const (
	envAccessKey = "REFRESH_AWS_ACCESS_KEY_ID"
	envSecretKey = "REFRESH_AWS_SECRET_ACCESS_KEY"
)

// ObjectFetcher is the subset of the S3 client used by S3Downloader.
type ObjectFetcher interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Downloader fetches a dump object into the project's dump path.
// The object key is rendered from KeyTemplate (see RenderKey).
type S3Downloader struct {
	Bucket      string
	KeyTemplate string
	Region      string
	Endpoint    string

	// newClient is swapped in tests.
	newClient func(ctx context.Context) (ObjectFetcher, error)
}

// NewS3Downloader builds a downloader for the given dump source.
func NewS3Downloader(bucket, keyTemplate, region, endpoint string) *S3Downloader {
	d := &S3Downloader{
		Bucket:      bucket,
		KeyTemplate: keyTemplate,
		Region:      region,
		Endpoint:    endpoint,
	}
	d.newClient = d.defaultClient
	return d
}

func (d *S3Downloader) defaultClient(ctx context.Context) (ObjectFetcher, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if d.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(d.Region))
	}
	if access := os.Getenv(envAccessKey); access != "" {
		provider := credentials.NewStaticCredentialsProvider(access, os.Getenv(envSecretKey), "")
		optFns = append(optFns, awsconfig.WithCredentialsProvider(provider))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if d.Endpoint != "" {
			o.BaseEndpoint = aws.String(d.Endpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// Download fetches the rendered object key into dest, creating parent
// directories as needed. A partial file is removed on failure.
func (d *S3Downloader) Download(ctx context.Context, branch, dest string) error {
	key, err := RenderKey(d.KeyTemplate, KeyData{Branch: branch})
	if err != nil {
		return err
	}

	client, err := d.newClient(ctx)
	if err != nil {
		return err
	}

	object, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("fetch s3://%s/%s: %w", d.Bucket, key, err)
	}
	defer object.Body.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, object.Body); err != nil {
		file.Close()
		os.Remove(dest)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return file.Close()
}
