// internal/services/export_uploader.go
package services

import (
    "bytes"
    "context"
    "fmt"
    "strings"

    "github.com/aws/aws-sdk-go-v2/aws"
    "github.com/aws/aws-sdk-go-v2/feature/s3/manager"
    "github.com/aws/aws-sdk-go-v2/service/s3"
    "github.com/google/uuid"

    "brandtruth/internal/config"
)

// BundleUploader archives export and proof-pack bundles to S3 and hands back
// a public URL the client can download from.
type BundleUploader struct {
    client        *s3.Client
    bucket        string
    publicBaseURL string
}

func NewBundleUploader(s3Config *config.S3Config) *BundleUploader {
    return &BundleUploader{
        client:        s3Config.Client,
        bucket:        s3Config.Bucket,
        publicBaseURL: s3Config.PublicBaseURL,
    }
}

// Configured reports whether an archive target exists; without one, bundles
// are returned inline instead.
func (u *BundleUploader) Configured() bool {
    return u.client != nil && u.bucket != ""
}

// Upload stores body under <kind>/<uuid>.json and returns the object key and
// public URL.
func (u *BundleUploader) Upload(ctx context.Context, kind string, body []byte) (string, string, error) {
    if !u.Configured() {
        return "", "", fmt.Errorf("bundle storage is not configured")
    }

    key := fmt.Sprintf("%s/%s.json", kind, uuid.New().String())

    uploader := manager.NewUploader(u.client)
    _, err := uploader.Upload(ctx, &s3.PutObjectInput{
        Bucket:      aws.String(u.bucket),
        Key:         aws.String(key),
        Body:        bytes.NewReader(body),
        ContentType: aws.String("application/json"),
    })
    if err != nil {
        return "", "", fmt.Errorf("upload %s: %w", key, err)
    }

    url := strings.TrimRight(u.publicBaseURL, "/") + "/" + key
    return key, url, nil
}
