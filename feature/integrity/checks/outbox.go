package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"asset-audit/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// OutboxReport describes the state of the report outbox.
type OutboxReport struct {
	Bucket  string   `json:"bucket"`
	Prefix  string   `json:"prefix"`
	Missing []string `json:"missing"`
}

// CheckOutbox returns the parts of the outbox that are missing: the bucket itself and the
// folder marker of the report prefix.
func CheckOutbox(ctx context.Context, client storage.Client, bucket, prefix string) (*OutboxReport, error) {
	report := &OutboxReport{Bucket: bucket, Prefix: folderPath(prefix), Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		report.Missing = append(report.Missing, bucket)
		if report.Prefix != "" {
			report.Missing = append(report.Missing, report.Prefix)
		}
		return report, nil
	}

	if report.Prefix == "" {
		return report, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    report.Prefix,
		Recursive: false,
		MaxKeys:   1,
	}
	found := false
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", report.Prefix, obj.Err)
		}
		found = true
		break
	}
	if !found {
		report.Missing = append(report.Missing, report.Prefix)
	}

	return report, nil
}

// FixOutbox creates what CheckOutbox reported missing.
func FixOutbox(ctx context.Context, client storage.Client, report *OutboxReport, logger *zap.Logger) error {
	for _, missing := range report.Missing {
		if missing == report.Bucket {
			if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{}); err != nil {
				logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
				return err
			}
			logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
			continue
		}

		_, err := client.PutObject(ctx, report.Bucket, missing, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", missing), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", missing))
	}
	return nil
}

func folderPath(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
