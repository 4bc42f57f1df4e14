package notify

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"asset-audit/core/apperror"
	"asset-audit/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// StorageSink delivers messages as objects in the outbox bucket.
type StorageSink struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewStorageSink creates a sink writing under prefix in bucket.
func NewStorageSink(client storage.Client, bucket, prefix string) *StorageSink {
	return &StorageSink{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Send writes one object per message. The key embeds the timestamp and a random suffix,
// so a message is never overwritten.
func (s *StorageSink) Send(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return apperror.Validation("no recipients for %q", subject)
	}

	key := s.objectKey(subject)
	opts := minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"Recipients": strings.Join(recipients, ","),
			"Subject":    subject,
		},
	}

	reader := strings.NewReader(body)
	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, reader.Size(), opts); err != nil {
		return apperror.Dependency(fmt.Sprintf("put report %s", key), err)
	}
	return nil
}

func (s *StorageSink) objectKey(subject string) string {
	slug := strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(subject), "-"), "-")
	if len(slug) > 60 {
		slug = strings.TrimRight(slug[:60], "-")
	}
	if slug == "" {
		slug = "report"
	}
	name := fmt.Sprintf("%s-%s-%s.txt", s.now().UTC().Format("20060102T150405Z"), slug, uuid.NewString()[:8])
	return path.Join(s.prefix, name)
}
