package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const publicHost = "https://storage.googleapis.com"

// ReceiptStore keeps deposit receipts and profile pictures in a GCS bucket.
// Objects are written once under <prefix>/<uuid><ext> and served from their public URL.
type ReceiptStore struct {
	Client     *storage.Client
	BucketName string
	Prefix     string
}

var _ portssvc.AttachmentStore = (*ReceiptStore)(nil)

// NewReceiptStore connects to GCS. Credentials come from opts or the environment.
func NewReceiptStore(ctx context.Context, bucketName, prefix string, opts ...option.ClientOption) (*ReceiptStore, error) {
	if bucketName == "" {
		return nil, errors.New("gcs bucket name cannot be empty")
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}
	return &ReceiptStore{
		Client:     client,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *ReceiptStore) Close(ctx context.Context) {
	if s.Client == nil {
		return
	}
	if err := s.Client.Close(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Error closing GCS client", slog.String("error", err.Error()))
	}
}

func (s *ReceiptStore) objectName(filename string) string {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

// PublicURL is the address an object is served from.
func (s *ReceiptStore) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", publicHost, s.BucketName, objectName)
}

// Upload streams the attachment into a new object and returns its public URL.
func (s *ReceiptStore) Upload(ctx context.Context, attachment domain.Attachment) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if attachment.Body == nil {
		return "", fmt.Errorf("%w: attachment %q has no content", apperrors.ErrValidation, attachment.Filename)
	}

	objectName := s.objectName(attachment.Filename)
	object := s.Client.Bucket(s.BucketName).Object(objectName)

	writer := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = attachment.ContentType
	if writer.ContentType == "" {
		writer.ContentType = "application/octet-stream"
	}

	if _, err := io.Copy(writer, attachment.Body); err != nil {
		_ = writer.Close()
		logger.Error("Error uploading to GCS bucket", slog.String("objectName", objectName), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to write object %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("Error closing GCS writer", slog.String("objectName", objectName), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to finalize object %s: %w", objectName, err)
	}

	logger.Info("Uploaded to GCS bucket", slog.String("objectName", objectName))
	return s.PublicURL(objectName), nil
}

// Delete removes an object previously returned by Upload. Deleting a missing object is not an error.
func (s *ReceiptStore) Delete(ctx context.Context, rawURL string) error {
	objectName, err := s.objectNameFromURL(rawURL)
	if err != nil {
		return err
	}
	err = s.Client.Bucket(s.BucketName).Object(objectName).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}
	return nil
}

func (s *ReceiptStore) objectNameFromURL(rawURL string) (string, error) {
	prefix := publicHost + "/" + s.BucketName + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", fmt.Errorf("%w: %q is not an object of bucket %s", apperrors.ErrValidation, rawURL, s.BucketName)
	}
	name, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil || name == "" {
		return "", fmt.Errorf("%w: malformed object url %q", apperrors.ErrValidation, rawURL)
	}
	return name, nil
}
