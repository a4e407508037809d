package sidecar

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/event"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/transfer"
)

// Service runs the sidecar pipeline for one storage-event notification:
// field extraction, metadata assembly, document build, upload.
type Service interface {
	Process(ctx context.Context, n *event.Notification) error
}

// Option configures the service
type Option func(*service)

// WithSink sets the transfer sink sidecars are delivered to (required).
func WithSink(sink transfer.Sink) Option {
	return func(s *service) { s.sink = sink }
}

// WithDestinationDir sets the remote directory sidecars are stored under.
func WithDestinationDir(dir string) Option {
	return func(s *service) { s.destDir = dir }
}

// WithBaseDomain overrides the base domain used for the host field.
func WithBaseDomain(domain string) Option {
	return func(s *service) { s.extractor.BaseDomain = domain }
}

// WithChecksumKeys overrides the md5 lookup precedence.
func WithChecksumKeys(keys []string) Option {
	return func(s *service) { s.extractor.ChecksumKeys = keys }
}

type service struct {
	sink      transfer.Sink
	destDir   string
	extractor *event.Extractor
}

// New creates a sidecar service with the given options.
func New(opts ...Option) (Service, error) {
	svc := &service{
		destDir:   "/",
		extractor: event.NewExtractor(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(svc)
	}
	if svc.sink == nil {
		return nil, ErrSinkRequired
	}
	return svc, nil
}

// Process extracts the asset's fields from n, assembles the two-level
// metadata mapping, builds the sidecar and uploads it next to the asset as
// <object key>.xml. An absent checksum omits the Technical md5 field rather
// than writing an empty one.
func (s *service) Process(ctx context.Context, n *event.Notification) error {
	runID := uuid.New()

	objectKey, err := s.extractor.Get(n, "object_key")
	if err != nil {
		return fmt.Errorf("extract object_key: %w", err)
	}
	bucket, err := s.extractor.Get(n, "bucket")
	if err != nil {
		return fmt.Errorf("extract bucket: %w", err)
	}
	tenant, err := s.extractor.Get(n, "tenant")
	if err != nil {
		return fmt.Errorf("extract tenant: %w", err)
	}
	md5, err := s.extractor.Get(n, "md5")
	if err != nil {
		return fmt.Errorf("extract md5: %w", err)
	}

	dynamic := map[string]string{
		"s3_object_key": objectKey,
		"s3_bucket":     bucket,
	}
	if tenant != "" {
		dynamic["tenant"] = tenant
	}
	md := Metadata{CategoryDynamic: dynamic}
	if md5 != "" {
		md[CategoryTechnical] = map[string]string{"md5": md5}
	} else {
		slog.Warn("no md5 in object metadata, sidecar carries no checksum",
			"run_id", runID, "object_key", objectKey)
	}

	doc, err := Build(md)
	if err != nil {
		return fmt.Errorf("build sidecar: %w", err)
	}
	content, err := doc.Bytes(false)
	if err != nil {
		return err
	}

	filename := path.Base(objectKey) + ".xml"
	if err := s.sink.Put(ctx, content, s.destDir, filename); err != nil {
		return fmt.Errorf("upload sidecar %s: %w", filename, err)
	}

	slog.Info("sidecar delivered",
		"run_id", runID,
		"object_key", objectKey,
		"dir", s.destDir,
		"filename", filename,
		"bytes", len(content))
	return nil
}
