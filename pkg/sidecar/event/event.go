// Package event models the storage-event notification emitted when an asset
// lands in the object store, and extracts the fields the sidecar pipeline
// needs from it.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultBaseDomain completes the host name derived from an event's bucket
// and domain parts.
const DefaultBaseDomain = "viaa.be"

// DefaultChecksumKeys is the production precedence for locating an object's
// md5 checksum in its metadata. Earlier keys win.
var DefaultChecksumKeys = []string{"x-md5sum-meta", "md5sum", "x-amz-meta-md5sum"}

// Error types
var (
	// ErrUnknownField indicates a field name outside the recognized set
	ErrUnknownField = errors.New("unknown event field")

	// ErrNoRecords indicates a notification without any event records
	ErrNoRecords = errors.New("notification has no records")
)

// Notification is the event payload the object store posts when an object is
// written. Only the first record is meaningful; the store sends one record
// per notification.
type Notification struct {
	Records []Record `json:"Records"`
}

type Record struct {
	EventName string `json:"eventName,omitempty"`
	EventTime string `json:"eventTime,omitempty"`
	S3        S3     `json:"s3"`
}

type S3 struct {
	Bucket Bucket `json:"bucket"`
	Object Object `json:"object"`
	Domain Domain `json:"domain"`
}

type Bucket struct {
	Name     string         `json:"name"`
	Metadata BucketMetadata `json:"metadata,omitempty"`
}

type BucketMetadata struct {
	Tenant string `json:"tenant,omitempty"`
}

type Object struct {
	Key      string            `json:"key"`
	Size     int64             `json:"size,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Domain struct {
	Name string `json:"name"`
}

// Parse decodes a raw notification payload.
func Parse(data []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	return &n, nil
}

// Extractor resolves field names against a notification. It is opinionated:
// it knows where each recognized field lives inside the event shape.
type Extractor struct {
	// BaseDomain is appended when composing the host field.
	BaseDomain string
	// ChecksumKeys is the ordered fallback list for the md5 field.
	ChecksumKeys []string
}

// NewExtractor returns an extractor with the production defaults.
func NewExtractor() *Extractor {
	return &Extractor{
		BaseDomain:   DefaultBaseDomain,
		ChecksumKeys: DefaultChecksumKeys,
	}
}

// Get returns the value of one of the recognized fields: bucket, object_key,
// host, tenant or md5. Names are matched case-insensitively. An md5 value of
// "" means no checksum was present, never a valid checksum.
func (e *Extractor) Get(n *Notification, name string) (string, error) {
	if len(n.Records) == 0 {
		return "", ErrNoRecords
	}
	s3 := n.Records[0].S3

	switch strings.ToLower(name) {
	case "bucket":
		return s3.Bucket.Name, nil
	case "object_key":
		return s3.Object.Key, nil
	case "host":
		return strings.Join([]string{s3.Bucket.Name, s3.Domain.Name, e.BaseDomain}, "."), nil
	case "tenant":
		return s3.Bucket.Metadata.Tenant, nil
	case "md5":
		return FindChecksum(s3.Object.Metadata, e.ChecksumKeys), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FindChecksum returns the value of the first of keys present in meta.
// Writers disagree on which metadata key carries the md5, hence the ordered
// candidate list. An empty string means none of the keys were present.
func FindChecksum(meta map[string]string, keys []string) string {
	for _, key := range keys {
		if v, ok := meta[key]; ok {
			return v
		}
	}
	return ""
}
