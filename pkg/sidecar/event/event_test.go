package event_test

import (
	"testing"

	"github.com/meemoo/sidecar-creator/pkg/sidecar/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockNotification = `{
  "Records": [
    {
      "eventVersion": "0.1",
      "eventName": "ObjectCreated:Put",
      "eventTime": "2019-12-13T10:00:00.000Z",
      "s3": {
        "bucket": {
          "name": "MAM_HighresVideo",
          "metadata": {
            "tenant": "VRT"
          }
        },
        "domain": {
          "name": "s3"
        },
        "object": {
          "key": "191213-VAN___statement_De_ideale_wereld___Don_12_December_2019-1983-d5be522e-3609-417a-a1f4-5922854620c8.MXF",
          "size": 33554432,
          "metadata": {
            "md5sum": "7ef01fd710fec9a175d28c4a31dc49a2"
          }
        }
      }
    }
  ]
}`

func parseMock(t *testing.T) *event.Notification {
	t.Helper()
	n, err := event.Parse([]byte(mockNotification))
	require.NoError(t, err)
	return n
}

func TestParseInvalidPayload(t *testing.T) {
	_, err := event.Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	n := parseMock(t)
	ex := event.NewExtractor()

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "bucket", field: "bucket", want: "MAM_HighresVideo"},
		{name: "object key", field: "object_key", want: "191213-VAN___statement_De_ideale_wereld___Don_12_December_2019-1983-d5be522e-3609-417a-a1f4-5922854620c8.MXF"},
		{name: "md5", field: "md5", want: "7ef01fd710fec9a175d28c4a31dc49a2"},
		{name: "tenant", field: "tenant", want: "VRT"},
		{name: "host composes bucket, domain and base domain", field: "host", want: "MAM_HighresVideo.s3.viaa.be"},
		{name: "names are case-insensitive", field: "Object_Key", want: "191213-VAN___statement_De_ideale_wereld___Don_12_December_2019-1983-d5be522e-3609-417a-a1f4-5922854620c8.MXF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ex.Get(n, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUnknownField(t *testing.T) {
	n := parseMock(t)

	_, err := event.NewExtractor().Get(n, "etag")
	assert.ErrorIs(t, err, event.ErrUnknownField)
}

func TestGetNoRecords(t *testing.T) {
	_, err := event.NewExtractor().Get(&event.Notification{}, "bucket")
	assert.ErrorIs(t, err, event.ErrNoRecords)
}

func TestGetHostCustomBaseDomain(t *testing.T) {
	n := parseMock(t)
	ex := event.NewExtractor()
	ex.BaseDomain = "example.org"

	host, err := ex.Get(n, "host")
	require.NoError(t, err)
	assert.Equal(t, "MAM_HighresVideo.s3.example.org", host)
}

func TestFindChecksum(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
		want string
	}{
		{
			name: "single known key",
			meta: map[string]string{"md5sum": "7ef01fd710fec9a175d28c4a31dc49a2"},
			want: "7ef01fd710fec9a175d28c4a31dc49a2",
		},
		{
			name: "earlier key wins",
			meta: map[string]string{
				"x-md5sum-meta": "first",
				"md5sum":        "second",
			},
			want: "first",
		},
		{
			name: "amz fallback",
			meta: map[string]string{"x-amz-meta-md5sum": "amz"},
			want: "amz",
		},
		{
			name: "no known key means absent",
			meta: map[string]string{"etag": "whatever"},
			want: "",
		},
		{
			name: "nil metadata",
			meta: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := event.FindChecksum(tt.meta, event.DefaultChecksumKeys)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindChecksumExplicitOrder(t *testing.T) {
	meta := map[string]string{"a": "1", "b": "2"}

	assert.Equal(t, "2", event.FindChecksum(meta, []string{"b", "a"}))
	assert.Equal(t, "1", event.FindChecksum(meta, []string{"a", "b"}))
	assert.Equal(t, "", event.FindChecksum(meta, nil))
}
