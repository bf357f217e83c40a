package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() *MinIOConfig {
	return &MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "jazflix-videos",
		Region:    "us-east-1",
		TTL:       15 * time.Minute,
	}
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := newClient(nil)
	require.Error(t, err)

	cfg := testConfig()
	cfg.Endpoint = ""
	_, err = newClient(cfg)
	require.Error(t, err)

	cfg = testConfig()
	cfg.TTL = 0
	_, err = newClient(cfg)
	require.Error(t, err)
}

func TestVideoURL_Presigns(t *testing.T) {
	s, err := newClient(testConfig())
	require.NoError(t, err)
	require.Equal(t, "jazflix-videos", s.Bucket())

	raw, err := s.VideoURL(context.Background(), "1.mp4")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "http", u.Scheme)
	require.Equal(t, "localhost:9000", u.Host)
	require.True(t, strings.HasSuffix(u.Path, "/jazflix-videos/1.mp4"), u.Path)
	require.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestGetPresignedURL_CustomExpiry(t *testing.T) {
	s, err := newClient(testConfig())
	require.NoError(t, err)

	raw, err := s.GetPresignedURL(context.Background(), "2.mp4", time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "60", u.Query().Get("X-Amz-Expires"))
}
