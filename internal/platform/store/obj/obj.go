// Package obj provides the export sink on top of s3 compatible object storage
// exports are write once objects retrieved through presigned time bounded urls
package obj

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config configures the object store client
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// URLExpiry bounds how long a retrieval handle stays valid, default 24h
	// expiry is enforced by the store, not by this client
	URLExpiry time.Duration
}

// Client wraps a minio client scoped to one bucket
type Client struct {
	mc     *minio.Client
	bucket string
	expiry time.Duration
}

// Open constructs a client; it does not verify the bucket exists
func Open(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("obj: empty endpoint")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("obj: empty bucket")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Client{mc: mc, bucket: cfg.Bucket, expiry: expiry}, nil
}

// Put uploads body under name and returns a presigned retrieval URL
// the object is never updated after this call
func (c *Client) Put(ctx context.Context, name, contentType string, body []byte) (string, error) {
	if c == nil || c.mc == nil {
		return "", errors.New("obj: nil client")
	}
	_, err := c.mc.PutObject(ctx, c.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	u, err := c.mc.PresignedGetObject(ctx, c.bucket, name, c.expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
