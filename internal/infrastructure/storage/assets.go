// Package storage persists binary assets (covers, checkout videos, ebook
// files) in a Supabase storage bucket and resolves stored references to
// displayable URLs.
package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
)

// MaxAssetSize caps uploads at 600MB.
const MaxAssetSize = 600 * 1024 * 1024

// Config is parsed by envconfig under the SUPABASE prefix. URL empty
// disables the store; repositories then fall back to the nop resolver.
type Config struct {
	URL    string `split_words:"true"`
	Key    string `split_words:"true"`
	Bucket string `default:"simba-assets"`
}

// AssetStore owns the asset lifecycle: created on upload, removed when the
// owning component or product drops the reference.
type AssetStore struct {
	client *storage_go.Client
	bucket string
}

func NewAssetStore(cfg Config) *AssetStore {
	client := storage_go.NewClient(cfg.URL, cfg.Key, nil)
	return &AssetStore{client: client, bucket: cfg.Bucket}
}

// Upload stores the content under an owner-scoped path and returns the
// reference to persist on the record.
func (s *AssetStore) Upload(ownerID, filename string, size int64, content io.Reader) (string, error) {
	if size > MaxAssetSize {
		return "", errx.Validation("o arquivo excede o limite máximo de 600MB")
	}

	ext := filepath.Ext(filename)
	ref := fmt.Sprintf("%s/%s%s", ownerID, uuid.NewString(), ext)

	if _, err := s.client.UploadFile(s.bucket, ref, content); err != nil {
		return "", errx.Persistence(err)
	}
	return ref, nil
}

// ResolveURL maps a stored reference to a public URL. External URLs pass
// through untouched so records can mix uploaded and linked assets.
func (s *AssetStore) ResolveURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.client.GetPublicUrl(s.bucket, ref).SignedURL
}

// Remove deletes the stored object. Missing objects are not an error; the
// reference is already gone from the record.
func (s *AssetStore) Remove(ref string) error {
	if ref == "" || strings.HasPrefix(ref, "http") {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{ref}); err != nil {
		return errx.Persistence(err)
	}
	return nil
}
