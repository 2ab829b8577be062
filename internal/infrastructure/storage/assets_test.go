package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURLPassesExternalURLsThrough(t *testing.T) {
	store := NewAssetStore(Config{URL: "https://proj.supabase.co/storage/v1", Key: "key", Bucket: "simba-assets"})

	assert.Equal(t, "", store.ResolveURL(""))
	assert.Equal(t, "https://youtu.be/abc", store.ResolveURL("https://youtu.be/abc"))
	assert.Equal(t, "http://cdn.example.com/x.png", store.ResolveURL("http://cdn.example.com/x.png"))
}

func TestResolveURLBuildsPublicURLForReferences(t *testing.T) {
	store := NewAssetStore(Config{URL: "https://proj.supabase.co/storage/v1", Key: "key", Bucket: "simba-assets"})

	url := store.ResolveURL("merchant-1/capa.png")
	assert.True(t, strings.Contains(url, "simba-assets"))
	assert.True(t, strings.Contains(url, "merchant-1/capa.png"))
}

func TestUploadRejectsOversizedFiles(t *testing.T) {
	store := NewAssetStore(Config{URL: "https://proj.supabase.co/storage/v1", Key: "key", Bucket: "simba-assets"})

	_, err := store.Upload("merchant-1", "curso.mp4", MaxAssetSize+1, strings.NewReader("x"))
	assert.Error(t, err)
}
