package repositories

// AssetResolver turns a stored asset reference into a URL the rendering
// layer can use. Repositories resolve references on every read so callers
// never see a bare reference.
type AssetResolver interface {
	ResolveURL(ref string) string
}

// NopResolver returns references unchanged. Useful in tests and when no
// asset storage is configured.
type NopResolver struct{}

func (NopResolver) ResolveURL(ref string) string {
	return ref
}
