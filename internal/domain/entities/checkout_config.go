package entities

// ComponentType identifies one visual block on the checkout page.
type ComponentType string

const (
	ComponentHeader ComponentType = "header"
	ComponentImage  ComponentType = "image"
	ComponentVideo  ComponentType = "video"
	ComponentTimer  ComponentType = "timer"
	ComponentText   ComponentType = "text"
	ComponentForm   ComponentType = "form"
	ComponentSeal   ComponentType = "seal"
)

// Video sources
const (
	VideoSourceExternal = "external"
	VideoSourceLocal    = "local"
)

// ImageSettings holds the checkout cover image, separate from the product
// image.
type ImageSettings struct {
	AssetRef string `json:"asset_ref,omitempty"`
	URL      string `json:"url,omitempty"`
}

// VideoSettings holds the sales video shown on the checkout page. Source
// picks between an external URL and a locally uploaded asset.
type VideoSettings struct {
	Source   string `json:"source,omitempty"`
	URL      string `json:"url,omitempty"`
	AssetRef string `json:"asset_ref,omitempty"`
	AssetURL string `json:"asset_url,omitempty"`
}

// HasContent reports whether the video component has anything to show.
// A contentless video renders nothing on the page.
func (v VideoSettings) HasContent() bool {
	if v.Source == VideoSourceLocal {
		return v.AssetRef != ""
	}
	return v.URL != ""
}

type TimerSettings struct {
	Enabled         bool   `json:"enabled"`
	Minutes         int    `json:"minutes"`
	Text            string `json:"text"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

// NewTimerSettings returns the countdown defaults used when the timer
// component is first enabled.
func NewTimerSettings() *TimerSettings {
	return &TimerSettings{
		Enabled:         false,
		Minutes:         15,
		Text:            "Oferta por tempo limitado",
		BackgroundColor: "#ef4444",
		TextColor:       "#ffffff",
	}
}

// CheckoutConfig is the ordered list of enabled visual components plus
// their settings. It is embedded in the product and saved with it; there
// is no independent versioning.
type CheckoutConfig struct {
	Components   []ComponentType `json:"components"`
	PrimaryColor string          `json:"primary_color"`
	Image        ImageSettings   `json:"image"`
	Video        VideoSettings   `json:"video"`
	Timer        *TimerSettings  `json:"timer,omitempty"`
}

// NewCheckoutConfig returns the layout a product starts with.
func NewCheckoutConfig() *CheckoutConfig {
	return &CheckoutConfig{
		Components:   []ComponentType{ComponentHeader, ComponentVideo, ComponentForm, ComponentSeal},
		PrimaryColor: "#10b981",
		Video:        VideoSettings{Source: VideoSourceExternal},
		Timer:        NewTimerSettings(),
	}
}

// HasComponent reports whether the component is present in the sequence.
func (c *CheckoutConfig) HasComponent(t ComponentType) bool {
	for _, existing := range c.Components {
		if existing == t {
			return true
		}
	}
	return false
}
