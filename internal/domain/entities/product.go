package entities

import "time"

// Product types supported by the platform
const (
	ProductTypeEbook       = "ebook"
	ProductTypeCourse      = "course"
	ProductTypeApplication = "application"
)

// Product statuses
const (
	ProductStatusActive = "active"
	ProductStatusDraft  = "draft"
)

// Offer é um preço alternativo nomeado do produto. Exatamente uma oferta
// por produto é marcada como padrão e o preço do produto espelha essa oferta.
type Offer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	IsDefault bool    `json:"is_default"`
}

// OrderBump is an additional line item offered at checkout time alongside
// the primary product. It never becomes a separate purchase record.
type OrderBump struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ImageRef    string  `json:"image_ref,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
	IsEnabled   bool    `json:"is_enabled"`
}

type Coupon struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	IsActive   bool    `json:"is_active"`
}

type Coproducer struct {
	Email      string    `json:"email"`
	Percentage float64   `json:"percentage"`
	Status     string    `json:"status"` // pending | confirmed
	InvitedAt  time.Time `json:"invited_at"`
}

type PixelConfig struct {
	Facebook  *FacebookPixel  `json:"facebook,omitempty"`
	GoogleAds *GoogleAdsPixel `json:"google_ads,omitempty"`
	TikTok    *TikTokPixel    `json:"tiktok,omitempty"`
	GA4       *GA4Pixel       `json:"ga4,omitempty"`
}

type FacebookPixel struct {
	PixelID  string `json:"pixel_id"`
	APIToken string `json:"api_token,omitempty"`
	Domain   string `json:"domain,omitempty"`
}

type GoogleAdsPixel struct {
	ConversionID    string `json:"conversion_id"`
	ConversionLabel string `json:"conversion_label"`
}

type TikTokPixel struct {
	PixelID string `json:"pixel_id"`
}

type GA4Pixel struct {
	MeasurementID string `json:"measurement_id"`
}

// FunnelConfig drives the post-purchase funnel. A redirect URL always wins
// over a product reference; a downsell is only reachable when an upsell
// path exists.
type FunnelConfig struct {
	UpsellProductID   string  `json:"upsell_product_id,omitempty"`
	UpsellPageURL     string  `json:"upsell_page_url,omitempty"`
	UpsellPrice       float64 `json:"upsell_price,omitempty"`
	DownsellProductID string  `json:"downsell_product_id,omitempty"`
	DownsellPageURL   string  `json:"downsell_page_url,omitempty"`
	DownsellPrice     float64 `json:"downsell_price,omitempty"`
}

// HasUpsell reports whether any upsell path is configured.
func (f *FunnelConfig) HasUpsell() bool {
	return f != nil && (f.UpsellPageURL != "" || f.UpsellProductID != "")
}

// HasDownsell reports whether any downsell path is configured.
func (f *FunnelConfig) HasDownsell() bool {
	return f != nil && (f.DownsellPageURL != "" || f.DownsellProductID != "")
}

// ProductLinks are generated on first save and never regenerated.
type ProductLinks struct {
	Checkout  string `json:"checkout"`
	SalesPage string `json:"sales_page"`
}

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id"`
	OwnerID     string    `json:"owner_id" gorm:"column:owner_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
	Name        string    `json:"name" gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`

	// Price mirrors the default offer's price at all times.
	Price float64 `json:"price" gorm:"column:price"`

	ProductType string `json:"product_type" gorm:"column:product_type"`
	Format      string `json:"format,omitempty" gorm:"column:format"`
	Status      string `json:"status" gorm:"column:status"`

	// Delivery payload: a stored file for ebooks, an external link otherwise.
	FileRef    string `json:"file_ref,omitempty" gorm:"column:file_ref"`
	FileURL    string `json:"file_url,omitempty" gorm:"-"`
	AccessLink string `json:"access_link,omitempty" gorm:"column:access_link"`

	ImageRef string `json:"image_ref,omitempty" gorm:"column:image_ref"`
	ImageURL string `json:"image_url,omitempty" gorm:"-"`

	SalesPageURL    string   `json:"sales_page_url,omitempty" gorm:"column:sales_page_url"`
	DeliveryMessage string   `json:"delivery_message,omitempty" gorm:"column:delivery_message"`
	Category        string   `json:"category,omitempty" gorm:"column:category"`
	PaymentType     string   `json:"payment_type,omitempty" gorm:"column:payment_type"`
	Tags            []string `json:"tags,omitempty" gorm:"column:tags;serializer:json"`

	SalesCount int     `json:"sales_count" gorm:"column:sales_count"`
	Revenue    float64 `json:"revenue" gorm:"column:revenue"`

	Offers         []Offer      `json:"offers" gorm:"column:offers;serializer:json"`
	OrderBumps     []OrderBump  `json:"order_bumps,omitempty" gorm:"column:order_bumps;serializer:json"`
	Coupons        []Coupon     `json:"coupons,omitempty" gorm:"column:coupons;serializer:json"`
	CouponsEnabled bool         `json:"coupons_enabled" gorm:"column:coupons_enabled"`
	Coproducers    []Coproducer `json:"coproducers,omitempty" gorm:"column:coproducers;serializer:json"`

	Pixels         *PixelConfig    `json:"pixels,omitempty" gorm:"column:pixels;serializer:json"`
	Funnel         *FunnelConfig   `json:"funnel,omitempty" gorm:"column:funnel;serializer:json"`
	CheckoutConfig *CheckoutConfig `json:"checkout_config,omitempty" gorm:"column:checkout_config;serializer:json"`
	Links          *ProductLinks   `json:"links,omitempty" gorm:"column:links;serializer:json"`

	// Connects the product to a course in the members area. Fulfillment
	// resolves it after a successful purchase; this service only stores it.
	LinkedCourseID string `json:"linked_course_id,omitempty" gorm:"column:linked_course_id"`
}

func (Product) TableName() string {
	return "products"
}

// DefaultOffer returns the offer flagged as default. The second return is
// false only for a product that has no offers at all.
func (p *Product) DefaultOffer() (Offer, bool) {
	for _, o := range p.Offers {
		if o.IsDefault {
			return o, true
		}
	}
	return Offer{}, false
}

// FindBump returns the bump with the given id.
func (p *Product) FindBump(id string) (OrderBump, bool) {
	for _, b := range p.OrderBumps {
		if b.ID == id {
			return b, true
		}
	}
	return OrderBump{}, false
}

// FindCoupon matches an active coupon by code. Matching is exact.
func (p *Product) FindCoupon(code string) (Coupon, bool) {
	if !p.CouponsEnabled {
		return Coupon{}, false
	}
	for _, c := range p.Coupons {
		if c.Code == code && c.IsActive {
			return c, true
		}
	}
	return Coupon{}, false
}
