package domain

// PricingPlan represents one subscription tier.
type PricingPlan struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Interval   string   `json:"interval"`
	Features   []string `json:"features,omitempty"`
	IsPopular  bool     `json:"is_popular"`
}

// Testimonial is a student review shown on marketing surfaces.
type Testimonial struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Quote     string  `json:"quote"`
	Rating    float64 `json:"rating,omitempty"`
}
