package domain

import "time"

// WishlistItem is one saved course as returned by the wishlist API.
type WishlistItem struct {
	ID      int       `json:"id"`
	Course  Course    `json:"course"`
	AddedAt time.Time `json:"added_at,omitempty"`
}
