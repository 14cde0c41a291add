package domain

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice"`
	Category      string    `json:"category"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
}
