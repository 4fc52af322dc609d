package model

import "time"

type RecentlyViewedProduct struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Image    string    `json:"image"`
	Address  string    `json:"address"`
	Slug     string    `json:"slug"`
	ViewedAt time.Time `json:"viewedAt"`
}
