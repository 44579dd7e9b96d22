// internal/models/wheel.go
package models

import "time"

// Wheel is a short video clip, optionally linked to a car listing.
type Wheel struct {
	ID           string    `json:"id"`
	CarID        string    `json:"car_id,omitempty"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Likes        int64     `json:"likes"`
	Views        int64     `json:"views"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Listed       bool      `json:"listed"`
	CreatedAt    time.Time `json:"created_at"`
}

// Present fields obey the same domain rules as creation.
type WheelPatch struct {
	CarID        *string `json:"car_id,omitempty"`
	VideoURL     *string `json:"video_url,omitempty" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Description  *string `json:"description,omitempty"`
	Listed       *bool   `json:"listed,omitempty"`
}

func (p *WheelPatch) Apply(wheel *Wheel) {
	if p.CarID != nil {
		wheel.CarID = *p.CarID
	}
	if p.VideoURL != nil {
		wheel.VideoURL = *p.VideoURL
	}
	if p.ThumbnailURL != nil {
		wheel.ThumbnailURL = *p.ThumbnailURL
	}
	if p.Title != nil {
		wheel.Title = *p.Title
	}
	if p.Description != nil {
		wheel.Description = *p.Description
	}
	if p.Listed != nil {
		wheel.Listed = *p.Listed
	}
}
