package domain

import (
	"slices"
	"time"
)

type AdPlatform string

const (
	AdPlatformFacebook  AdPlatform = "facebook"
	AdPlatformGoogle    AdPlatform = "google"
	AdPlatformInstagram AdPlatform = "instagram"
	AdPlatformTikTok    AdPlatform = "tiktok"
	AdPlatformOther     AdPlatform = "other"
)

var AdPlatforms = []AdPlatform{
	AdPlatformFacebook,
	AdPlatformGoogle,
	AdPlatformInstagram,
	AdPlatformTikTok,
	AdPlatformOther,
}

func (p AdPlatform) Valid() bool {
	return slices.Contains(AdPlatforms, p)
}

type AdAccount struct {
	ID        string     `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	Platform  AdPlatform `json:"platform"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateAdAccountRequest struct {
	Name     string     `json:"name"`
	Platform AdPlatform `json:"platform"`
}
