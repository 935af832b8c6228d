package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the social or web channel a referral code is shared on.
type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformX         Platform = "X"
	PlatformLinkedIn  Platform = "LINKEDIN"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformWhatsApp  Platform = "WHATSAPP"
	PlatformTelegram  Platform = "TELEGRAM"
	PlatformWebsite   Platform = "WEBSITE"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformYouTube,
	PlatformX,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformWhatsApp,
	PlatformTelegram,
	PlatformWebsite,
}

// ParsePlatform normalises s and returns the matching Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", ErrInvalidPlatform
}

// ReferralCode is a short public token identifying a member's promotional
// link on one platform. Codes are immutable once created.
type ReferralCode struct {
	ID        uuid.UUID
	Code      string
	MemberID  uuid.UUID
	Platform  Platform
	CreatedAt time.Time
}
