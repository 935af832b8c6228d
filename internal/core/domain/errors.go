package domain

import "errors"

// Input and authorization failures.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)

// Lookup failures along the attribution chain.
var (
	ErrReferralNotFound     = errors.New("referral code not found")
	ErrInvalidMember        = errors.New("referral code member not found")
	ErrProductNotFound      = errors.New("product not found for brand")
	ErrProductNotInCampaign = errors.New("product not part of campaign")
	ErrScopeNotFound        = errors.New("scope not found")
	ErrNotFound             = errors.New("not found")
)

// State conflicts.
var (
	ErrCampaignInactive       = errors.New("campaign is not active")
	ErrCampaignAlreadyStarted = errors.New("campaign already started")
	ErrCampaignNotActive      = errors.New("campaign must be active to complete")
	ErrSubscriptionInactive   = errors.New("subscription is not active")
	ErrFreeTrialUsed          = errors.New("free trial already used")
	ErrInviteAccepted         = errors.New("invite already accepted")
	ErrCodeTaken              = errors.New("referral code already taken")
	ErrCodeSpaceExhausted     = errors.New("could not allocate a unique referral code")
)
