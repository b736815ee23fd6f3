package service

import (
	"context"
)

// PushNotification is one alert rendered for phones.
type PushNotification struct {
	Title string
	Body  string
	// Urgent asks the platforms to wake the phone.
	Urgent bool
	Data   map[string]string
}

// MulticastReport tallies one multicast. InvalidTokens lists the tokens the
// provider no longer accepts and that should be deactivated.
type MulticastReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers pushes to phones.
type NotificationService interface {
	// SendMulticast sends one notification to at most MaxMulticastTokens tokens.
	SendMulticast(ctx context.Context, tokens []string, notification *PushNotification) (*MulticastReport, error)
}

// MaxMulticastTokens is the FCM multicast limit.
const MaxMulticastTokens = 500
