package entity

// Destination is the closed set of screens the app can be routed to.
type Destination string

const (
	DestinationWelcome Destination = "WELCOME"
	DestinationHome    Destination = "HOME"
	DestinationProfile Destination = "PROFILE"
)
