package model

// NotificationField is a titled section of a push notification.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification reports the outcome of a push to downstream channels.
type Notification struct {
	Title       string
	Description string
	URL         string
	Failed      bool
	Fields      []NotificationField
}
