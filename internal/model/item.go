package model

import "time"

// Item is a reported lost-and-found item. Name and location come straight
// from the report form; description and tags are generated by the completion
// service at report time and never change afterwards.
type Item struct {
	ID          int64
	Name        string
	Description string
	Tags        string
	Location    string
	PhotoMime   string
	CreatedAt   time.Time
}
