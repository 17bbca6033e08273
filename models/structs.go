package models

import "time"

// ExtractionResult holds the unique tokens found in one piece of text.
// Both slices are deduplicated by exact (case-sensitive) string equality and
// carry their leading marker. Order is unspecified.
type ExtractionResult struct {
	Mentions []string `json:"mentions"`
	Hashtags []string `json:"hashtags"`
}

// Caption is one ingested piece of social text plus what we extracted from it.
type Caption struct {
	CaptionID string    `json:"captionid" bson:"captionid"`
	UserID    string    `json:"userid" bson:"userid"`
	Text      string    `json:"text" bson:"text"`
	Mentions  []string  `json:"mentions" bson:"mentions"`
	Hashtags  []string  `json:"hashtags" bson:"hashtags"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Tag is the index document linking one token to every caption it appeared in.
// Kind is "hashtag" or "mention".
type Tag struct {
	Name          string    `json:"name" bson:"name"`
	Kind          string    `json:"kind" bson:"kind"`
	Captions      []string  `json:"captions" bson:"captions"`
	TotalCaptions int       `json:"totalcaptions" bson:"totalcaptions"`
	UpdatedAt     time.Time `json:"updatedat" bson:"updatedat"`
}

// TrendingTag is the shape returned by the trending endpoint.
type TrendingTag struct {
	Tag   string  `json:"tag"`
	Count float64 `json:"count"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}
