package domain

import (
	"errors"
	"time"
)

var ErrVideoNotFound = errors.New("video not found")

// Default display transformation applied when the client omits one.
const (
	TransformationWidth      = 1080
	TransformationHeight     = 1920
	TransformationMaxQuality = 100
)

// Transformation describes how the player should render the video.
type Transformation struct {
	Width   int `json:"width" bson:"width"`
	Height  int `json:"height" bson:"height"`
	Quality int `json:"quality" bson:"quality"`
}

// Video is the metadata record stored for each uploaded file. The file bytes
// themselves live with the media provider; FileURL points at them.
type Video struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Title          string         `json:"title" bson:"title"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	FileURL        string         `json:"file_url" bson:"file_url"`
	ThumbnailURL   string         `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	Controls       bool           `json:"controls" bson:"controls"`
	Transformation Transformation `json:"transformation" bson:"transformation"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}
