package models

import (
	"errors"
	"image"
	"sync"
	"time"
)

// ErrNoAvatar is returned when an operation needs an avatar and none is loaded.
var ErrNoAvatar = errors.New("no avatar loaded")

// AvatarImage is a decoded avatar with its metadata.
type AvatarImage struct {
	Image     image.Image
	Width     int
	Height    int
	MediaType string
	Source    string
	Metadata  ImageMetadata
}

// ImageMetadata contains additional information about the avatar
type ImageMetadata struct {
	FileSize   int64
	Format     string
	LoadTime   time.Time
	DecodeTime time.Duration
}

// NewAvatarImage fills in dimensions from the decoded image.
func NewAvatarImage(img image.Image, mediaType, source string) *AvatarImage {
	bounds := img.Bounds()
	return &AvatarImage{
		Image:     img,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		MediaType: mediaType,
		Source:    source,
	}
}

// ImageRepository holds the current avatar. A new drop replaces it wholesale.
type ImageRepository struct {
	mu      sync.RWMutex
	avatar  *AvatarImage
	history []string
	maxKept int
}

// NewImageRepository creates a new image repository
func NewImageRepository() *ImageRepository {
	return &ImageRepository{
		history: make([]string, 0),
		maxKept: 10,
	}
}

// SetAvatar stores the loaded avatar
func (r *ImageRepository) SetAvatar(avatar *AvatarImage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.avatar = avatar
	r.history = append(r.history, avatar.Source)
	if len(r.history) > r.maxKept {
		r.history = r.history[1:]
	}
}

// Avatar returns the current avatar, or ErrNoAvatar.
func (r *ImageRepository) Avatar() (*AvatarImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.avatar == nil {
		return nil, ErrNoAvatar
	}
	return r.avatar, nil
}

// Sources lists the most recent avatar sources, oldest first.
func (r *ImageRepository) Sources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// GetImageStats returns statistics about the stored avatar
func (r *ImageRepository) GetImageStats() ImageStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := ImageStats{
		HasAvatar:   r.avatar != nil,
		LoadedCount: len(r.history),
	}
	if r.avatar != nil {
		stats.MemoryUsage = int64(r.avatar.Width * r.avatar.Height * 4)
	}
	return stats
}

// ImageStats contains statistics about the image repository
type ImageStats struct {
	HasAvatar   bool
	LoadedCount int
	MemoryUsage int64
}

// Shutdown releases the avatar.
func (r *ImageRepository) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.avatar = nil
	r.history = r.history[:0]
}
