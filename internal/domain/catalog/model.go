package catalog

import "time"

// Thumbnail is the image attachment of a product. When stored locally
// the URL carries the inline-encoded image data rather than a remote
// location.
type Thumbnail struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Key          string    `json:"key"`
	IDModule     string    `json:"idModule"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Product is a catalog entry. The local store mirrors the full record,
// thumbnail data included.
type Product struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      bool       `json:"status"`
	IDThumbnail string     `json:"idThumbnail"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
}

// Patch carries partial product fields for an update. Nil fields are
// left untouched by Apply.
type Patch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *bool      `json:"status,omitempty"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
}

// Apply merges the patch into p and refreshes its update timestamp.
func (patch Patch) Apply(p *Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = patch.Thumbnail
		p.IDThumbnail = patch.Thumbnail.ID
	}
	p.UpdatedAt = time.Now()
}

// IsZero reports whether the patch changes nothing.
func (patch Patch) IsZero() bool {
	return patch.Title == nil && patch.Description == nil &&
		patch.Status == nil && patch.Thumbnail == nil
}
