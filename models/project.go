package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio entry with manual display ordering
type Project struct {
	ID           uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string         `json:"title" db:"title" gorm:"type:text;not null"`
	Subtitle     *string        `json:"subtitle" db:"subtitle" gorm:"type:text"`
	Description  *string        `json:"description" db:"description" gorm:"type:text"`
	ImageLink    *string        `json:"image_link" db:"image_link" gorm:"type:text"`
	SourceLink   *string        `json:"source_link" db:"source_link" gorm:"type:text"`
	Year         int            `json:"year" db:"year" gorm:"not null"`
	Orders       int            `json:"orders" db:"orders" gorm:"not null;default:0"`
	Tags         datatypes.JSON `json:"tags" db:"tags" gorm:"type:jsonb"`
	Technologies datatypes.JSON `json:"technologies" db:"technologies" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// PublicProjectView is the shape the public site consumes. Its ID is the
// 1-based position in the listing, never the persisted row id.
type PublicProjectView struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Screenshot   string   `json:"screenshot"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Year         string   `json:"year"`
	DetailsLink  string   `json:"detailsLink"`
	Orders       int      `json:"orders"`
}

// PublicView maps a stored project into its public shape, filling display
// fallbacks for anything missing. position is the 1-based index of the row in
// the listing order.
func (p *Project) PublicView(position int) PublicProjectView {
	view := PublicProjectView{
		ID:           position,
		Name:         "Untitled Project",
		Subtitle:     "Project Description",
		Screenshot:   "/placeholder.svg?height=600&width=300",
		Tags:         DecodeStringList(p.Tags),
		Technologies: DecodeStringList(p.Technologies),
		Description:  "No description available.",
		Status:       "In Development",
		Year:         "2024",
		DetailsLink:  "#",
		Orders:       p.Orders,
	}

	if p.Title != "" {
		view.Name = p.Title
	}
	if p.Subtitle != nil && *p.Subtitle != "" {
		view.Subtitle = *p.Subtitle
	}
	if p.ImageLink != nil && *p.ImageLink != "" {
		view.Screenshot = *p.ImageLink
	}
	if p.Description != nil && *p.Description != "" {
		view.Description = *p.Description
	}
	if p.Year != 0 {
		view.Year = strconv.Itoa(p.Year)
	}
	if p.SourceLink != nil && *p.SourceLink != "" {
		view.DetailsLink = *p.SourceLink
	}

	return view
}

// DecodeStringList normalizes a stored tag column into a string slice. Older
// rows hold a JSON-encoded string instead of a proper array, so a first decode
// that yields text is decoded a second time. Anything malformed degrades to an
// empty list rather than an error.
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err == nil {
		if values == nil {
			return []string{}
		}
		return values
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if err := json.Unmarshal([]byte(text), &values); err == nil && values != nil {
			return values
		}
	}

	return []string{}
}

// EncodeStringList stores a string slice as a proper JSON array.
func EncodeStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(encoded)
}
