package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avelez/portfolio-backend/errs"
)

// ParseProjectForm coerces a raw admin form submission into a Project. It is
// the single validation path for both create and update. Blank optional
// fields are stored as NULL; year and orders default only when the form key
// is absent entirely, a submitted but unparseable value is rejected.
func ParseProjectForm(form url.Values) (*Project, error) {
	title := strings.TrimSpace(form.Get("title"))
	if title == "" {
		return nil, errs.NewBadRequestError("Title is required.")
	}

	year := time.Now().Year()
	if form.Has("year") {
		parsed, err := strconv.Atoi(strings.TrimSpace(form.Get("year")))
		if err != nil {
			return nil, errs.NewBadRequestError("Year must be a valid number.")
		}
		year = parsed
	}

	orders := 0
	if form.Has("orders") {
		parsed, err := strconv.Atoi(strings.TrimSpace(form.Get("orders")))
		if err != nil {
			return nil, errs.NewBadRequestError("Orders must be a valid number.")
		}
		orders = parsed
	}

	return &Project{
		Title:        title,
		Subtitle:     optionalField(form, "subtitle"),
		Description:  optionalField(form, "description"),
		ImageLink:    optionalField(form, "image_link"),
		SourceLink:   optionalField(form, "source_link"),
		Year:         year,
		Orders:       orders,
		Tags:         EncodeStringList(SplitList(form.Get("tags"))),
		Technologies: EncodeStringList(SplitList(form.Get("technologies"))),
	}, nil
}

// SplitList turns a comma-separated input into trimmed non-empty parts,
// preserving order.
func SplitList(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// optionalField trims a form value and maps the empty string to NULL.
func optionalField(form url.Values, key string) *string {
	value := strings.TrimSpace(form.Get(key))
	if value == "" {
		return nil
	}
	return &value
}
