package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["x","y"]`, []string{"x", "y"}},
		{"stringified array", `"[\"x\"]"`, []string{"x"}},
		{"malformed json", `{broken`, []string{}},
		{"stringified garbage", `"not json at all"`, []string{}},
		{"json null", `null`, []string{}},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeStringList(datatypes.JSON(tt.raw)))
		})
	}

	t.Run("empty column", func(t *testing.T) {
		assert.Equal(t, []string{}, DecodeStringList(nil))
	})
}

func TestEncodeStringListRoundTrip(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, DecodeStringList(EncodeStringList([]string{"a", "b"})))
	assert.Equal(t, []string{}, DecodeStringList(EncodeStringList(nil)))
}

func TestPublicView(t *testing.T) {
	t.Run("fallbacks for empty row", func(t *testing.T) {
		var p Project
		view := p.PublicView(3)

		assert.Equal(t, 3, view.ID)
		assert.Equal(t, "Untitled Project", view.Name)
		assert.Equal(t, "Project Description", view.Subtitle)
		assert.Equal(t, "/placeholder.svg?height=600&width=300", view.Screenshot)
		assert.Equal(t, []string{}, view.Tags)
		assert.Equal(t, []string{}, view.Technologies)
		assert.Equal(t, "No description available.", view.Description)
		assert.Equal(t, "In Development", view.Status)
		assert.Equal(t, "2024", view.Year)
		assert.Equal(t, "#", view.DetailsLink)
		assert.Equal(t, 0, view.Orders)
	})

	t.Run("populated row", func(t *testing.T) {
		subtitle := "Side project"
		image := "https://example.com/shot.png"
		source := "https://example.com/repo"
		p := Project{
			Title:      "Portfolio",
			Subtitle:   &subtitle,
			ImageLink:  &image,
			SourceLink: &source,
			Year:       2021,
			Orders:     7,
			Tags:       EncodeStringList([]string{"web"}),
		}

		view := p.PublicView(1)

		assert.Equal(t, 1, view.ID)
		assert.Equal(t, "Portfolio", view.Name)
		assert.Equal(t, "Side project", view.Subtitle)
		assert.Equal(t, image, view.Screenshot)
		assert.Equal(t, []string{"web"}, view.Tags)
		assert.Equal(t, "2021", view.Year)
		assert.Equal(t, source, view.DetailsLink)
		assert.Equal(t, 7, view.Orders)
	})

	t.Run("stringified tags survive", func(t *testing.T) {
		p := Project{Title: "X", Tags: datatypes.JSON(`"[\"x\"]"`)}
		assert.Equal(t, []string{"x"}, p.PublicView(1).Tags)
	})

	t.Run("malformed tags degrade to empty", func(t *testing.T) {
		p := Project{Title: "X", Tags: datatypes.JSON(`{broken`)}
		assert.Equal(t, []string{}, p.PublicView(1).Tags)
	})
}
