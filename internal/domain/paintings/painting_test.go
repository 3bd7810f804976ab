package paintings

import (
	"testing"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSizeDisplay(t *testing.T) {
	tests := []struct {
		name   string
		w, h   *int
		want   string
		wantOK bool
	}{
		{"both", intPtr(50), intPtr(70), "50 × 70 cm", true},
		{"width only", intPtr(50), nil, "", false},
		{"height only", nil, intPtr(70), "", false},
		{"neither", nil, nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Painting{Width: tt.w, Height: tt.h}
			got, ok := p.SizeDisplay()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalizedAccessors(t *testing.T) {
	p := Painting{I18n: []PaintingI18n{
		{Lang: "uk", Title: "Море", Description: "Опис", Technique: "Олія на полотні"},
		{Lang: "en", Title: "Sea", Description: "", Technique: "Oil on canvas"},
		{Lang: "ru", Title: "Море", Description: "Описание", Technique: ""},
	}}

	assert.Equal(t, "Sea", p.Title(i18n.English))
	assert.Equal(t, "Море", p.Title(i18n.Ukrainian))
	assert.Equal(t, "Sea", p.Title(i18n.Lang("fr")))
	assert.Equal(t, "Oil on canvas", p.Technique(i18n.Lang("de")))

	// Supported language with blank data does not fall back.
	assert.Equal(t, "", p.Description(i18n.English))
	assert.Equal(t, "", p.Technique(i18n.Russian))
}

func TestLocalizedAccessors_MissingRow(t *testing.T) {
	p := Painting{I18n: []PaintingI18n{{Lang: "en", Title: "Sea"}}}

	assert.Equal(t, "", p.Title(i18n.Ukrainian))
	assert.Equal(t, i18n.Localized{i18n.English: "Sea"}, p.Titles())
}

func TestNew_Defaults(t *testing.T) {
	p := New()
	assert.True(t, p.Available)
	assert.False(t, p.Sold)
	assert.False(t, p.Featured)
	assert.Equal(t, 0, p.SortOrder)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterAvailable, ParseFilter("available"))
	assert.Equal(t, FilterSold, ParseFilter("sold"))
	assert.Equal(t, FilterAll, ParseFilter("all"))
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
}
