package paintings

import (
	"fmt"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
)

// Painting is a catalogue entry. Text fields live in I18n, one row per
// language.
type Painting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Width  *int     `json:"width,omitempty"`  // cm
	Height *int     `json:"height,omitempty"` // cm
	Year   *int     `json:"year,omitempty"`
	Price  *float64 `json:"price,omitempty"` // USD

	// Boolean flags carry no column default: gorm skips zero values for
	// columns with defaults, which would turn an explicit false into true.
	Sold      bool `gorm:"column:is_sold;not null;index" json:"is_sold"`
	Available bool `gorm:"column:is_available;not null;index" json:"is_available"`
	Featured  bool `gorm:"column:is_featured;not null" json:"is_featured"`

	Image *string `gorm:"size:255" json:"image,omitempty"`

	SortOrder int `gorm:"column:sort_order;not null;default:0;index" json:"order"`

	I18n []PaintingI18n `gorm:"foreignKey:PaintingID" json:"i18n,omitempty"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaintingI18n struct {
	PaintingID  uint   `gorm:"primaryKey"`
	Lang        string `gorm:"primaryKey;size:2"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Technique   string `gorm:"size:100" json:"technique,omitempty"`
}

// New returns a painting with the catalogue defaults applied.
func New() *Painting {
	return &Painting{Available: true}
}

func (p *Painting) translation(lang i18n.Lang) PaintingI18n {
	if !lang.IsSupported() {
		lang = i18n.Fallback
	}
	for _, t := range p.I18n {
		if t.Lang == string(lang) {
			return t
		}
	}
	return PaintingI18n{}
}

func (p *Painting) Title(lang i18n.Lang) string       { return p.translation(lang).Title }
func (p *Painting) Description(lang i18n.Lang) string { return p.translation(lang).Description }
func (p *Painting) Technique(lang i18n.Lang) string   { return p.translation(lang).Technique }

// Titles returns all title variants keyed by language.
func (p *Painting) Titles() i18n.Localized {
	return p.collect(func(t PaintingI18n) string { return t.Title })
}

func (p *Painting) Descriptions() i18n.Localized {
	return p.collect(func(t PaintingI18n) string { return t.Description })
}

func (p *Painting) Techniques() i18n.Localized {
	return p.collect(func(t PaintingI18n) string { return t.Technique })
}

func (p *Painting) collect(field func(PaintingI18n) string) i18n.Localized {
	out := i18n.Localized{}
	for _, t := range p.I18n {
		out[i18n.Lang(t.Lang)] = field(t)
	}
	return out
}

// SizeDisplay formats "{width} × {height} cm". ok is false unless both
// dimensions are set.
func (p *Painting) SizeDisplay() (string, bool) {
	if p.Width == nil || p.Height == nil {
		return "", false
	}
	return fmt.Sprintf("%d × %d cm", *p.Width, *p.Height), true
}
