package admin

import (
	"net/url"
	"strconv"

	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/inquiries"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
)

// MessageRow is one inquiry in the studio tables.
type MessageRow struct {
	ID            uint
	Name          string
	Email         string
	Phone         string
	Message       string
	Created       string
	IsRead        bool
	PaintingID    uint
	PaintingTitle string
}

func toMessageRows(list []inquiries.WithPainting, lang i18n.Lang) []MessageRow {
	out := make([]MessageRow, 0, len(list))
	for _, m := range list {
		row := MessageRow{
			ID:      m.ID,
			Name:    m.Name,
			Email:   m.Email,
			Phone:   m.Phone,
			Message: m.Message,
			Created: m.CreatedAt.Local().Format("2006-01-02 15:04"),
			IsRead:  m.IsRead,
		}
		if m.PaintingID != nil {
			row.PaintingID = *m.PaintingID
		}
		if m.Painting != nil {
			row.PaintingTitle = m.Painting.Title(lang)
		}
		out = append(out, row)
	}
	return out
}

// PaintingForm carries the painting editor's field values as text, so a
// rejected submission can be shown again exactly as typed.
type PaintingForm struct {
	ID           uint
	Titles       i18n.Localized
	Descriptions i18n.Localized
	Techniques   i18n.Localized
	Width        string
	Height       string
	Year         string
	Price        string
	Order        string
	Sold         bool
	Available    bool
	Featured     bool
	Image        string
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// newPaintingForm is the empty editor: visible, technique prefilled.
func newPaintingForm() PaintingForm {
	f := formFromPainting(paintings.New())
	for _, l := range i18n.Supported() {
		f.Techniques[l] = i18n.DefaultTechnique(l)
	}
	return f
}

func formFromPainting(p *paintings.Painting) PaintingForm {
	f := PaintingForm{
		ID:           p.ID,
		Titles:       p.Titles(),
		Descriptions: p.Descriptions(),
		Techniques:   p.Techniques(),
		Width:        optInt(p.Width),
		Height:       optInt(p.Height),
		Year:         optInt(p.Year),
		Order:        strconv.Itoa(p.SortOrder),
		Sold:         p.Sold,
		Available:    p.Available,
		Featured:     p.Featured,
		Image:        view.ImageURL(p.Image),
	}
	if p.Price != nil {
		f.Price = strconv.FormatFloat(*p.Price, 'f', -1, 64)
	}
	return f
}

func formFromValues(id uint, v url.Values, image string) PaintingForm {
	f := PaintingForm{
		ID:           id,
		Titles:       i18n.Localized{},
		Descriptions: i18n.Localized{},
		Techniques:   i18n.Localized{},
		Width:        v.Get("width"),
		Height:       v.Get("height"),
		Year:         v.Get("year"),
		Price:        v.Get("price"),
		Order:        v.Get("order"),
		Sold:         v.Get("is_sold") == "on",
		Available:    v.Get("is_available") == "on",
		Featured:     v.Get("is_featured") == "on",
		Image:        image,
	}
	for _, l := range i18n.Supported() {
		f.Titles[l] = v.Get("title_" + l.String())
		f.Descriptions[l] = v.Get("description_" + l.String())
		f.Techniques[l] = v.Get("technique_" + l.String())
	}
	return f
}
