package view

import (
	"html/template"
	"net/url"
	"strconv"

	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
)

// ImagePrefix is the URL path the image store is served under.
const ImagePrefix = "/static/images/paintings/"

// Card is a painting flattened for one language.
type Card struct {
	ID              uint
	Title           string
	Description     string
	DescriptionHTML template.HTML
	Technique       string
	Size            string
	Year            string
	Price           string
	Sold            bool
	Available       bool
	Featured        bool
	Order           int
	Image           string
}

func ImageURL(name *string) string {
	if name == nil || *name == "" {
		return ""
	}
	return ImagePrefix + url.PathEscape(*name)
}

func NewCard(p *paintings.Painting, lang i18n.Lang) Card {
	c := Card{
		ID:          p.ID,
		Title:       p.Title(lang),
		Description: p.Description(lang),
		Technique:   p.Technique(lang),
		Sold:        p.Sold,
		Available:   p.Available,
		Featured:    p.Featured,
		Order:       p.SortOrder,
		Image:       ImageURL(p.Image),
	}
	if c.Description != "" {
		c.DescriptionHTML = template.HTML(middleware.CleanRichText(c.Description))
	}
	if size, ok := p.SizeDisplay(); ok {
		c.Size = size
	}
	if p.Year != nil {
		c.Year = strconv.Itoa(*p.Year)
	}
	if p.Price != nil {
		c.Price = i18n.FormatPrice(lang, *p.Price)
	}
	return c
}

func NewCards(ps []paintings.Painting, lang i18n.Lang) []Card {
	out := make([]Card, 0, len(ps))
	for i := range ps {
		out = append(out, NewCard(&ps[i], lang))
	}
	return out
}
