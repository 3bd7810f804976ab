package database

import (
	_ "embed"
	"fmt"

	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/site"
	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Settings  map[string]map[string]string `yaml:"settings"`
	Paintings []seedPainting               `yaml:"paintings"`
}

type seedPainting struct {
	Title       map[string]string `yaml:"title"`
	Description map[string]string `yaml:"description"`
	Width       *int              `yaml:"width"`
	Height      *int              `yaml:"height"`
	Year        *int              `yaml:"year"`
	Price       *float64          `yaml:"price"`
	Image       string            `yaml:"image"`
	Featured    bool              `yaml:"featured"`
	Order       int               `yaml:"order"`
}

func localized(m map[string]string) i18n.Localized {
	out := i18n.Localized{}
	for k, v := range m {
		if l, ok := i18n.Parse(k); ok {
			out[l] = v
		}
	}
	return out
}

func parseSeed(raw []byte) (*seedFile, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// Seed inserts the initial catalogue and site settings. It does nothing when
// any painting already exists. imageExists decides whether a painting keeps
// its image reference; missing files are dropped with a warning.
func Seed(db *gorm.DB, imageExists func(name string) bool) (int, error) {
	log := logger.Get()

	var n int64
	if err := db.Model(&paintings.Painting{}).Count(&n).Error; err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("paintings", n).Msg("paintings already exist, skipping seed")
		return 0, nil
	}

	f, err := parseSeed(seedYAML)
	if err != nil {
		return 0, err
	}

	for key, vals := range f.Settings {
		if err := site.Put(db, key, localized(vals)); err != nil {
			return 0, fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	created := 0
	for _, sp := range f.Paintings {
		in := paintings.Input{
			Titles:       localized(sp.Title),
			Descriptions: localized(sp.Description),
			Techniques:   i18n.Localized{},
			Width:        sp.Width,
			Height:       sp.Height,
			Year:         sp.Year,
			Price:        sp.Price,
			Featured:     sp.Featured,
			Available:    true,
			SortOrder:    sp.Order,
		}
		if sp.Image != "" {
			if imageExists(sp.Image) {
				img := sp.Image
				in.Image = &img
			} else {
				log.Warn().Str("file", sp.Image).Msg("seed image not found")
			}
		}
		p, err := paintings.Create(db, in)
		if err != nil {
			return created, fmt.Errorf("seed painting %q: %w", sp.Title["en"], err)
		}
		created++
		log.Info().Uint("painting_id", p.ID).Str("title", p.Title(i18n.English)).Msg("seeded painting")
	}
	return created, nil
}
