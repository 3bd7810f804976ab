package paintings

import (
	"errors"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"gorm.io/gorm"
)

// Create inserts a painting and its three language rows. Blank techniques
// default to the language's "oil on canvas" phrase.
func Create(db *gorm.DB, in Input) (*Painting, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	p := New()
	applyScalars(p, in)
	p.Image = in.Image

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("I18n").Create(p).Error; err != nil {
			return err
		}
		for _, l := range i18n.Supported() {
			technique := in.Techniques[l]
			if technique == "" {
				technique = i18n.DefaultTechnique(l)
			}
			row := PaintingI18n{
				PaintingID:  p.ID,
				Lang:        l.String(),
				Title:       in.Titles[l],
				Description: in.Descriptions[l],
				Technique:   technique,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			p.I18n = append(p.I18n, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites every editable field of painting id. The image is only
// replaced when in.Image is set. Last write wins.
func Update(db *gorm.DB, id uint, in Input) (*Painting, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var p Painting
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"width":        in.Width,
			"height":       in.Height,
			"year":         in.Year,
			"price":        in.Price,
			"is_sold":      in.Sold,
			"is_available": in.Available,
			"is_featured":  in.Featured,
			"sort_order":   in.SortOrder,
		}
		if in.Image != nil {
			updates["image"] = *in.Image
		}
		if err := tx.Model(&Painting{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		for _, l := range i18n.Supported() {
			fields := map[string]interface{}{
				"title":       in.Titles[l],
				"description": in.Descriptions[l],
				"technique":   in.Techniques[l],
			}
			res := tx.Model(&PaintingI18n{}).
				Where("painting_id = ? AND lang = ?", id, l.String()).
				Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				continue
			}
			row := PaintingI18n{
				PaintingID:  id,
				Lang:        l.String(),
				Title:       in.Titles[l],
				Description: in.Descriptions[l],
				Technique:   in.Techniques[l],
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return Get(db, id)
}

// Delete removes a painting and its language rows. Inquiries that reference
// it are left in place.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("painting_id = ?", id).Delete(&PaintingI18n{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Painting{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func applyScalars(p *Painting, in Input) {
	p.Width = in.Width
	p.Height = in.Height
	p.Year = in.Year
	p.Price = in.Price
	p.Sold = in.Sold
	p.Available = in.Available
	p.Featured = in.Featured
	p.SortOrder = in.SortOrder
}
