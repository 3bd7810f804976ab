package site

import (
	"errors"
	"strings"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const AboutText = "about_text"

// SiteSetting is a keyed, localized value. Rows are written by seed only.
type SiteSetting struct {
	ID   uint              `gorm:"primaryKey" json:"id"`
	Key  string            `gorm:"size:50;not null;uniqueIndex" json:"key"`
	I18n []SiteSettingI18n `gorm:"foreignKey:SettingID;constraint:OnDelete:CASCADE;" json:"i18n,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SiteSettingI18n struct {
	SettingID uint   `gorm:"primaryKey" json:"-"`
	Lang      string `gorm:"primaryKey;size:2" json:"lang"`
	Value     string `gorm:"type:text" json:"value"`
}

// Value returns the setting for lang. Unsupported languages read English.
// ok is false when the key is absent or its value is blank.
func Value(db *gorm.DB, key string, lang i18n.Lang) (string, bool, error) {
	var s SiteSetting
	err := db.Preload("I18n").Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	vals := i18n.Localized{}
	for _, row := range s.I18n {
		vals[i18n.Lang(row.Lang)] = row.Value
	}
	v := vals.Get(lang)
	return v, strings.TrimSpace(v) != "", nil
}

// Put creates or replaces key's localized values.
func Put(db *gorm.DB, key string, values i18n.Localized) error {
	return db.Transaction(func(tx *gorm.DB) error {
		s := SiteSetting{Key: key}
		if err := tx.Where("key = ?", key).FirstOrCreate(&s).Error; err != nil {
			return err
		}
		for _, l := range i18n.Supported() {
			row := SiteSettingI18n{SettingID: s.ID, Lang: string(l), Value: values[l]}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_id"}, {Name: "lang"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
