package paintings

import (
	"errors"

	"gorm.io/gorm"
)

const (
	HomeLimit    = 6
	RelatedLimit = 4
)

// Filter narrows the gallery by sale status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterAvailable Filter = "available"
	FilterSold      Filter = "sold"
)

// ParseFilter maps a query value to a Filter; anything unknown is FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterAvailable, FilterSold:
		return Filter(s)
	default:
		return FilterAll
	}
}

func withText(db *gorm.DB) *gorm.DB {
	return db.Model(&Painting{}).Preload("I18n")
}

func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at DESC")
}

func publicQuery(db *gorm.DB) *gorm.DB {
	return withText(db).Where("is_available = ?", true)
}

// Home returns up to six featured, publicly visible paintings, or the first
// six visible paintings when none are featured.
func Home(db *gorm.DB) ([]Painting, error) {
	var out []Painting
	err := ordered(publicQuery(db).Where("is_featured = ?", true)).
		Limit(HomeLimit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		return out, nil
	}

	err = ordered(publicQuery(db)).Limit(HomeLimit).Find(&out).Error
	return out, err
}

// Gallery lists publicly visible paintings narrowed by f.
func Gallery(db *gorm.DB, f Filter) ([]Painting, error) {
	q := publicQuery(db)
	switch f {
	case FilterAvailable:
		q = q.Where("is_sold = ?", false)
	case FilterSold:
		q = q.Where("is_sold = ?", true)
	}

	var out []Painting
	err := ordered(q).Find(&out).Error
	return out, err
}

// Get loads a painting regardless of its visibility flag.
func Get(db *gorm.DB, id uint) (*Painting, error) {
	var p Painting
	if err := withText(db).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Related returns up to four other visible paintings.
func Related(db *gorm.DB, excludeID uint) ([]Painting, error) {
	var out []Painting
	err := ordered(publicQuery(db).Where("id <> ?", excludeID)).
		Limit(RelatedLimit).
		Find(&out).Error
	return out, err
}

// All lists every painting for the studio, hidden ones included.
func All(db *gorm.DB) ([]Painting, error) {
	var out []Painting
	err := ordered(withText(db)).Find(&out).Error
	return out, err
}

// ByIDs loads the paintings among ids that still exist, keyed by id.
func ByIDs(db *gorm.DB, ids []uint) (map[uint]*Painting, error) {
	out := make(map[uint]*Painting, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []Painting
	if err := withText(db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

type Stats struct {
	Total     int64
	Available int64
	Sold      int64
}

func Count(db *gorm.DB) (Stats, error) {
	var s Stats
	if err := db.Model(&Painting{}).Count(&s.Total).Error; err != nil {
		return s, err
	}
	if err := db.Model(&Painting{}).
		Where("is_sold = ? AND is_available = ?", false, true).
		Count(&s.Available).Error; err != nil {
		return s, err
	}
	if err := db.Model(&Painting{}).Where("is_sold = ?", true).Count(&s.Sold).Error; err != nil {
		return s, err
	}
	return s, nil
}
