package inquiries

import (
	"errors"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("message not found")

// ContactMessage is an inquiry from the public contact form. PaintingID is a
// weak reference: no foreign key, and deleting the painting leaves the
// message intact.
type ContactMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:120;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone,omitempty"`
	PaintingID *uint     `gorm:"index" json:"painting_id,omitempty"`
	Message    string    `gorm:"type:text" json:"message,omitempty"`
	IsRead     bool      `gorm:"not null;index" json:"is_read"`
	CreatedAt  time.Time `gorm:"<-:create;index" json:"created_at"`
}

// Submission is what the contact form posts.
type Submission struct {
	Name       string
	Email      string
	Phone      string
	PaintingID *uint
	Message    string
}

// WithPainting pairs a message with its referenced painting, if it still
// exists.
type WithPainting struct {
	ContactMessage
	Painting *paintings.Painting
}

func Create(db *gorm.DB, s Submission) (*ContactMessage, error) {
	m := ContactMessage{
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		PaintingID: s.PaintingID,
		Message:    s.Message,
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func Get(db *gorm.DB, id uint) (*ContactMessage, error) {
	var m ContactMessage
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Recent lists messages newest first; limit <= 0 means all.
func Recent(db *gorm.DB, limit int) ([]WithPainting, error) {
	q := db.Model(&ContactMessage{}).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []ContactMessage
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return attachPaintings(db, rows)
}

// attachPaintings resolves each message's painting with one lookup. Dangling
// references resolve to nil.
func attachPaintings(db *gorm.DB, rows []ContactMessage) ([]WithPainting, error) {
	var ids []uint
	seen := map[uint]bool{}
	for _, m := range rows {
		if m.PaintingID != nil && !seen[*m.PaintingID] {
			seen[*m.PaintingID] = true
			ids = append(ids, *m.PaintingID)
		}
	}
	byID, err := paintings.ByIDs(db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]WithPainting, 0, len(rows))
	for _, m := range rows {
		wp := WithPainting{ContactMessage: m}
		if m.PaintingID != nil {
			wp.Painting = byID[*m.PaintingID]
		}
		out = append(out, wp)
	}
	return out, nil
}

// PaintingFor resolves the message's painting reference, nil when unset or
// dangling.
func PaintingFor(db *gorm.DB, m *ContactMessage) (*paintings.Painting, error) {
	if m.PaintingID == nil {
		return nil, nil
	}
	p, err := paintings.Get(db, *m.PaintingID)
	if errors.Is(err, paintings.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func UnreadCount(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&ContactMessage{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}

// MarkRead sets is_read. Marking an already read message succeeds.
func MarkRead(db *gorm.DB, id uint) error {
	if _, err := Get(db, id); err != nil {
		return err
	}
	return db.Model(&ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
}

func Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
