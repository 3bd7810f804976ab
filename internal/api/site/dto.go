package siteapi

import (
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/inquiries"
)

// ContactForm is the public inquiry form. Every field may arrive empty.
type ContactForm struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	PaintingID string `form:"painting_id"`
	Message    string `form:"message"`
}

// Submission trims the form. A painting_id that is not a positive number is
// treated as absent.
func (f ContactForm) Submission() inquiries.Submission {
	s := inquiries.Submission{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
	if id, ok := parseID(f.PaintingID); ok {
		s.PaintingID = &id
	}
	return s
}
