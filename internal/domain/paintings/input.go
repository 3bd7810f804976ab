package paintings

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
)

// Input is a parsed admin painting form.
type Input struct {
	Titles       i18n.Localized
	Descriptions i18n.Localized
	Techniques   i18n.Localized

	Width  *int
	Height *int
	Year   *int
	Price  *float64

	Sold      bool
	Available bool
	Featured  bool
	SortOrder int

	// Image is set only when a new file was stored for this submission.
	Image *string
}

// ParseInput reads the painting form. Blank numeric fields become nil (order
// becomes 0); non-blank values that do not parse are rejected with a
// *FormError. Checkbox flags are true when the field is present with "on".
func ParseInput(form url.Values) (Input, error) {
	in := Input{
		Titles:       i18n.Localized{},
		Descriptions: i18n.Localized{},
		Techniques:   i18n.Localized{},
	}
	for _, l := range i18n.Supported() {
		in.Titles[l] = strings.TrimSpace(form.Get("title_" + l.String()))
		in.Descriptions[l] = strings.TrimSpace(form.Get("description_" + l.String()))
		in.Techniques[l] = strings.TrimSpace(form.Get("technique_" + l.String()))
	}

	var err error
	if in.Width, err = parseDimension(form, "width"); err != nil {
		return in, err
	}
	if in.Height, err = parseDimension(form, "height"); err != nil {
		return in, err
	}
	if in.Year, err = parseInt(form, "year"); err != nil {
		return in, err
	}
	if in.Price, err = parsePrice(form); err != nil {
		return in, err
	}
	order, err := parseInt(form, "order")
	if err != nil {
		return in, err
	}
	if order != nil {
		in.SortOrder = *order
	}

	in.Sold = checkbox(form, "is_sold")
	in.Available = checkbox(form, "is_available")
	in.Featured = checkbox(form, "is_featured")
	return in, nil
}

// ValidateCreate enforces the creation-time rule that every language has a
// title.
func (in Input) ValidateCreate() error {
	for _, l := range i18n.Supported() {
		if in.Titles[l] == "" {
			return ErrTitleRequired
		}
	}
	return nil
}

func checkbox(form url.Values, field string) bool {
	return form.Get(field) == "on"
}

func parseInt(form url.Values, field string) (*int, error) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &FormError{Field: field, Value: raw, Reason: "not an integer"}
	}
	return &v, nil
}

func parseDimension(form url.Values, field string) (*int, error) {
	v, err := parseInt(form, field)
	if err != nil || v == nil {
		return v, err
	}
	if *v <= 0 {
		return nil, &FormError{Field: field, Value: strconv.Itoa(*v), Reason: "must be positive"}
	}
	return v, nil
}

// decimalComma matches a price written with a comma as the only separator
// and one or two fraction digits ("1800,5"). Grouping commas are rejected.
var decimalComma = regexp.MustCompile(`^\d+,\d{1,2}$`)

func parsePrice(form url.Values) (*float64, error) {
	raw := strings.TrimSpace(form.Get("price"))
	if raw == "" {
		return nil, nil
	}
	if strings.Contains(raw, ",") {
		if !decimalComma.MatchString(raw) {
			return nil, &FormError{Field: "price", Value: raw, Reason: "not a number"}
		}
		raw = strings.Replace(raw, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &FormError{Field: "price", Value: raw, Reason: "not a number"}
	}
	if v < 0 {
		return nil, &FormError{Field: "price", Value: raw, Reason: "must not be negative"}
	}
	return &v, nil
}
