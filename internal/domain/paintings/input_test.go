package paintings

import (
	"errors"
	"net/url"
	"testing"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() url.Values {
	return url.Values{
		"title_uk": {"Море"},
		"title_en": {"Sea"},
		"title_ru": {"Море"},
	}
}

func TestParseInput_BlankNumbersAreNil(t *testing.T) {
	form := validForm()
	form.Set("width", "50")
	form.Set("height", "70")
	form.Set("year", "")
	form.Set("price", "")
	form.Set("order", "")

	in, err := ParseInput(form)
	require.NoError(t, err)

	require.NotNil(t, in.Width)
	require.NotNil(t, in.Height)
	assert.Equal(t, 50, *in.Width)
	assert.Equal(t, 70, *in.Height)
	assert.Nil(t, in.Year)
	assert.Nil(t, in.Price)
	assert.Equal(t, 0, in.SortOrder)
}

func TestParseInput_Checkboxes(t *testing.T) {
	form := validForm()
	form.Set("is_sold", "on")
	form.Set("is_featured", "on")

	in, err := ParseInput(form)
	require.NoError(t, err)

	assert.True(t, in.Sold)
	assert.True(t, in.Featured)
	assert.False(t, in.Available)
}

func TestParseInput_Price(t *testing.T) {
	form := validForm()
	form.Set("price", "1800,50")

	in, err := ParseInput(form)
	require.NoError(t, err)
	require.NotNil(t, in.Price)
	assert.InDelta(t, 1800.5, *in.Price, 0.0001)

	form.Set("price", "1800.25")
	in, err = ParseInput(form)
	require.NoError(t, err)
	require.NotNil(t, in.Price)
	assert.InDelta(t, 1800.25, *in.Price, 0.0001)
}

func TestParseInput_RejectsMalformed(t *testing.T) {
	tests := []struct {
		field, value string
	}{
		{"width", "abc"},
		{"width", "0"},
		{"height", "-5"},
		{"year", "twenty"},
		{"price", "cheap"},
		{"price", "-1"},
		{"price", "NaN"},
		{"price", "1,800"},
		{"price", "1.800,50"},
		{"price", "1,800.50"},
		{"price", "12,345"},
		{"order", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			form := validForm()
			form.Set(tt.field, tt.value)

			_, err := ParseInput(form)
			var fe *FormError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidateCreate(t *testing.T) {
	in, err := ParseInput(validForm())
	require.NoError(t, err)
	assert.NoError(t, in.ValidateCreate())

	in.Titles[i18n.Russian] = ""
	assert.ErrorIs(t, in.ValidateCreate(), ErrTitleRequired)
}
