package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/models"
)

type passthrough struct{}

func (passthrough) Compress(_ context.Context, f imaging.File) (imaging.File, error) { return f, nil }

func newSchema() *Schema {
	return NewSchema(i18n.MustCatalog().For(i18n.English), sanitizer.NewHTMLStripper())
}

func validDraft() Draft {
	return Draft{
		Name:          "Ali's Plumbing",
		Bio:           "Fast and tidy",
		WorkingDays:   []string{"Monday", "Tuesday"},
		WorkingHour:   "09:00",
		ClosingHour:   "17:30",
		PhoneContacts: []models.PhoneContact{{PhoneNumber: "+1 234-567-8900", HasWhatsApp: true, CanCall: true}},
		LocationLinks: []string{"https://maps.example/ali"},
	}
}

func TestSchemaCreateAcceptsValidDraft(t *testing.T) {
	sub, errs := newSchema().Validate(ModeCreate, validDraft(), nil)
	require.Nil(t, errs)
	require.NotNil(t, sub)

	assert.Equal(t, ModeCreate, sub.Mode)
	for _, f := range AllFields {
		assert.True(t, sub.Fields.Has(f), f)
	}
	assert.Equal(t, "Ali's Plumbing", sub.Provider.Name)
}

func TestSchemaCreateReportsEveryMissingField(t *testing.T) {
	d := Draft{
		PhoneContacts: []models.PhoneContact{BlankContact()},
		LocationLinks: []string{""},
	}
	_, errs := newSchema().Validate(ModeCreate, d, nil)

	assert.Equal(t, map[string]string{
		"name":                        "Name is required",
		"bio":                         "Bio is required",
		"workingDays":                 "At least one working day is required",
		"phoneContacts.0.phoneNumber": "Phone number is required",
		"locationLinks.0":             "Location link cannot be empty",
	}, errs)
}

func TestSchemaEmptyLists(t *testing.T) {
	d := validDraft()
	d.PhoneContacts = nil
	d.LocationLinks = []string{}

	_, errs := newSchema().Validate(ModeCreate, d, nil)
	assert.Equal(t, "At least one phone contact is required", errs["phoneContacts"])
	assert.Equal(t, "At least one location link is required", errs["locationLinks"])
}

func TestSchemaPhoneNumbers(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+1 234-567-8900", true},
		{"1234567890", true},
		{"123-456-7890", true},
		{"(02) 555 0199", true},
		{"12345", false},
		{"call me", false},
		{"+1 234 ABC 8900", false},
		{"12345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			d := validDraft()
			d.PhoneContacts = []models.PhoneContact{
				{PhoneNumber: "1234567890", CanCall: true},
				{PhoneNumber: tt.phone},
			}
			_, errs := newSchema().Validate(ModeCreate, d, nil)
			if tt.valid {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, map[string]string{
				"phoneContacts.1.phoneNumber": "Please enter a valid phone number (e.g., +1234567890, 123-456-7890, or 1234567890)",
			}, errs)
		})
	}
}

func TestSchemaWorkingDays(t *testing.T) {
	d := validDraft()
	d.WorkingDays = []string{"Monday", "Funday", "Monday"}

	_, errs := newSchema().Validate(ModeCreate, d, nil)
	assert.Equal(t, "Funday is not a valid working day", errs["workingDays.1"])
	assert.Equal(t, "Monday is selected more than once", errs["workingDays.2"])
	assert.NotContains(t, errs, "workingDays.0")
}

func TestSchemaTimes(t *testing.T) {
	d := validDraft()
	d.WorkingHour = "9am"
	d.ClosingHour = "25:00"

	_, errs := newSchema().Validate(ModeCreate, d, nil)
	assert.Equal(t, "Time must use the HH:mm format", errs["workingHour"])
	assert.Equal(t, "Time must use the HH:mm format", errs["closingHour"])

	d.WorkingHour, d.ClosingHour = "", ""
	_, errs = newSchema().Validate(ModeCreate, d, nil)
	assert.Nil(t, errs, "hours are optional")
}

func TestSchemaOffers(t *testing.T) {
	d := validDraft()
	d.Offers = []models.Offer{
		{Name: "Spring deal", Description: "10% off", ImageURLs: []string{"https://img.example/1.jpg", "  "}},
		{Name: " ", Description: "", ImageURLs: []string{"not a url"}},
	}

	sub, errs := newSchema().Validate(ModeCreate, d, nil)
	assert.Nil(t, sub)
	assert.Equal(t, map[string]string{
		"offers.1.name":        "Offer name is required",
		"offers.1.description": "Offer description is required",
		"offers.1.imageUrl.0":  "Offer image must be a valid URL",
	}, errs)

	d.Offers = d.Offers[:1]
	sub, errs = newSchema().Validate(ModeCreate, d, nil)
	require.Nil(t, errs)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, sub.Provider.Offers[0].ImageURLs)
}

func TestSchemaUpdateChecksDirtyFieldsOnly(t *testing.T) {
	d := Draft{Name: "New name"}

	sub, errs := newSchema().Validate(ModeUpdate, d, NewFieldSet(FieldName))
	require.Nil(t, errs)
	assert.True(t, sub.Fields.Has(FieldName))
	assert.False(t, sub.Fields.Has(FieldBio))

	_, errs = newSchema().Validate(ModeUpdate, d, NewFieldSet(FieldName, FieldBio))
	assert.Equal(t, map[string]string{"bio": "Bio is required"}, errs)
}

func TestSchemaStripsMarkup(t *testing.T) {
	d := validDraft()
	d.Name = "<b>Tom & Sons</b>"
	d.Bio = `<script>alert(1)</script>Reliable`

	sub, errs := newSchema().Validate(ModeCreate, d, nil)
	require.Nil(t, errs)
	assert.Equal(t, "Tom & Sons", sub.Provider.Name)
	assert.Equal(t, "Reliable", sub.Provider.Bio)

	d.Name = "<i></i>"
	_, errs = newSchema().Validate(ModeCreate, d, nil)
	assert.Equal(t, "Name is required", errs["name"])
}

func TestSchemaArabicMessages(t *testing.T) {
	s := NewSchema(i18n.MustCatalog().For(i18n.Arabic), sanitizer.NewHTMLStripper())
	d := validDraft()
	d.Name = ""

	_, errs := s.Validate(ModeCreate, d, nil)
	assert.Equal(t, "الاسم مطلوب", errs["name"])
}
