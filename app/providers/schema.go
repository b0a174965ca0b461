package providers

import (
	"strconv"
	"strings"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

// Mode selects the rule set and the submission path.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// Field names an editable provider field. Values double as wire names.
type Field string

const (
	FieldName          Field = "name"
	FieldBio           Field = "bio"
	FieldWorkingDays   Field = "workingDays"
	FieldWorkingHour   Field = "workingHour"
	FieldClosingHour   Field = "closingHour"
	FieldPhoneContacts Field = "phoneContacts"
	FieldLocationLinks Field = "locationLinks"
	FieldOffers        Field = "offers"
)

// AllFields lists every editable field in form order.
var AllFields = []Field{
	FieldName,
	FieldBio,
	FieldWorkingDays,
	FieldWorkingHour,
	FieldClosingHour,
	FieldPhoneContacts,
	FieldLocationLinks,
	FieldOffers,
}

// FieldSet is a set of fields, used for the dirty set of an update.
type FieldSet map[Field]struct{}

func NewFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

func (s FieldSet) clone() FieldSet {
	out := make(FieldSet, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

// Draft is the editable part of a provider, possibly invalid.
type Draft struct {
	Name          string
	Bio           string
	WorkingDays   []string
	WorkingHour   string
	ClosingHour   string
	PhoneContacts []models.PhoneContact
	LocationLinks []string
	Offers        []models.Offer
}

// DraftOf copies the editable fields of p.
func DraftOf(p models.ServiceProvider) Draft {
	return Draft{
		Name:          p.Name,
		Bio:           p.Bio,
		WorkingDays:   append([]string(nil), p.WorkingDays...),
		WorkingHour:   p.WorkingHour,
		ClosingHour:   p.ClosingHour,
		PhoneContacts: append([]models.PhoneContact(nil), p.PhoneContacts...),
		LocationLinks: append([]string(nil), p.LocationLinks...),
		Offers:        cloneOffers(p.Offers),
	}
}

// Submission is a validated, normalized draft ready for encoding. Fields
// holds what the submission carries: every field on create, the dirty ones
// on update.
type Submission struct {
	Mode            Mode
	Fields          FieldSet
	Provider        Draft
	Images          []imaging.File
	DeletedImageIDs []string
}

// Schema validates drafts. Messages are rendered by the translator it holds.
type Schema struct {
	messages  i18n.Translator
	sanitizer sanitizer.HTMLStripperer
}

func NewSchema(messages i18n.Translator, s sanitizer.HTMLStripperer) *Schema {
	return &Schema{messages: messages, sanitizer: s}
}

// Validate checks the fields selected by mode: all of them on create, only
// dirty on update. It returns the normalized submission, or the field errors
// keyed by path such as "phoneContacts.1.phoneNumber".
func (s *Schema) Validate(mode Mode, d Draft, dirty FieldSet) (*Submission, map[string]string) {
	fields := NewFieldSet(AllFields...)
	if mode == ModeUpdate {
		fields = dirty.clone()
	}

	n := s.normalize(d)
	v := validator.New()

	if fields.Has(FieldName) {
		v.Check(validator.NotBlank(n.Name), string(FieldName), s.t(i18n.NameRequired))
	}
	if fields.Has(FieldBio) {
		v.Check(validator.NotBlank(n.Bio), string(FieldBio), s.t(i18n.BioRequired))
	}
	if fields.Has(FieldWorkingDays) {
		s.checkWorkingDays(v, n.WorkingDays)
	}
	if fields.Has(FieldWorkingHour) {
		s.checkTime(v, FieldWorkingHour, n.WorkingHour)
	}
	if fields.Has(FieldClosingHour) {
		s.checkTime(v, FieldClosingHour, n.ClosingHour)
	}
	if fields.Has(FieldPhoneContacts) {
		s.checkContacts(v, n.PhoneContacts)
	}
	if fields.Has(FieldLocationLinks) {
		s.checkLocationLinks(v, n.LocationLinks)
	}
	if fields.Has(FieldOffers) {
		s.checkOffers(v, n.Offers)
	}

	if !v.Valid() {
		return nil, v.Errors
	}
	return &Submission{Mode: mode, Fields: fields, Provider: n}, nil
}

func (s *Schema) t(key string, params ...string) string {
	return s.messages.T(key, params...)
}

// normalize trims every value, strips markup from free text and drops blank
// offer image URLs. Blank contacts and links are kept so they get reported.
func (s *Schema) normalize(d Draft) Draft {
	n := Draft{
		Name:        s.sanitizer.StripHTML(d.Name),
		Bio:         s.sanitizer.StripHTML(d.Bio),
		WorkingHour: strings.TrimSpace(d.WorkingHour),
		ClosingHour: strings.TrimSpace(d.ClosingHour),
	}
	for _, day := range d.WorkingDays {
		n.WorkingDays = append(n.WorkingDays, strings.TrimSpace(day))
	}
	for _, c := range d.PhoneContacts {
		c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
		n.PhoneContacts = append(n.PhoneContacts, c)
	}
	for _, link := range d.LocationLinks {
		n.LocationLinks = append(n.LocationLinks, strings.TrimSpace(link))
	}
	for _, o := range d.Offers {
		offer := models.Offer{
			Name:        s.sanitizer.StripHTML(o.Name),
			Description: s.sanitizer.StripHTML(o.Description),
		}
		for _, u := range o.ImageURLs {
			if u = strings.TrimSpace(u); u != "" {
				offer.ImageURLs = append(offer.ImageURLs, u)
			}
		}
		n.Offers = append(n.Offers, offer)
	}
	return n
}

func (s *Schema) checkWorkingDays(v *validator.Validator, days []string) {
	key := string(FieldWorkingDays)
	v.Check(len(days) > 0, key, s.t(i18n.WorkingDayRequired))

	unique := validator.NoDuplicates(days)
	for i, day := range days {
		path := validator.Path(key, i)
		v.Check(validator.In(day, models.Weekdays...), path, s.t(i18n.WorkingDayInvalid, day))
		if !unique {
			v.Check(!validator.In(day, days[:i]...), path, s.t(i18n.WorkingDayDuplicate, day))
		}
	}
}

func (s *Schema) checkTime(v *validator.Validator, f Field, value string) {
	if value == "" {
		return
	}
	v.Check(validator.IsValidTimeFormat(value), string(f), s.t(i18n.TimeInvalid))
}

func (s *Schema) checkContacts(v *validator.Validator, contacts []models.PhoneContact) {
	key := string(FieldPhoneContacts)
	v.Check(len(contacts) > 0, key, s.t(i18n.PhoneContactRequired))

	for i, c := range contacts {
		path := validator.Path(key, i, "phoneNumber")
		if !validator.NotBlank(c.PhoneNumber) {
			v.AddError(path, s.t(i18n.PhoneRequired))
			continue
		}
		v.Check(validator.IsPhone(c.PhoneNumber), path, s.t(i18n.PhoneInvalid))
	}
}

func (s *Schema) checkLocationLinks(v *validator.Validator, links []string) {
	key := string(FieldLocationLinks)
	v.Check(len(links) > 0, key, s.t(i18n.LocationRequired))

	for i, link := range links {
		v.Check(validator.NotBlank(link), validator.Path(key, i), s.t(i18n.LocationBlank))
	}
}

func (s *Schema) checkOffers(v *validator.Validator, offers []models.Offer) {
	key := string(FieldOffers)
	for i, o := range offers {
		v.Check(validator.NotBlank(o.Name), validator.Path(key, i, "name"), s.t(i18n.OfferNameRequired))
		v.Check(validator.NotBlank(o.Description), validator.Path(key, i, "description"), s.t(i18n.OfferDescriptionRequired))
		for j, u := range o.ImageURLs {
			v.Check(validator.IsURL(u), validator.Path(key, i, "imageUrl", strconv.Itoa(j)), s.t(i18n.OfferImageInvalid))
		}
	}
}

func cloneOffers(offers []models.Offer) []models.Offer {
	if offers == nil {
		return nil
	}
	out := make([]models.Offer, len(offers))
	for i, o := range offers {
		o.ImageURLs = append([]string(nil), o.ImageURLs...)
		out[i] = o
	}
	return out
}
