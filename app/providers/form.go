package providers

import (
	"context"
	"sync"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

// SubmitFunc sends a validated submission.
type SubmitFunc func(ctx context.Context, sub *Submission) error

// Form holds one provider draft while it is being edited. Every list
// operation replaces the stored slice, so slices handed out earlier never
// change under the caller. Phone contacts and location links never drop
// below one entry through Remove.
type Form struct {
	mu         sync.Mutex
	mode       Mode
	draft      Draft
	dirty      FieldSet
	errors     map[string]string
	submitting bool

	schema *Schema
	images *imaging.Pipeline
}

// BlankContact is the contact a new row starts with.
func BlankContact() models.PhoneContact {
	return models.PhoneContact{CanCall: true}
}

// NewCreateForm starts an empty draft with one blank contact and one blank
// location link.
func NewCreateForm(schema *Schema, images *imaging.Pipeline) *Form {
	return &Form{
		mode: ModeCreate,
		draft: Draft{
			PhoneContacts: []models.PhoneContact{BlankContact()},
			LocationLinks: []string{""},
		},
		dirty:  FieldSet{},
		schema: schema,
		images: images,
	}
}

// NewUpdateForm starts from p. Nothing is dirty until a setter runs.
func NewUpdateForm(schema *Schema, p models.ServiceProvider, images *imaging.Pipeline) *Form {
	d := DraftOf(p)
	if len(d.PhoneContacts) == 0 {
		d.PhoneContacts = []models.PhoneContact{BlankContact()}
	}
	if len(d.LocationLinks) == 0 {
		d.LocationLinks = []string{""}
	}
	return &Form{
		mode:   ModeUpdate,
		draft:  d,
		dirty:  FieldSet{},
		schema: schema,
		images: images,
	}
}

func (f *Form) Mode() Mode { return f.mode }

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyDraft()
}

// Dirty returns the fields touched since the form was opened.
func (f *Form) Dirty() FieldSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty.clone()
}

// Errors returns the field errors of the last submit attempt.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Images() *imaging.Pipeline { return f.images }

func (f *Form) SetName(name string) { f.set(FieldName, func(d *Draft) { d.Name = name }) }

func (f *Form) SetBio(bio string) { f.set(FieldBio, func(d *Draft) { d.Bio = bio }) }

// SetOpeningHour stores hhmm as given. It is not compared with the closing
// hour.
func (f *Form) SetOpeningHour(hhmm string) {
	f.set(FieldWorkingHour, func(d *Draft) { d.WorkingHour = hhmm })
}

func (f *Form) SetClosingHour(hhmm string) {
	f.set(FieldClosingHour, func(d *Draft) { d.ClosingHour = hhmm })
}

// ToggleWorkingDay adds day if absent and removes it otherwise. It reports
// whether day is selected afterwards.
func (f *Form) ToggleWorkingDay(day string) bool {
	selected := false
	f.set(FieldWorkingDays, func(d *Draft) {
		days := make([]string, 0, len(d.WorkingDays)+1)
		found := false
		for _, existing := range d.WorkingDays {
			if existing == day {
				found = true
				continue
			}
			days = append(days, existing)
		}
		if !found {
			days = append(days, day)
		}
		d.WorkingDays = days
		selected = !found
	})
	return selected
}

// SetWorkingDays replaces the selection.
func (f *Form) SetWorkingDays(days []string) {
	f.set(FieldWorkingDays, func(d *Draft) { d.WorkingDays = append([]string{}, days...) })
}

func (f *Form) AppendContact(c models.PhoneContact) []models.PhoneContact {
	var out []models.PhoneContact
	f.set(FieldPhoneContacts, func(d *Draft) {
		d.PhoneContacts = appendCopy(d.PhoneContacts, c)
		out = appendCopy(d.PhoneContacts)
	})
	return out
}

func (f *Form) SetContact(i int, c models.PhoneContact) bool {
	return f.setAt(FieldPhoneContacts, func(d *Draft) bool {
		if i < 0 || i >= len(d.PhoneContacts) {
			return false
		}
		d.PhoneContacts = replaceAt(d.PhoneContacts, i, c)
		return true
	})
}

// RemoveContact is a no-op returning false when i is out of range or only
// one contact is left.
func (f *Form) RemoveContact(i int) bool {
	return f.setAt(FieldPhoneContacts, func(d *Draft) bool {
		if len(d.PhoneContacts) <= 1 || i < 0 || i >= len(d.PhoneContacts) {
			return false
		}
		d.PhoneContacts = removeAt(d.PhoneContacts, i)
		return true
	})
}

func (f *Form) SetContacts(cs []models.PhoneContact) {
	f.set(FieldPhoneContacts, func(d *Draft) { d.PhoneContacts = appendCopy([]models.PhoneContact{}, cs...) })
}

func (f *Form) Contacts() []models.PhoneContact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return appendCopy(f.draft.PhoneContacts)
}

func (f *Form) AppendLocationLink(link string) []string {
	var out []string
	f.set(FieldLocationLinks, func(d *Draft) {
		d.LocationLinks = appendCopy(d.LocationLinks, link)
		out = appendCopy(d.LocationLinks)
	})
	return out
}

func (f *Form) SetLocationLink(i int, link string) bool {
	return f.setAt(FieldLocationLinks, func(d *Draft) bool {
		if i < 0 || i >= len(d.LocationLinks) {
			return false
		}
		d.LocationLinks = replaceAt(d.LocationLinks, i, link)
		return true
	})
}

// RemoveLocationLink follows the same floor of one entry as RemoveContact.
func (f *Form) RemoveLocationLink(i int) bool {
	return f.setAt(FieldLocationLinks, func(d *Draft) bool {
		if len(d.LocationLinks) <= 1 || i < 0 || i >= len(d.LocationLinks) {
			return false
		}
		d.LocationLinks = removeAt(d.LocationLinks, i)
		return true
	})
}

func (f *Form) SetLocationLinks(links []string) {
	f.set(FieldLocationLinks, func(d *Draft) { d.LocationLinks = appendCopy([]string{}, links...) })
}

func (f *Form) LocationLinks() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return appendCopy(f.draft.LocationLinks)
}

func (f *Form) AppendOffer(o models.Offer) []models.Offer {
	var out []models.Offer
	f.set(FieldOffers, func(d *Draft) {
		d.Offers = append(cloneOffers(d.Offers), cloneOffers([]models.Offer{o})...)
		out = cloneOffers(d.Offers)
	})
	return out
}

func (f *Form) SetOffer(i int, o models.Offer) bool {
	return f.setAt(FieldOffers, func(d *Draft) bool {
		if i < 0 || i >= len(d.Offers) {
			return false
		}
		offers := cloneOffers(d.Offers)
		offers[i] = cloneOffers([]models.Offer{o})[0]
		d.Offers = offers
		return true
	})
}

// RemoveOffer may empty the list; offers are optional.
func (f *Form) RemoveOffer(i int) bool {
	return f.setAt(FieldOffers, func(d *Draft) bool {
		if i < 0 || i >= len(d.Offers) {
			return false
		}
		d.Offers = removeAt(cloneOffers(d.Offers), i)
		return true
	})
}

func (f *Form) SetOffers(offers []models.Offer) {
	f.set(FieldOffers, func(d *Draft) { d.Offers = append([]models.Offer{}, cloneOffers(offers)...) })
}

func (f *Form) Offers() []models.Offer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneOffers(f.draft.Offers)
}

// AddImages compresses files and queues them for upload on submit.
func (f *Form) AddImages(ctx context.Context, files ...imaging.File) ([]string, error) {
	return f.images.Add(ctx, files...)
}

// DeleteImage marks an existing image for deletion on submit.
func (f *Form) DeleteImage(publicID string) bool {
	return f.images.DeleteExisting(publicID)
}

// Submit validates the draft and, when it is valid, calls fn once with the
// submission. A second Submit while fn is running fails with
// models.ErrSubmissionInFlight. The draft is kept whatever the outcome.
func (f *Form) Submit(ctx context.Context, fn SubmitFunc) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return models.ErrSubmissionInFlight
	}

	sub, errs := f.schema.Validate(f.mode, f.copyDraft(), f.dirty)
	f.errors = errs
	if errs != nil {
		f.mu.Unlock()
		return validator.NewValidationError(f.schema.t(i18n.ValidationFailed), errs)
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	sub.Images = f.images.Files()
	sub.DeletedImageIDs = f.images.DeletedIDs()
	return fn(ctx, sub)
}

// Close releases the image previews.
func (f *Form) Close() {
	f.images.Close()
}

func (f *Form) set(field Field, mutate func(d *Draft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.draft)
	f.dirty[field] = struct{}{}
}

func (f *Form) setAt(field Field, mutate func(d *Draft) bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !mutate(&f.draft) {
		return false
	}
	f.dirty[field] = struct{}{}
	return true
}

func (f *Form) copyDraft() Draft {
	d := f.draft
	d.WorkingDays = appendCopy(d.WorkingDays)
	d.PhoneContacts = appendCopy(d.PhoneContacts)
	d.LocationLinks = appendCopy(d.LocationLinks)
	d.Offers = cloneOffers(d.Offers)
	return d
}

func appendCopy[T any](s []T, extra ...T) []T {
	if s == nil && len(extra) == 0 {
		return nil
	}
	out := make([]T, 0, len(s)+len(extra))
	out = append(out, s...)
	return append(out, extra...)
}

func replaceAt[T any](s []T, i int, v T) []T {
	out := appendCopy(s)
	out[i] = v
	return out
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
