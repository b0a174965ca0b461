package providers

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/models"
)

// ProviderRequest is a full draft, sent on create.
type ProviderRequest struct {
	Name          string                `json:"name"`
	Bio           string                `json:"bio"`
	WorkingDays   []string              `json:"workingDays"`
	WorkingHour   string                `json:"workingHour,omitempty"`
	ClosingHour   string                `json:"closingHour,omitempty"`
	PhoneContacts []models.PhoneContact `json:"phoneContacts"`
	LocationLinks []string              `json:"locationLinks"`
	Offers        []models.Offer        `json:"offers,omitempty"`
}

// ApplyTo copies the request into a create form.
func (r ProviderRequest) ApplyTo(f *Form) {
	f.SetName(r.Name)
	f.SetBio(r.Bio)
	f.SetWorkingDays(r.WorkingDays)
	f.SetOpeningHour(r.WorkingHour)
	f.SetClosingHour(r.ClosingHour)
	f.SetContacts(r.PhoneContacts)
	f.SetLocationLinks(r.LocationLinks)
	f.SetOffers(r.Offers)
}

// ProviderPatchRequest is a partial draft. Nil fields are left untouched.
type ProviderPatchRequest struct {
	Name            *string                `json:"name,omitempty"`
	Bio             *string                `json:"bio,omitempty"`
	WorkingDays     *[]string              `json:"workingDays,omitempty"`
	WorkingHour     *string                `json:"workingHour,omitempty"`
	ClosingHour     *string                `json:"closingHour,omitempty"`
	PhoneContacts   *[]models.PhoneContact `json:"phoneContacts,omitempty"`
	LocationLinks   *[]string              `json:"locationLinks,omitempty"`
	Offers          *[]models.Offer        `json:"offers,omitempty"`
	DeletedImageIDs []string               `json:"deletedImageIds,omitempty"`
}

// ApplyTo marks every present field dirty on an update form and queues the
// image deletions. It returns the ids that matched no visible image.
func (r ProviderPatchRequest) ApplyTo(f *Form) []string {
	if r.Name != nil {
		f.SetName(*r.Name)
	}
	if r.Bio != nil {
		f.SetBio(*r.Bio)
	}
	if r.WorkingDays != nil {
		f.SetWorkingDays(*r.WorkingDays)
	}
	if r.WorkingHour != nil {
		f.SetOpeningHour(*r.WorkingHour)
	}
	if r.ClosingHour != nil {
		f.SetClosingHour(*r.ClosingHour)
	}
	if r.PhoneContacts != nil {
		f.SetContacts(*r.PhoneContacts)
	}
	if r.LocationLinks != nil {
		f.SetLocationLinks(*r.LocationLinks)
	}
	if r.Offers != nil {
		f.SetOffers(*r.Offers)
	}

	var unknown []string
	for _, id := range r.DeletedImageIDs {
		if !f.DeleteImage(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

type ContactResponse struct {
	models.PhoneContact
	Display string `json:"display"`
}

type ProviderResponse struct {
	ID            string              `json:"_id"`
	SubCategoryID string              `json:"subCategoryId"`
	Name          string              `json:"name"`
	Initials      string              `json:"initials"`
	Bio           string              `json:"bio"`
	Images        []models.Image      `json:"imagesUrl"`
	WorkingDays   []string            `json:"workingDays"`
	WorkingHour   string              `json:"workingHour,omitempty"`
	ClosingHour   string              `json:"closingHour,omitempty"`
	PhoneContacts []ContactResponse   `json:"phoneContacts"`
	LocationLinks []string            `json:"locationLinks"`
	Offers        []models.Offer      `json:"offers"`
	Rating        decimal.NullDecimal `json:"rating" swaggertype:"number"`
	RatingTier    string              `json:"ratingTier,omitempty"`
	CompletedJobs int                 `json:"completedJobs"`
	ResponseTime  string              `json:"responseTime,omitempty"`
	IsVerified    bool                `json:"isVerified"`
}

// ToProviderResponse adds display helpers to p. Phone numbers are formatted
// for region.
func ToProviderResponse(subCategoryID string, p *models.ServiceProvider, region string) *ProviderResponse {
	resp := &ProviderResponse{
		ID:            p.ID,
		SubCategoryID: subCategoryID,
		Name:          p.Name,
		Initials:      formatter.Initials(p.Name),
		Bio:           p.Bio,
		Images:        orEmpty(p.Images),
		WorkingDays:   orEmpty(p.WorkingDays),
		WorkingHour:   p.WorkingHour,
		ClosingHour:   p.ClosingHour,
		PhoneContacts: make([]ContactResponse, len(p.PhoneContacts)),
		LocationLinks: orEmpty(p.LocationLinks),
		Offers:        orEmpty(p.Offers),
		Rating:        p.Rating,
		CompletedJobs: p.CompletedJobs,
		ResponseTime:  p.ResponseTime,
		IsVerified:    p.IsVerified,
	}
	if p.Rating.Valid {
		resp.RatingTier = formatter.TierOf(p.Rating.Decimal).String()
	}
	for i, c := range p.PhoneContacts {
		resp.PhoneContacts[i] = ContactResponse{PhoneContact: c, Display: formatter.DisplayPhone(c.PhoneNumber, region)}
	}
	return resp
}

func ToProviderResponseList(subCategoryID string, ps []models.ServiceProvider, region string) []ProviderResponse {
	out := make([]ProviderResponse, len(ps))
	for i := range ps {
		out[i] = *ToProviderResponse(subCategoryID, &ps[i], region)
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
