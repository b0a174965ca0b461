package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Image is a provider picture already stored remotely.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	ID       string `json:"_id,omitempty"`
}

// PhoneContact is one reachable number of a provider.
type PhoneContact struct {
	PhoneNumber string `json:"phoneNumber"`
	HasWhatsApp bool   `json:"hasWhatsApp"`
	CanCall     bool   `json:"canCall"`
}

// UnmarshalJSON defaults CanCall to true when the field is absent.
func (c *PhoneContact) UnmarshalJSON(data []byte) error {
	type plain PhoneContact
	p := plain{CanCall: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = PhoneContact(p)
	return nil
}

// Offer is a promotion published by a provider.
type Offer struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrl"`
}

// ServiceProvider is a listed professional within a sub-category.
// Rating, CompletedJobs, ResponseTime and IsVerified are computed server-side.
type ServiceProvider struct {
	ID            string              `json:"_id,omitempty"`
	Name          string              `json:"name"`
	Bio           string              `json:"bio"`
	Images        []Image             `json:"imagesUrl,omitempty"`
	WorkingDays   []string            `json:"workingDays"`
	WorkingHour   string              `json:"workingHour,omitempty"`
	ClosingHour   string              `json:"closingHour,omitempty"`
	PhoneContacts []PhoneContact      `json:"phoneContacts"`
	LocationLinks []string            `json:"locationLinks"`
	Offers        []Offer             `json:"offers,omitempty"`
	Rating        decimal.NullDecimal `json:"rating"`
	CompletedJobs int                 `json:"completedJobs,omitempty"`
	ResponseTime  string              `json:"responseTime,omitempty"`
	IsVerified    bool                `json:"isVerified,omitempty"`
}
