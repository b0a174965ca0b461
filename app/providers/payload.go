package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

const imagePart = "image"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type formField struct{ name, value string }

// Patch is the body of an update. Only fields present in the submission are
// set; empty lists are always left out, so an update never clears a list.
type Patch struct {
	Name            *string               `json:"name,omitempty"`
	Bio             *string               `json:"bio,omitempty"`
	WorkingDays     []string              `json:"workingDays,omitempty"`
	WorkingHour     *string               `json:"workingHour,omitempty"`
	ClosingHour     *string               `json:"closingHour,omitempty"`
	PhoneContacts   []models.PhoneContact `json:"phoneContacts,omitempty"`
	LocationLinks   []string              `json:"locationLinks,omitempty"`
	Offers          []models.Offer        `json:"offers,omitempty"`
	DeletedImageIDs []string              `json:"deletedImageIds,omitempty"`
}

// NewPatch builds the update body of sub.
func NewPatch(sub *Submission) Patch {
	p := sub.Provider
	var patch Patch
	if sub.Fields.Has(FieldName) {
		patch.Name = &p.Name
	}
	if sub.Fields.Has(FieldBio) {
		patch.Bio = &p.Bio
	}
	if sub.Fields.Has(FieldWorkingDays) {
		patch.WorkingDays = nonEmpty(p.WorkingDays)
	}
	if sub.Fields.Has(FieldWorkingHour) {
		patch.WorkingHour = &p.WorkingHour
	}
	if sub.Fields.Has(FieldClosingHour) {
		patch.ClosingHour = &p.ClosingHour
	}
	if sub.Fields.Has(FieldPhoneContacts) {
		patch.PhoneContacts = nonEmpty(p.PhoneContacts)
	}
	if sub.Fields.Has(FieldLocationLinks) {
		patch.LocationLinks = nonEmpty(p.LocationLinks)
	}
	if sub.Fields.Has(FieldOffers) {
		patch.Offers = nonEmpty(p.Offers)
	}
	patch.DeletedImageIDs = nonEmpty(sub.DeletedImageIDs)
	return patch
}

// EncodeCreate always produces multipart/form-data. Lists are sent as
// repeated or indexed parts.
func EncodeCreate(sub *Submission) (*remote.Payload, error) {
	p := sub.Provider
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []formField{
		{"name", p.Name},
		{"bio", p.Bio},
	}
	for _, day := range p.WorkingDays {
		fields = append(fields, formField{"workingDays", day})
	}
	if p.WorkingHour != "" {
		fields = append(fields, formField{"workingHour", p.WorkingHour})
	}
	if p.ClosingHour != "" {
		fields = append(fields, formField{"closingHour", p.ClosingHour})
	}
	for i, c := range p.PhoneContacts {
		prefix := "phoneContacts[" + strconv.Itoa(i) + "]"
		fields = append(fields,
			formField{prefix + "[phoneNumber]", c.PhoneNumber},
			formField{prefix + "[hasWhatsApp]", strconv.FormatBool(c.HasWhatsApp)},
			formField{prefix + "[canCall]", strconv.FormatBool(c.CanCall)},
		)
	}
	for _, link := range p.LocationLinks {
		fields = append(fields, formField{"locationLinks", link})
	}
	for i, o := range p.Offers {
		prefix := "offers[" + strconv.Itoa(i) + "]"
		fields = append(fields,
			formField{prefix + "[name]", o.Name},
			formField{prefix + "[description]", o.Description},
		)
		for _, u := range o.ImageURLs {
			fields = append(fields, formField{prefix + "[imageUrl]", u})
		}
	}

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("providers: encode %s: %w", f.name, err)
		}
	}
	if err := writeImages(w, sub.Images); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("providers: close multipart: %w", err)
	}
	return &remote.Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

// EncodeUpdate sends JSON unless new files are attached, in which case the
// patch travels as the "data" part next to the image parts.
func EncodeUpdate(sub *Submission) (*remote.Payload, error) {
	patch := NewPatch(sub)
	if len(sub.Images) == 0 {
		return remote.JSON(patch)
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("providers: encode patch: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("data", string(data)); err != nil {
		return nil, fmt.Errorf("providers: encode data: %w", err)
	}
	if err := writeImages(w, sub.Images); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("providers: close multipart: %w", err)
	}
	return &remote.Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

func writeImages(w *multipart.Writer, files []imaging.File) error {
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imagePart, quoteEscaper.Replace(f.Name)))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("providers: image part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return fmt.Errorf("providers: image part %s: %w", f.Name, err)
		}
	}
	return nil
}

func nonEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
