package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joefazee/directory-admin/app/providers"
	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/models"
)

const nameColumnWidth = 28

// providerFlags collects a draft from the command line. Only flags the
// operator set are applied to the form, so an update sends just those fields.
type providerFlags struct {
	name, bio     string
	days          []string
	open, close   string
	phones        []string
	locations     []string
	offers        []string
	images        []string
	offerImages   []string
	deletedImages []string
}

func (p *providerFlags) register(cmd *cobra.Command, update bool) {
	f := cmd.Flags()
	f.StringVar(&p.name, "name", "", "provider name")
	f.StringVar(&p.bio, "bio", "", "short biography")
	f.StringArrayVar(&p.days, "day", nil, "working day, repeatable (e.g. Monday)")
	f.StringVar(&p.open, "open", "", "opening hour, HH:mm")
	f.StringVar(&p.close, "close", "", "closing hour, HH:mm")
	f.StringArrayVar(&p.phones, "phone", nil, `phone contact "number[,whatsapp][,nocall]", repeatable`)
	f.StringArrayVar(&p.locations, "location", nil, "location link, repeatable")
	f.StringArrayVar(&p.offers, "offer", nil, `offer "name|description|url;url", repeatable`)
	f.StringArrayVar(&p.images, "image", nil, "local image to upload, repeatable")
	f.StringArrayVar(&p.offerImages, "offer-image", nil, "INDEX=PATH uploads PATH and attaches it to offer INDEX")
	if update {
		f.StringArrayVar(&p.deletedImages, "delete-image", nil, "public id of a stored image to remove, repeatable")
	}
}

func (p *providerFlags) apply(cmd *cobra.Command, s *session, svc providers.Service, form *providers.Form) error {
	ctx := cmd.Context()
	changed := cmd.Flags().Changed

	if changed("name") {
		form.SetName(p.name)
	}
	if changed("bio") {
		form.SetBio(p.bio)
	}
	if changed("day") {
		form.SetWorkingDays(normalizeDays(p.days))
	}
	if changed("open") {
		form.SetOpeningHour(p.open)
	}
	if changed("close") {
		form.SetClosingHour(p.close)
	}
	if changed("phone") {
		contacts := make([]models.PhoneContact, len(p.phones))
		for i, raw := range p.phones {
			contacts[i] = parseContact(raw)
		}
		form.SetContacts(contacts)
	}
	if changed("location") {
		form.SetLocationLinks(p.locations)
	}

	offers := form.Offers()
	if changed("offer") {
		offers = make([]models.Offer, len(p.offers))
		for i, raw := range p.offers {
			offers[i] = parseOffer(raw)
		}
	}
	for _, raw := range p.offerImages {
		idx, path, err := parseOfferImage(raw, len(offers))
		if err != nil {
			return err
		}
		file, err := readFile(path)
		if err != nil {
			return err
		}
		url, err := svc.UploadOfferImage(ctx, file)
		if err != nil {
			return err
		}
		s.log.Debug("offer image uploaded", map[string]interface{}{"offer": idx, "url": url})
		offers[idx].ImageURLs = append(offers[idx].ImageURLs, url)
	}
	if changed("offer") || len(p.offerImages) > 0 {
		form.SetOffers(offers)
	}

	for _, id := range p.deletedImages {
		if !form.DeleteImage(id) {
			return fmt.Errorf("no stored image with id %q", id)
		}
	}
	if len(p.images) > 0 {
		files := make([]imaging.File, 0, len(p.images))
		for _, path := range p.images {
			file, err := readFile(path)
			if err != nil {
				return err
			}
			files = append(files, file)
		}
		if _, err := form.AddImages(ctx, files...); err != nil {
			return err
		}
	}
	return nil
}

func newProvidersCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"sp"},
		Short:   "List and edit the service providers of a sub-category",
	}

	var search string
	list := &cobra.Command{
		Use:   "list SUB_ID",
		Short: "List service providers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.providers()
			if err != nil {
				return s.report(err)
			}
			items, err := svc.ListProviders(cmd.Context(), args[0], search)
			if err != nil {
				return s.report(err)
			}
			rows := make([][]string, len(items))
			for i, p := range items {
				rows[i] = []string{
					p.ID,
					formatter.Truncate(p.Name, nameColumnWidth),
					firstPhone(p),
					strings.Join(p.WorkingDays, ", "),
					hours(p),
					s.rating(p),
				}
			}
			s.table([]string{
				s.msg.T(i18n.ColID), s.msg.T(i18n.ColName), s.msg.T(i18n.ColPhone),
				s.msg.T(i18n.ColDays), s.msg.T(i18n.ColHours), s.msg.T(i18n.ColRating),
			}, rows)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter by name")

	var createFlags providerFlags
	create := &cobra.Command{
		Use:   "create SUB_ID",
		Short: "Create a service provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.providers()
			if err != nil {
				return s.report(err)
			}
			form := svc.NewCreateForm()
			defer form.Close()
			if err := createFlags.apply(cmd, s, svc, form); err != nil {
				return s.report(err)
			}
			created, err := svc.CreateProvider(cmd.Context(), args[0], form)
			if err != nil {
				return s.report(err)
			}
			s.success(i18n.Created, created.Name)
			return nil
		},
	}
	createFlags.register(create, false)

	var updateFlags providerFlags
	update := &cobra.Command{
		Use:   "update SUB_ID ID",
		Short: "Update the fields given as flags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.providers()
			if err != nil {
				return s.report(err)
			}
			ctx := cmd.Context()
			form, err := svc.NewUpdateForm(ctx, args[0], args[1])
			if err != nil {
				return s.report(err)
			}
			defer form.Close()
			if err := updateFlags.apply(cmd, s, svc, form); err != nil {
				return s.report(err)
			}
			updated, err := svc.UpdateProvider(ctx, args[0], args[1], form)
			if err != nil {
				return s.report(err)
			}
			s.success(i18n.Updated, updated.Name)
			return nil
		},
	}
	updateFlags.register(update, true)

	var yes bool
	remove := &cobra.Command{
		Use:   "delete SUB_ID ID",
		Short: "Delete a service provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !s.confirm(args[1], yes) {
				return nil
			}
			svc, err := s.providers()
			if err != nil {
				return s.report(err)
			}
			if err := svc.DeleteProvider(cmd.Context(), args[0], args[1]); err != nil {
				return s.report(err)
			}
			s.success(i18n.Deleted, args[1])
			return nil
		},
	}
	yesFlag(remove, &yes)

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func (s *session) rating(p providers.ProviderResponse) string {
	if !p.Rating.Valid {
		return s.styles.Muted.Render("-")
	}
	tier := formatter.TierOf(p.Rating.Decimal)
	label := p.Rating.Decimal.StringFixed(1)
	if p.IsVerified {
		label += " " + s.msg.T(i18n.Verified)
	}
	return s.styles.Rating(tier).Render(label)
}

func firstPhone(p providers.ProviderResponse) string {
	if len(p.PhoneContacts) == 0 {
		return ""
	}
	return p.PhoneContacts[0].Display
}

func hours(p providers.ProviderResponse) string {
	if p.WorkingHour == "" && p.ClosingHour == "" {
		return ""
	}
	return p.WorkingHour + "-" + p.ClosingHour
}

var dayTitle = cases.Title(language.English)

func normalizeDays(days []string) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = dayTitle.String(strings.TrimSpace(d))
	}
	return out
}

// parseContact reads "number[,whatsapp][,nocall]". Contacts can be called
// unless nocall is given.
func parseContact(raw string) models.PhoneContact {
	parts := strings.Split(raw, ",")
	c := models.PhoneContact{PhoneNumber: strings.TrimSpace(parts[0]), CanCall: true}
	for _, opt := range parts[1:] {
		switch strings.ToLower(strings.TrimSpace(opt)) {
		case "whatsapp":
			c.HasWhatsApp = true
		case "nocall":
			c.CanCall = false
		}
	}
	return c
}

// parseOffer reads "name|description|url;url".
func parseOffer(raw string) models.Offer {
	parts := strings.SplitN(raw, "|", 3)
	o := models.Offer{Name: parts[0]}
	if len(parts) > 1 {
		o.Description = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		o.ImageURLs = strings.Split(parts[2], ";")
	}
	return o
}

func parseOfferImage(raw string, offers int) (int, string, error) {
	idx, path, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, "", fmt.Errorf("offer image %q: want INDEX=PATH", raw)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 || i >= offers {
		return 0, "", fmt.Errorf("offer image %q: no offer at index %s", raw, idx)
	}
	return i, path, nil
}

func readFile(path string) (imaging.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return imaging.File{}, err
	}
	file := imaging.NewFile(filepath.Base(path), data)
	if !file.Supported() {
		return imaging.File{}, fmt.Errorf("%s: %w", path, imaging.ErrUnsupportedImage)
	}
	return file, nil
}
