package categories

import (
	"strconv"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

const maxNameRunes = 100

// ValidateNames strips markup from both names and checks them. It is shared
// with sub-categories, which carry the same name pair.
func ValidateNames(t i18n.Translator, s sanitizer.HTMLStripperer, names models.CategoryNames) (models.CategoryNames, error) {
	clean := models.CategoryNames{
		EnglishName: s.StripHTML(names.EnglishName),
		ArabicName:  s.StripHTML(names.ArabicName),
	}

	v := validator.New()
	tooLong := t.T(i18n.TooLong, strconv.Itoa(maxNameRunes))

	v.Check(validator.NotBlank(clean.EnglishName), "englishName", t.T(i18n.EnglishNameRequired))
	v.Check(validator.MaxRunes(clean.EnglishName, maxNameRunes), "englishName", tooLong)
	v.Check(validator.NotBlank(clean.ArabicName), "arabicName", t.T(i18n.ArabicNameRequired))
	v.Check(validator.MaxRunes(clean.ArabicName, maxNameRunes), "arabicName", tooLong)

	if !v.Valid() {
		return names, validator.NewValidationError(t.T(i18n.ValidationFailed), v.Errors)
	}
	return clean, nil
}
