package i18n

// Message keys. Texts use {0}, {1} placeholders.
const (
	NameRequired             = "name_required"
	BioRequired              = "bio_required"
	WorkingDayRequired       = "working_day_required"
	WorkingDayInvalid        = "working_day_invalid"
	WorkingDayDuplicate      = "working_day_duplicate"
	TimeInvalid              = "time_invalid"
	PhoneContactRequired     = "phone_contact_required"
	PhoneRequired            = "phone_required"
	PhoneInvalid             = "phone_invalid"
	LocationRequired         = "location_required"
	LocationBlank            = "location_blank"
	OfferNameRequired        = "offer_name_required"
	OfferDescriptionRequired = "offer_description_required"
	OfferImageInvalid        = "offer_image_invalid"
	EnglishNameRequired      = "english_name_required"
	ArabicNameRequired       = "arabic_name_required"
	TooLong                  = "too_long"
	ValidationFailed         = "validation_failed"

	ConfirmDelete       = "confirm_delete"
	Created             = "created"
	Updated             = "updated"
	Deleted             = "deleted"
	Aborted             = "aborted"
	NoResults           = "no_results"
	ThemeSet            = "theme_set"
	LanguageSet         = "language_set"
	UpstreamUnavailable = "upstream_unavailable"
	UpstreamRejected    = "upstream_rejected"

	RatingExcellent = "rating_excellent"
	RatingGood      = "rating_good"
	RatingPoor      = "rating_poor"
	Verified        = "verified"

	ColID        = "col_id"
	ColName      = "col_name"
	ColEnglish   = "col_english"
	ColArabic    = "col_arabic"
	ColCount     = "col_count"
	ColPhone     = "col_phone"
	ColDays      = "col_days"
	ColHours     = "col_hours"
	ColRating    = "col_rating"
	ColTheme     = "col_theme"
	ColLanguage  = "col_language"
	ColDirection = "col_direction"

	ConfigSecurityCheckFailed = "security_check_failed"
	ConfigValidationFailed    = "config_validation_failed"
	ConfigEnvReadFailed       = "env_read_failed"
	ConfigFileReadFailed      = "file_read_failed"
	ConfigMergeFailed         = "merge_failed"
)

var catalog = map[Language]map[string]string{
	English: {
		NameRequired:             "Name is required",
		BioRequired:              "Bio is required",
		WorkingDayRequired:       "At least one working day is required",
		WorkingDayInvalid:        "{0} is not a valid working day",
		WorkingDayDuplicate:      "{0} is selected more than once",
		TimeInvalid:              "Time must use the HH:mm format",
		PhoneContactRequired:     "At least one phone contact is required",
		PhoneRequired:            "Phone number is required",
		PhoneInvalid:             "Please enter a valid phone number (e.g., +1234567890, 123-456-7890, or 1234567890)",
		LocationRequired:         "At least one location link is required",
		LocationBlank:            "Location link cannot be empty",
		OfferNameRequired:        "Offer name is required",
		OfferDescriptionRequired: "Offer description is required",
		OfferImageInvalid:        "Offer image must be a valid URL",
		EnglishNameRequired:      "English name is required",
		ArabicNameRequired:       "Arabic name is required",
		TooLong:                  "Must be at most {0} characters",
		ValidationFailed:         "Please fix the highlighted fields",

		ConfirmDelete:       "Delete {0}? This cannot be undone. [y/N]",
		Created:             "{0} created",
		Updated:             "{0} updated",
		Deleted:             "{0} deleted",
		Aborted:             "Aborted",
		NoResults:           "No results",
		ThemeSet:            "Theme set to {0}",
		LanguageSet:         "Language set to {0}",
		UpstreamUnavailable: "The catalog service is unreachable, please try again",
		UpstreamRejected:    "The catalog service rejected the request: {0}",

		RatingExcellent: "Excellent",
		RatingGood:      "Good",
		RatingPoor:      "Needs improvement",
		Verified:        "Verified",

		ColID:        "ID",
		ColName:      "Name",
		ColEnglish:   "English name",
		ColArabic:    "Arabic name",
		ColCount:     "Count",
		ColPhone:     "Phone",
		ColDays:      "Working days",
		ColHours:     "Hours",
		ColRating:    "Rating",
		ColTheme:     "Theme",
		ColLanguage:  "Language",
		ColDirection: "Direction",

		ConfigSecurityCheckFailed: "Security validation failed",
		ConfigValidationFailed:    "Configuration validation failed",
		ConfigEnvReadFailed:       "Failed to read environment variables",
		ConfigFileReadFailed:      "Failed to read configuration file: {0}",
		ConfigMergeFailed:         "Failed to merge configuration sources",
	},
	Arabic: {
		NameRequired:             "الاسم مطلوب",
		BioRequired:              "النبذة مطلوبة",
		WorkingDayRequired:       "يجب اختيار يوم عمل واحد على الأقل",
		WorkingDayInvalid:        "{0} ليس يوم عمل صالحاً",
		WorkingDayDuplicate:      "تم اختيار {0} أكثر من مرة",
		TimeInvalid:              "يجب أن يكون الوقت بصيغة HH:mm",
		PhoneContactRequired:     "يجب إضافة جهة اتصال هاتفية واحدة على الأقل",
		PhoneRequired:            "رقم الهاتف مطلوب",
		PhoneInvalid:             "يرجى إدخال رقم هاتف صالح (مثال: ‎+1234567890 أو 123-456-7890 أو 1234567890)",
		LocationRequired:         "يجب إضافة رابط موقع واحد على الأقل",
		LocationBlank:            "لا يمكن أن يكون رابط الموقع فارغاً",
		OfferNameRequired:        "اسم العرض مطلوب",
		OfferDescriptionRequired: "وصف العرض مطلوب",
		OfferImageInvalid:        "يجب أن تكون صورة العرض رابطاً صالحاً",
		EnglishNameRequired:      "الاسم الإنجليزي مطلوب",
		ArabicNameRequired:       "الاسم العربي مطلوب",
		TooLong:                  "يجب ألا يتجاوز {0} حرفاً",
		ValidationFailed:         "يرجى تصحيح الحقول المحددة",

		ConfirmDelete:       "حذف {0}؟ لا يمكن التراجع عن هذا الإجراء. [y/N]",
		Created:             "تم إنشاء {0}",
		Updated:             "تم تحديث {0}",
		Deleted:             "تم حذف {0}",
		Aborted:             "تم الإلغاء",
		NoResults:           "لا توجد نتائج",
		ThemeSet:            "تم تعيين المظهر إلى {0}",
		LanguageSet:         "تم تعيين اللغة إلى {0}",
		UpstreamUnavailable: "خدمة الكتالوج غير متاحة، يرجى المحاولة مرة أخرى",
		UpstreamRejected:    "رفضت خدمة الكتالوج الطلب: {0}",

		RatingExcellent: "ممتاز",
		RatingGood:      "جيد",
		RatingPoor:      "يحتاج إلى تحسين",
		Verified:        "موثق",

		ColID:        "المعرف",
		ColName:      "الاسم",
		ColEnglish:   "الاسم الإنجليزي",
		ColArabic:    "الاسم العربي",
		ColCount:     "العدد",
		ColPhone:     "الهاتف",
		ColDays:      "أيام العمل",
		ColHours:     "ساعات العمل",
		ColRating:    "التقييم",
		ColTheme:     "المظهر",
		ColLanguage:  "اللغة",
		ColDirection: "الاتجاه",

		ConfigSecurityCheckFailed: "فشل التحقق الأمني",
		ConfigValidationFailed:    "فشل التحقق من الإعدادات",
		ConfigEnvReadFailed:       "تعذرت قراءة متغيرات البيئة",
		ConfigFileReadFailed:      "تعذرت قراءة ملف الإعدادات: {0}",
		ConfigMergeFailed:         "تعذر دمج مصادر الإعدادات",
	},
}
