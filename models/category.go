package models

// MainCategory is the top level of the catalog taxonomy.
type MainCategory struct {
	ID               string   `json:"_id,omitempty" yaml:"id"`
	EnglishName      string   `json:"englishName" yaml:"english_name"`
	ArabicName       string   `json:"arabicName" yaml:"arabic_name"`
	SubCategories    []string `json:"subCategories,omitempty" yaml:"sub_categories,omitempty"`
	SubCategoryCount *int     `json:"subCategoryCount,omitempty" yaml:"sub_category_count,omitempty"`
}

// SubCategory belongs to exactly one MainCategory. The parent reference is
// held by the remote API only.
type SubCategory struct {
	ID                   string   `json:"_id,omitempty" yaml:"id"`
	EnglishName          string   `json:"englishName" yaml:"english_name"`
	ArabicName           string   `json:"arabicName" yaml:"arabic_name"`
	ServiceProviders     []string `json:"serviceProvider,omitempty" yaml:"service_providers,omitempty"`
	ServiceProviderCount *int     `json:"serviceProviderCount,omitempty" yaml:"service_provider_count,omitempty"`
}

// CategoryNames is the write shape shared by main and sub categories.
type CategoryNames struct {
	EnglishName string `json:"englishName"`
	ArabicName  string `json:"arabicName"`
}

// Count returns the number of sub-categories, preferring the server count.
func (c *MainCategory) Count() int {
	if c.SubCategoryCount != nil {
		return *c.SubCategoryCount
	}
	return len(c.SubCategories)
}

// Count returns the number of providers, preferring the server count.
func (s *SubCategory) Count() int {
	if s.ServiceProviderCount != nil {
		return *s.ServiceProviderCount
	}
	return len(s.ServiceProviders)
}
