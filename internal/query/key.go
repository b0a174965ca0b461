package query

const (
	EntityCategories       = "categories"
	EntitySubCategories    = "sub-categories"
	EntityServiceProviders = "service-providers"
)

// Key identifies one cached collection: an entity type plus the parent id
// that scopes it. Categories are unscoped.
type Key struct {
	Entity string
	Scope  string
}

func (k Key) String() string {
	if k.Scope == "" {
		return k.Entity
	}
	return k.Entity + "/" + k.Scope
}

func CategoriesKey() Key {
	return Key{Entity: EntityCategories}
}

func SubCategoriesKey(mainCategoryID string) Key {
	return Key{Entity: EntitySubCategories, Scope: mainCategoryID}
}

func ProvidersKey(subCategoryID string) Key {
	return Key{Entity: EntityServiceProviders, Scope: subCategoryID}
}
