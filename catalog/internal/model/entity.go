package model

// Entity names a catalog record type. Its value is the path segment used in
// canonical URLs.
type Entity string

const (
	EntityBook         Entity = "book"
	EntityAuthor       Entity = "author"
	EntityGenre        Entity = "genre"
	EntityBookInstance Entity = "bookinstance"
	EntityCountry      Entity = "country"
	EntityPrize        Entity = "prize"
	EntityFormato      Entity = "formato"
)

const catalogPrefix = "/catalog/"

// TagKinds are the name-only entities a Book can reference many of.
var TagKinds = []Entity{EntityGenre, EntityFormato, EntityPrize}

var plurals = map[Entity]string{
	EntityBook:         "books",
	EntityAuthor:       "authors",
	EntityGenre:        "genres",
	EntityBookInstance: "bookinstances",
	EntityCountry:      "countries",
	EntityPrize:        "prizes",
	EntityFormato:      "formatos",
}

var labels = map[Entity]string{
	EntityBook:         "Book",
	EntityAuthor:       "Author",
	EntityGenre:        "Genre",
	EntityBookInstance: "BookInstance",
	EntityCountry:      "Country",
	EntityPrize:        "Prize",
	EntityFormato:      "Formato",
}

func (e Entity) IsTag() bool {
	for _, k := range TagKinds {
		if k == e {
			return true
		}
	}
	return false
}

func (e Entity) Plural() string { return plurals[e] }

func (e Entity) Label() string { return labels[e] }

// URL is the canonical URL of the record with the given id.
func (e Entity) URL(id string) string {
	return catalogPrefix + string(e) + "/" + id
}

func (e Entity) ListURL() string {
	return catalogPrefix + e.Plural()
}

func (e Entity) CreateURL() string {
	return catalogPrefix + string(e) + "/create"
}
