package model

import (
	"time"
)

type Book struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Summary  string `json:"summary" db:"summary"`
	ISBN     string `json:"isbn" db:"isbn"`
	AuthorID string `json:"authorId" db:"author_id"`
	Author   Author `json:"author" db:"-"`
	Genres   []Tag  `json:"genres" db:"-"`
	Formatos []Tag  `json:"formatos" db:"-"`
	Prizes   []Tag  `json:"prizes" db:"-"`
}

func (b Book) URL() string { return EntityBook.URL(b.ID) }

// Tags returns the references of the given tag kind.
func (b Book) Tags(kind Entity) []Tag {
	switch kind {
	case EntityGenre:
		return b.Genres
	case EntityFormato:
		return b.Formatos
	case EntityPrize:
		return b.Prizes
	}
	return nil
}

func (b *Book) SetTags(kind Entity, tags []Tag) {
	switch kind {
	case EntityGenre:
		b.Genres = tags
	case EntityFormato:
		b.Formatos = tags
	case EntityPrize:
		b.Prizes = tags
	}
}

type Author struct {
	ID          string     `json:"id" db:"id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	FamilyName  string     `json:"familyName" db:"family_name"`
	DateOfBirth *time.Time `json:"dateOfBirth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"dateOfDeath" db:"date_of_death"`
	Countries   []Country  `json:"countries" db:"-"`
}

func (a Author) URL() string { return EntityAuthor.URL(a.ID) }

// Name is "family, first"; empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

func (a Author) Lifespan() string {
	if a.DateOfBirth == nil && a.DateOfDeath == nil {
		return ""
	}
	return displayDate(a.DateOfBirth) + " - " + displayDate(a.DateOfDeath)
}

func (a Author) DateOfBirthInput() string { return inputDate(a.DateOfBirth) }

func (a Author) DateOfDeathInput() string { return inputDate(a.DateOfDeath) }

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

var Statuses = []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

type BookInstance struct {
	ID      string    `json:"id" db:"id"`
	BookID  string    `json:"bookId" db:"book_id"`
	Book    Book      `json:"book" db:"-"`
	Imprint string    `json:"imprint" db:"imprint"`
	Status  Status    `json:"status" db:"status"`
	DueBack time.Time `json:"dueBack" db:"due_back"`
}

func (bi BookInstance) URL() string { return EntityBookInstance.URL(bi.ID) }

func (bi BookInstance) DueBackFormatted() string { return displayDate(&bi.DueBack) }

func (bi BookInstance) DueBackInput() string { return inputDate(&bi.DueBack) }

type Country struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Continent string `json:"continent" db:"continent"`
}

func (c Country) URL() string { return EntityCountry.URL(c.ID) }

// Tag is a Genre, Formato or Prize.
type Tag struct {
	ID   string `json:"id" db:"id"`
	Kind Entity `json:"kind" db:"-"`
	Name string `json:"name" db:"name"`
}

func (t Tag) URL() string { return t.Kind.URL(t.ID) }

func TagIDs(tags []Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func CountryIDs(countries []Country) []string {
	ids := make([]string, 0, len(countries))
	for _, c := range countries {
		ids = append(ids, c.ID)
	}
	return ids
}

// Counts feeds the catalog home page.
type Counts struct {
	Books                  int `json:"books"`
	BookInstances          int `json:"bookInstances"`
	BookInstancesAvailable int `json:"bookInstancesAvailable"`
	Authors                int `json:"authors"`
	Genres                 int `json:"genres"`
	Countries              int `json:"countries"`
	Prizes                 int `json:"prizes"`
	Formatos               int `json:"formatos"`
}

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

// Event is published after every successful catalog write.
type Event struct {
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	DateLayout    = time.DateOnly
	displayLayout = "Jan 2, 2006"
)

func displayDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayLayout)
}

func inputDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
