package handler

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/validate"
)

type form interface {
	sanitize()
}

// bindForm binds, trims and validates a submitted form. Field errors are
// returned for re-rendering; err is reserved for requests that cannot be read.
func bindForm(c echo.Context, f form, msgs validate.Messages) ([]validate.FieldError, error) {
	if err := c.Bind(f); err != nil {
		return nil, err
	}
	f.sanitize()
	return validate.Errors(c.Validate(f), msgs)
}

type bookForm struct {
	Title    string   `form:"title" validate:"required"`
	Author   string   `form:"author" validate:"required"`
	Summary  string   `form:"summary" validate:"required"`
	ISBN     string   `form:"isbn" validate:"required"`
	Genres   []string `form:"genre"`
	Formatos []string `form:"formato"`
	Prizes   []string `form:"prize"`
}

var bookMessages = validate.Messages{
	"title":   "Title must not be empty.",
	"author":  "Author must not be empty.",
	"summary": "Summary must not be empty.",
	"isbn":    "ISBN must not be empty",
}

func (f *bookForm) sanitize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Summary = strings.TrimSpace(f.Summary)
	f.ISBN = strings.TrimSpace(f.ISBN)
	f.Genres = normalizeIDs(f.Genres)
	f.Formatos = normalizeIDs(f.Formatos)
	f.Prizes = normalizeIDs(f.Prizes)
}

func (f *bookForm) tagIDs(kind model.Entity) []string {
	switch kind {
	case model.EntityGenre:
		return f.Genres
	case model.EntityFormato:
		return f.Formatos
	case model.EntityPrize:
		return f.Prizes
	}
	return nil
}

func (f *bookForm) toModel(id string) model.Book {
	book := model.Book{
		ID:       id,
		Title:    f.Title,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		AuthorID: f.Author,
	}
	for _, kind := range model.TagKinds {
		ids := f.tagIDs(kind)
		tags := make([]model.Tag, 0, len(ids))
		for _, tagID := range ids {
			tags = append(tags, model.Tag{ID: tagID, Kind: kind})
		}
		book.SetTags(kind, tags)
	}
	return book
}

func bookFormOf(b model.Book) bookForm {
	return bookForm{
		Title:    b.Title,
		Author:   b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		Genres:   model.TagIDs(b.Genres),
		Formatos: model.TagIDs(b.Formatos),
		Prizes:   model.TagIDs(b.Prizes),
	}
}

type authorForm struct {
	FirstName   string   `form:"first_name" validate:"required,max=100,alphanumunicode"`
	FamilyName  string   `form:"family_name" validate:"required,max=100,alphanumunicode"`
	DateOfBirth string   `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string   `form:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
	Countries   []string `form:"country"`
}

var authorMessages = validate.Messages{
	"first_name.required":         "First name must be specified.",
	"first_name.alphanumunicode":  "First name has non-alphanumeric characters.",
	"family_name.required":        "Family name must be specified.",
	"family_name.alphanumunicode": "Family name has non-alphanumeric characters.",
	"date_of_birth":               "Invalid date of birth",
	"date_of_death":               "Invalid date of death",
}

func (f *authorForm) sanitize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.FamilyName = strings.TrimSpace(f.FamilyName)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.DateOfDeath = strings.TrimSpace(f.DateOfDeath)
	f.Countries = normalizeIDs(f.Countries)
}

func (f *authorForm) toModel(id string) model.Author {
	countries := make([]model.Country, 0, len(f.Countries))
	for _, countryID := range f.Countries {
		countries = append(countries, model.Country{ID: countryID})
	}
	return model.Author{
		ID:          id,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: parseDate(f.DateOfBirth),
		DateOfDeath: parseDate(f.DateOfDeath),
		Countries:   countries,
	}
}

func authorFormOf(a model.Author) authorForm {
	return authorForm{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirthInput(),
		DateOfDeath: a.DateOfDeathInput(),
		Countries:   model.CountryIDs(a.Countries),
	}
}

type bookInstanceForm struct {
	Book    string `form:"book" validate:"required"`
	Imprint string `form:"imprint" validate:"required"`
	Status  string `form:"status" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `form:"due_back" validate:"omitempty,datetime=2006-01-02"`
}

var bookInstanceMessages = validate.Messages{
	"book":     "Book must be specified",
	"imprint":  "Imprint must be specified",
	"status":   "Status must be one of Available, Maintenance, Loaned, Reserved",
	"due_back": "Invalid date",
}

func (f *bookInstanceForm) sanitize() {
	f.Book = strings.TrimSpace(f.Book)
	f.Imprint = strings.TrimSpace(f.Imprint)
	f.Status = strings.TrimSpace(f.Status)
	if f.Status == "" {
		f.Status = string(model.StatusMaintenance)
	}
	f.DueBack = strings.TrimSpace(f.DueBack)
}

// toModel defaults an empty due date to today.
func (f *bookInstanceForm) toModel(id string, now time.Time) model.BookInstance {
	due := now
	if d := parseDate(f.DueBack); d != nil {
		due = *d
	}
	return model.BookInstance{
		ID:      id,
		BookID:  f.Book,
		Imprint: f.Imprint,
		Status:  model.Status(f.Status),
		DueBack: due,
	}
}

func bookInstanceFormOf(bi model.BookInstance) bookInstanceForm {
	return bookInstanceForm{
		Book:    bi.BookID,
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBackInput(),
	}
}

type countryForm struct {
	Name      string `form:"name" validate:"required,max=100"`
	Continent string `form:"continent" validate:"required,max=100"`
}

var countryMessages = validate.Messages{
	"name":      "Name must be specified.",
	"continent": "Continent must be specified.",
}

func (f *countryForm) sanitize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Continent = strings.TrimSpace(f.Continent)
}

func (f *countryForm) toModel(id string) model.Country {
	return model.Country{ID: id, Name: f.Name, Continent: f.Continent}
}

type tagForm struct {
	Name string `form:"name" validate:"required,max=100"`
}

func tagMessages(kind model.Entity) validate.Messages {
	return validate.Messages{"name": kind.Label() + " name required"}
}

func (f *tagForm) sanitize() {
	f.Name = strings.TrimSpace(f.Name)
}
