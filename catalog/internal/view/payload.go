package view

import (
	"net/url"
	"strconv"

	"github.com/Astemirdum/local-library/catalog/internal/model"
)

type Link struct {
	Label   string
	URL     string
	Current bool
}

type SortKey struct {
	Key   string
	Label string
}

type List[T any] struct {
	Entity    model.Entity
	Items     []T
	Paging    model.Paging
	PageLinks []Link
	SortLinks []Link
}

func NewList[T any](entity model.Entity, list model.List[T], query url.Values, sorts []SortKey) List[T] {
	return List[T]{
		Entity:    entity,
		Items:     list.Items,
		Paging:    list.Paging,
		PageLinks: PageLinks(query, list.Paging),
		SortLinks: SortLinks(sorts),
	}
}

// PageLinks builds one link per page. Other query parameters are kept.
func PageLinks(query url.Values, paging model.Paging) []Link {
	links := make([]Link, 0, paging.Pages)
	for i := 0; i < paging.Pages; i++ {
		q := make(url.Values, len(query)+1)
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(i))
		links = append(links, Link{
			Label:   strconv.Itoa(i + 1),
			URL:     "?" + q.Encode(),
			Current: i == paging.Page,
		})
	}
	return links
}

// SortLinks builds column header links; sorting always restarts at page 0.
func SortLinks(keys []SortKey) []Link {
	links := make([]Link, 0, len(keys))
	for _, k := range keys {
		q := url.Values{}
		q.Set("sort", k.Key)
		q.Set("page", "0")
		links = append(links, Link{Label: k.Label, URL: "?" + q.Encode()})
	}
	return links
}

// Option is one entry of a select or checkbox group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func Options[T any](items []T, entry func(T) (value, label string), selected []string) []Option {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	opts := make([]Option, 0, len(items))
	for _, item := range items {
		value, label := entry(item)
		_, ok := set[value]
		opts = append(opts, Option{Value: value, Label: label, Selected: ok})
	}
	return opts
}

func AuthorOption(a model.Author) (string, string) { return a.ID, a.Name() }

func BookOption(b model.Book) (string, string) { return b.ID, b.Title }

func CountryOption(c model.Country) (string, string) { return c.ID, c.Name }

func TagOption(t model.Tag) (string, string) { return t.ID, t.Name }

func StatusOption(s model.Status) (string, string) { return string(s), string(s) }

type Index struct {
	Counts model.Counts
	Error  string
}

type Error struct {
	Status  int
	Message string
}

type BookDetail struct {
	Book      model.Book
	Instances []model.BookInstance
}

type AuthorDetail struct {
	Author model.Author
	Books  []model.Book
}

type CountryDetail struct {
	Country model.Country
	Authors []model.Author
}

type TagDetail struct {
	Tag   model.Tag
	Books []model.Book
}

// Form payloads hold the submitted strings so a rejected form is shown back
// exactly as typed.

type BookForm struct {
	Title    string
	Summary  string
	ISBN     string
	Authors  []Option
	Genres   []Option
	Formatos []Option
	Prizes   []Option
}

type AuthorForm struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
	Countries   []Option
}

type BookInstanceForm struct {
	Imprint  string
	DueBack  string
	Books    []Option
	Statuses []Option
}

type CountryForm struct {
	Name      string
	Continent string
}

type TagForm struct {
	Kind model.Entity
	Name string
}
