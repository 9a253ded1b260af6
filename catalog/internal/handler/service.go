package handler

import (
	"context"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ CatalogService = (*service.Service)(nil)

type CatalogService interface {
	Count(ctx context.Context, entity model.Entity) (int, error)
	CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error)

	ListBooks(ctx context.Context, q model.ListQuery) (model.List[model.Book], error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	AllBooks(ctx context.Context) ([]model.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error)
	ListBooksByTag(ctx context.Context, kind model.Entity, tagID string) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error

	ListAuthors(ctx context.Context, q model.ListQuery) (model.List[model.Author], error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	AllAuthors(ctx context.Context) ([]model.Author, error)
	ListAuthorsByCountry(ctx context.Context, countryID string) ([]model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error

	ListBookInstances(ctx context.Context, q model.ListQuery) (model.List[model.BookInstance], error)
	GetBookInstance(ctx context.Context, id string) (model.BookInstance, error)
	ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error)
	CreateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id string) error

	ListCountries(ctx context.Context, q model.ListQuery) (model.List[model.Country], error)
	GetCountry(ctx context.Context, id string) (model.Country, error)
	AllCountries(ctx context.Context) ([]model.Country, error)
	CreateCountry(ctx context.Context, country model.Country) (model.Country, error)
	UpdateCountry(ctx context.Context, country model.Country) (model.Country, error)
	DeleteCountry(ctx context.Context, id string) error

	ListTags(ctx context.Context, kind model.Entity, q model.ListQuery) (model.List[model.Tag], error)
	GetTag(ctx context.Context, kind model.Entity, id string) (model.Tag, error)
	AllTags(ctx context.Context, kind model.Entity) ([]model.Tag, error)
	FindTagByName(ctx context.Context, kind model.Entity, name string) (model.Tag, error)
	CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	UpdateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	DeleteTag(ctx context.Context, kind model.Entity, id string) error
}
