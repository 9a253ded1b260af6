package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Publisher
	now    func() time.Time
}

func NewService(repo repository.Repository, events Publisher, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("service"),
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// publish reports a successful write. A failed send is logged only.
func (s *Service) publish(ctx context.Context, entity model.Entity, action model.Action, id string) {
	event := model.Event{
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish event",
			zap.Error(err),
			zap.String("entity", string(entity)),
			zap.String("action", string(action)),
			zap.String("id", id))
	}
}

func (s *Service) Count(ctx context.Context, entity model.Entity) (int, error) {
	return s.repo.Count(ctx, entity)
}

func (s *Service) CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error) {
	return s.repo.CountBookInstancesByStatus(ctx, status)
}

func (s *Service) ListBooks(ctx context.Context, q model.ListQuery) (model.List[model.Book], error) {
	return s.repo.ListBooks(ctx, q)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) AllBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.AllBooks(ctx)
}

func (s *Service) ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	return s.repo.ListBooksByAuthor(ctx, authorID)
}

func (s *Service) ListBooksByTag(ctx context.Context, kind model.Entity, tagID string) ([]model.Book, error) {
	return s.repo.ListBooksByTag(ctx, kind, tagID)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, model.EntityBook, model.ActionCreated, book.ID)
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, model.EntityBook, model.ActionUpdated, book.ID)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EntityBook, model.ActionDeleted, id)
	return nil
}

func (s *Service) ListAuthors(ctx context.Context, q model.ListQuery) (model.List[model.Author], error) {
	return s.repo.ListAuthors(ctx, q)
}

func (s *Service) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) AllAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.AllAuthors(ctx)
}

func (s *Service) ListAuthorsByCountry(ctx context.Context, countryID string) ([]model.Author, error) {
	return s.repo.ListAuthorsByCountry(ctx, countryID)
}

func (s *Service) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	author, err := s.repo.CreateAuthor(ctx, author)
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, model.EntityAuthor, model.ActionCreated, author.ID)
	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	author, err := s.repo.UpdateAuthor(ctx, author)
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, model.EntityAuthor, model.ActionUpdated, author.ID)
	return author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	if err := s.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EntityAuthor, model.ActionDeleted, id)
	return nil
}

func (s *Service) ListBookInstances(ctx context.Context, q model.ListQuery) (model.List[model.BookInstance], error) {
	return s.repo.ListBookInstances(ctx, q)
}

func (s *Service) GetBookInstance(ctx context.Context, id string) (model.BookInstance, error) {
	return s.repo.GetBookInstance(ctx, id)
}

func (s *Service) ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error) {
	return s.repo.ListBookInstancesByBook(ctx, bookID)
}

func (s *Service) CreateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error) {
	bi, err := s.repo.CreateBookInstance(ctx, bi)
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, model.EntityBookInstance, model.ActionCreated, bi.ID)
	return bi, nil
}

func (s *Service) UpdateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error) {
	bi, err := s.repo.UpdateBookInstance(ctx, bi)
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, model.EntityBookInstance, model.ActionUpdated, bi.ID)
	return bi, nil
}

func (s *Service) DeleteBookInstance(ctx context.Context, id string) error {
	if err := s.repo.DeleteBookInstance(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EntityBookInstance, model.ActionDeleted, id)
	return nil
}

func (s *Service) ListCountries(ctx context.Context, q model.ListQuery) (model.List[model.Country], error) {
	return s.repo.ListCountries(ctx, q)
}

func (s *Service) GetCountry(ctx context.Context, id string) (model.Country, error) {
	return s.repo.GetCountry(ctx, id)
}

func (s *Service) AllCountries(ctx context.Context) ([]model.Country, error) {
	return s.repo.AllCountries(ctx)
}

func (s *Service) CreateCountry(ctx context.Context, country model.Country) (model.Country, error) {
	country, err := s.repo.CreateCountry(ctx, country)
	if err != nil {
		return model.Country{}, err
	}
	s.publish(ctx, model.EntityCountry, model.ActionCreated, country.ID)
	return country, nil
}

func (s *Service) UpdateCountry(ctx context.Context, country model.Country) (model.Country, error) {
	country, err := s.repo.UpdateCountry(ctx, country)
	if err != nil {
		return model.Country{}, err
	}
	s.publish(ctx, model.EntityCountry, model.ActionUpdated, country.ID)
	return country, nil
}

func (s *Service) DeleteCountry(ctx context.Context, id string) error {
	if err := s.repo.DeleteCountry(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EntityCountry, model.ActionDeleted, id)
	return nil
}

func (s *Service) ListTags(ctx context.Context, kind model.Entity, q model.ListQuery) (model.List[model.Tag], error) {
	return s.repo.ListTags(ctx, kind, q)
}

func (s *Service) GetTag(ctx context.Context, kind model.Entity, id string) (model.Tag, error) {
	return s.repo.GetTag(ctx, kind, id)
}

func (s *Service) AllTags(ctx context.Context, kind model.Entity) ([]model.Tag, error) {
	return s.repo.AllTags(ctx, kind)
}

func (s *Service) FindTagByName(ctx context.Context, kind model.Entity, name string) (model.Tag, error) {
	return s.repo.FindTagByName(ctx, kind, name)
}

func (s *Service) CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tag, err := s.repo.CreateTag(ctx, tag)
	if err != nil {
		return model.Tag{}, err
	}
	s.publish(ctx, tag.Kind, model.ActionCreated, tag.ID)
	return tag, nil
}

func (s *Service) UpdateTag(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tag, err := s.repo.UpdateTag(ctx, tag)
	if err != nil {
		return model.Tag{}, err
	}
	s.publish(ctx, tag.Kind, model.ActionUpdated, tag.ID)
	return tag, nil
}

func (s *Service) DeleteTag(ctx context.Context, kind model.Entity, id string) error {
	if err := s.repo.DeleteTag(ctx, kind, id); err != nil {
		return err
	}
	s.publish(ctx, kind, model.ActionDeleted, id)
	return nil
}
