package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/handler"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"

	service_mocks "github.com/Astemirdum/local-library/catalog/internal/handler/mocks"
)

const (
	bookID     = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	authorID   = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	genreID    = "0c4b5b83-6a9e-4c1f-b4f1-2d0d0f5e7a10"
	countryID  = "4a1f0d2c-93b5-4f6e-8a0e-6c1d8b7e2f31"
	instanceID = "9e2d7c1b-5a4f-4b3e-8d2c-1f0e9d8c7b6a"
)

// recordingRenderer keeps the last rendered template and page.
type recordingRenderer struct {
	name string
	page view.Page
}

func (r *recordingRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(view.Page)
	_, err := io.WriteString(w, name)
	return err
}

type mockBehavior func(s *service_mocks.MockCatalogService)

type request struct {
	method string
	target string
	form   url.Values
}

type response struct {
	code     int
	template string
	location string
}

func serve(t *testing.T, behavior mockBehavior, req request) (*httptest.ResponseRecorder, *recordingRenderer) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockCatalogService(c)
	behavior(svc)
	rr := &recordingRenderer{}
	e := handler.New(svc, rr, zap.NewNop()).NewRouter()

	var body io.Reader = http.NoBody
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}
	r := httptest.NewRequest(req.method, req.target, body)
	if req.form != nil {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w, rr
}

func check(t *testing.T, w *httptest.ResponseRecorder, rr *recordingRenderer, want response) {
	t.Helper()
	require.Equal(t, want.code, w.Code)
	if want.template != "" {
		require.Equal(t, want.template, rr.name)
	}
	if want.location != "" {
		require.Equal(t, want.location, w.Header().Get(echo.HeaderLocation))
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	w, _ := serve(t, func(s *service_mocks.MockCatalogService) {}, request{method: http.MethodGet, target: "/manage/health"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_Root(t *testing.T) {
	t.Parallel()
	w, rr := serve(t, func(s *service_mocks.MockCatalogService) {}, request{method: http.MethodGet, target: "/"})
	check(t, w, rr, response{code: http.StatusFound, location: "/catalog/"})
}

func TestHandler_Index(t *testing.T) {
	t.Parallel()
	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		w, rr := serve(t, func(s *service_mocks.MockCatalogService) {
			s.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil).Times(7)
			s.EXPECT().CountBookInstancesByStatus(gomock.Any(), model.StatusAvailable).Return(1, nil)
		}, request{method: http.MethodGet, target: "/catalog/"})
		check(t, w, rr, response{code: http.StatusOK, template: "index"})
		data := rr.page.Data.(view.Index)
		require.Empty(t, data.Error)
		require.Equal(t, model.Counts{
			Books: 3, BookInstances: 3, BookInstancesAvailable: 1, Authors: 3,
			Genres: 3, Countries: 3, Prizes: 3, Formatos: 3,
		}, data.Counts)
	})
	t.Run("storage error is rendered", func(t *testing.T) {
		t.Parallel()
		w, rr := serve(t, func(s *service_mocks.MockCatalogService) {
			s.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db internal")).Times(7)
			s.EXPECT().CountBookInstancesByStatus(gomock.Any(), model.StatusAvailable).Return(0, errors.New("db internal"))
		}, request{method: http.MethodGet, target: "/catalog/"})
		check(t, w, rr, response{code: http.StatusOK, template: "index"})
		require.Equal(t, "db internal", rr.page.Data.(view.Index).Error)
	})
}

func TestHandler_BookList(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
		wantPaging   model.Paging
	}{
		{
			name:   "ok. first page",
			target: "/catalog/books?page=0&sort=title",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().ListBooks(gomock.Any(), model.ListQuery{Page: 0, Sort: "title"}).
					Return(model.List[model.Book]{
						Paging: model.NewPaging(0, model.PageSize, 7),
						Items:  make([]model.Book, model.PageSize),
					}, nil)
			},
			response:   response{code: http.StatusOK, template: "book_list"},
			wantPaging: model.Paging{Page: 0, PageSize: 5, TotalElements: 7, Pages: 2},
		},
		{
			name:   "ok. bad page and unknown sort",
			target: "/catalog/books?page=abc&sort=publisher",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().ListBooks(gomock.Any(), model.ListQuery{Page: 0, Sort: "publisher"}).
					Return(model.List[model.Book]{Paging: model.NewPaging(0, model.PageSize, 0)}, nil)
			},
			response:   response{code: http.StatusOK, template: "book_list"},
			wantPaging: model.Paging{Page: 0, PageSize: 5},
		},
		{
			name:   "ok. negative page",
			target: "/catalog/books?page=-2",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().ListBooks(gomock.Any(), model.ListQuery{Page: 0}).
					Return(model.List[model.Book]{Paging: model.NewPaging(0, model.PageSize, 1)}, nil)
			},
			response:   response{code: http.StatusOK, template: "book_list"},
			wantPaging: model.Paging{Page: 0, PageSize: 5, TotalElements: 1, Pages: 1},
		},
		{
			name:   "err. internal",
			target: "/catalog/books",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().ListBooks(gomock.Any(), model.ListQuery{}).
					Return(model.List[model.Book]{}, errors.New("db internal"))
			},
			response: response{code: http.StatusInternalServerError, template: "error"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: http.MethodGet, target: tt.target})
			check(t, w, rr, tt.response)
			if tt.response.template == "book_list" {
				list := rr.page.Data.(view.List[model.Book])
				require.LessOrEqual(t, len(list.Items), model.PageSize)
				require.Equal(t, tt.wantPaging, list.Paging)
				require.Len(t, list.PageLinks, tt.wantPaging.Pages)
				require.Len(t, list.SortLinks, 3)
			}
		})
	}
}

func TestHandler_DetailNotFound(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
	}{
		{
			name:   "book",
			target: "/catalog/book/" + bookID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{}, errs.ErrNotFound)
				s.EXPECT().ListBookInstancesByBook(gomock.Any(), bookID).Return(nil, nil)
			},
		},
		{
			name:   "author",
			target: "/catalog/author/" + authorID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetAuthor(gomock.Any(), authorID).Return(model.Author{}, errs.ErrNotFound)
				s.EXPECT().ListBooksByAuthor(gomock.Any(), authorID).Return(nil, nil)
			},
		},
		{
			name:   "bookinstance",
			target: "/catalog/bookinstance/" + instanceID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(model.BookInstance{}, errs.ErrNotFound)
			},
		},
		{
			name:   "country",
			target: "/catalog/country/" + countryID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetCountry(gomock.Any(), countryID).Return(model.Country{}, errs.ErrNotFound)
				s.EXPECT().ListAuthorsByCountry(gomock.Any(), countryID).Return(nil, nil)
			},
		},
		{
			name:   "genre",
			target: "/catalog/genre/" + genreID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetTag(gomock.Any(), model.EntityGenre, genreID).Return(model.Tag{}, errs.ErrNotFound)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityGenre, genreID).Return(nil, nil)
			},
		},
		{
			name:   "prize",
			target: "/catalog/prize/" + genreID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetTag(gomock.Any(), model.EntityPrize, genreID).Return(model.Tag{}, errs.ErrNotFound)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityPrize, genreID).Return(nil, nil)
			},
		},
		{
			name:   "formato",
			target: "/catalog/formato/" + genreID,
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetTag(gomock.Any(), model.EntityFormato, genreID).Return(model.Tag{}, errs.ErrNotFound)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityFormato, genreID).Return(nil, nil)
			},
		},
		{
			name:         "malformed id",
			target:       "/catalog/book/not-a-uuid",
			mockBehavior: func(s *service_mocks.MockCatalogService) {},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: http.MethodGet, target: tt.target})
			check(t, w, rr, response{code: http.StatusNotFound, template: "error"})
			require.Equal(t, http.StatusNotFound, rr.page.Data.(view.Error).Status)
		})
	}
}

func TestHandler_BookDetail(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: bookID, Title: "Foundation", AuthorID: authorID}
	instances := []model.BookInstance{{ID: instanceID, BookID: bookID, Status: model.StatusAvailable}}
	w, rr := serve(t, func(s *service_mocks.MockCatalogService) {
		s.EXPECT().GetBook(gomock.Any(), bookID).Return(book, nil)
		s.EXPECT().ListBookInstancesByBook(gomock.Any(), bookID).Return(instances, nil)
	}, request{method: http.MethodGet, target: "/catalog/book/" + bookID})
	check(t, w, rr, response{code: http.StatusOK, template: "book_detail"})
	require.Equal(t, view.BookDetail{Book: book, Instances: instances}, rr.page.Data)
	require.Equal(t, "Foundation", rr.page.Title)
}

func expectBookRefs(s *service_mocks.MockCatalogService) {
	s.EXPECT().AllAuthors(gomock.Any()).Return([]model.Author{{ID: authorID, FirstName: "Isaac", FamilyName: "Asimov"}}, nil)
	s.EXPECT().AllTags(gomock.Any(), model.EntityGenre).Return([]model.Tag{{ID: genreID, Kind: model.EntityGenre, Name: "Fantasy"}}, nil)
	s.EXPECT().AllTags(gomock.Any(), model.EntityFormato).Return(nil, nil)
	s.EXPECT().AllTags(gomock.Any(), model.EntityPrize).Return(nil, nil)
}

func TestHandler_BookCreatePost(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		form         url.Values
		mockBehavior mockBehavior
		response     response
		wantErrors   []string
	}{
		{
			name: "ok",
			form: url.Values{
				"title":   {"  Foundation "},
				"author":  {authorID},
				"summary": {"Psychohistory"},
				"isbn":    {"9780553293357"},
				"genre":   {genreID, " ", genreID},
			},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().CreateBook(gomock.Any(), model.Book{
					Title:    "Foundation",
					Summary:  "Psychohistory",
					ISBN:     "9780553293357",
					AuthorID: authorID,
					Genres:   []model.Tag{{ID: genreID, Kind: model.EntityGenre}},
					Formatos: []model.Tag{},
					Prizes:   []model.Tag{},
				}).DoAndReturn(func(_ interface{}, b model.Book) (model.Book, error) {
					b.ID = bookID
					return b, nil
				})
			},
			response: response{code: http.StatusFound, location: "/catalog/book/" + bookID},
		},
		{
			name: "err. missing required fields re-renders the form",
			form: url.Values{
				"title": {"Foundation"},
				"genre": {genreID},
			},
			mockBehavior: expectBookRefs,
			response:     response{code: http.StatusOK, template: "book_form"},
			wantErrors:   []string{"author", "summary", "isbn"},
		},
		{
			name: "err. unknown reference",
			form: url.Values{
				"title":   {"Foundation"},
				"author":  {"missing"},
				"summary": {"Psychohistory"},
				"isbn":    {"9780553293357"},
			},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(model.Book{}, errors.Wrap(errs.ErrInvalidReference, "books_author_id_fkey"))
			},
			response: response{code: http.StatusBadRequest, template: "error"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: http.MethodPost, target: "/catalog/book/create", form: tt.form})
			check(t, w, rr, tt.response)
			if tt.wantErrors == nil {
				return
			}
			params := make([]string, 0, len(rr.page.Errors))
			for _, fe := range rr.page.Errors {
				params = append(params, fe.Param)
			}
			require.ElementsMatch(t, tt.wantErrors, params)
			form := rr.page.Data.(view.BookForm)
			require.Equal(t, "Foundation", form.Title)
			require.True(t, form.Genres[0].Selected)
		})
	}
}

func TestHandler_BookUpdateGet(t *testing.T) {
	t.Parallel()
	w, rr := serve(t, func(s *service_mocks.MockCatalogService) {
		s.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{
			ID: bookID, Title: "Foundation", AuthorID: authorID,
			Genres: []model.Tag{{ID: genreID, Kind: model.EntityGenre, Name: "Fantasy"}},
		}, nil)
		expectBookRefs(s)
	}, request{method: http.MethodGet, target: "/catalog/book/" + bookID + "/update"})
	check(t, w, rr, response{code: http.StatusOK, template: "book_form"})
	form := rr.page.Data.(view.BookForm)
	require.Equal(t, "Update Book", rr.page.Title)
	require.True(t, form.Authors[0].Selected)
	require.True(t, form.Genres[0].Selected)
}

func TestHandler_AuthorUpdatePost(t *testing.T) {
	t.Parallel()
	born := time.Date(1920, 1, 2, 0, 0, 0, 0, time.UTC)
	var tests = []struct {
		name         string
		target       string
		form         url.Values
		mockBehavior mockBehavior
		response     response
		wantErrors   map[string]string
	}{
		{
			name:   "ok. sanitized fields and id preserved",
			target: "/catalog/author/" + authorID + "/update",
			form: url.Values{
				"first_name":    {" Isaac "},
				"family_name":   {"Asimov"},
				"date_of_birth": {"1920-01-02"},
				"country":       {countryID},
			},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				want := model.Author{
					ID:          authorID,
					FirstName:   "Isaac",
					FamilyName:  "Asimov",
					DateOfBirth: &born,
					Countries:   []model.Country{{ID: countryID}},
				}
				s.EXPECT().UpdateAuthor(gomock.Any(), want).Return(want, nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/author/" + authorID},
		},
		{
			name:   "err. invalid fields",
			target: "/catalog/author/" + authorID + "/update",
			form: url.Values{
				"first_name":    {"Isaac!"},
				"family_name":   {""},
				"date_of_death": {"02/01/1992"},
			},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().AllCountries(gomock.Any()).Return(nil, nil)
			},
			response: response{code: http.StatusOK, template: "author_form"},
			wantErrors: map[string]string{
				"first_name":    "First name has non-alphanumeric characters.",
				"family_name":   "Family name must be specified.",
				"date_of_death": "Invalid date of death",
			},
		},
		{
			name:   "err. not found",
			target: "/catalog/author/" + authorID + "/update",
			form:   url.Values{"first_name": {"Isaac"}, "family_name": {"Asimov"}},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().UpdateAuthor(gomock.Any(), gomock.Any()).Return(model.Author{}, errs.ErrNotFound)
			},
			response: response{code: http.StatusNotFound, template: "error"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: http.MethodPost, target: tt.target, form: tt.form})
			check(t, w, rr, tt.response)
			if tt.wantErrors == nil {
				return
			}
			got := make(map[string]string, len(rr.page.Errors))
			for _, fe := range rr.page.Errors {
				got[fe.Param] = fe.Msg
			}
			require.Equal(t, tt.wantErrors, got)
			require.Equal(t, "02/01/1992", rr.page.Data.(view.AuthorForm).DateOfDeath)
		})
	}
}

func TestHandler_BookInstanceCreatePost(t *testing.T) {
	t.Parallel()
	due := time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)
	w, rr := serve(t, func(s *service_mocks.MockCatalogService) {
		want := model.BookInstance{BookID: bookID, Imprint: "Gnome, 1951", Status: model.StatusMaintenance, DueBack: due}
		s.EXPECT().CreateBookInstance(gomock.Any(), want).DoAndReturn(func(_ interface{}, bi model.BookInstance) (model.BookInstance, error) {
			bi.ID = instanceID
			return bi, nil
		})
	}, request{method: http.MethodPost, target: "/catalog/bookinstance/create", form: url.Values{
		"book":     {bookID},
		"imprint":  {"Gnome, 1951"},
		"due_back": {"2023-03-09"},
	}})
	check(t, w, rr, response{code: http.StatusFound, location: "/catalog/bookinstance/" + instanceID})
}

func TestHandler_TagCreatePost(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		target       string
		form         url.Values
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok. new genre",
			target: "/catalog/genre/create",
			form:   url.Values{"name": {" Fantasy "}},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().FindTagByName(gomock.Any(), model.EntityGenre, "Fantasy").Return(model.Tag{}, errs.ErrNotFound)
				s.EXPECT().CreateTag(gomock.Any(), model.Tag{Kind: model.EntityGenre, Name: "Fantasy"}).
					Return(model.Tag{ID: genreID, Kind: model.EntityGenre, Name: "Fantasy"}, nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/genre/" + genreID},
		},
		{
			name:   "ok. duplicate redirects to the existing genre",
			target: "/catalog/genre/create",
			form:   url.Values{"name": {"Fantasy"}},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().FindTagByName(gomock.Any(), model.EntityGenre, "Fantasy").
					Return(model.Tag{ID: genreID, Kind: model.EntityGenre, Name: "Fantasy"}, nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/genre/" + genreID},
		},
		{
			name:   "ok. duplicate prize",
			target: "/catalog/prize/create",
			form:   url.Values{"name": {"Hugo"}},
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().FindTagByName(gomock.Any(), model.EntityPrize, "Hugo").
					Return(model.Tag{ID: genreID, Kind: model.EntityPrize, Name: "Hugo"}, nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/prize/" + genreID},
		},
		{
			name:         "err. name required",
			target:       "/catalog/formato/create",
			form:         url.Values{"name": {"   "}},
			mockBehavior: func(s *service_mocks.MockCatalogService) {},
			response:     response{code: http.StatusOK, template: "tag_form"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: http.MethodPost, target: tt.target, form: tt.form})
			check(t, w, rr, tt.response)
			if tt.response.template == "tag_form" {
				require.Len(t, rr.page.Errors, 1)
				require.Equal(t, "Formato name required", rr.page.Errors[0].Msg)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		method       string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "book with copies is kept",
			method: http.MethodPost,
			target: "/catalog/book/" + bookID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil)
				s.EXPECT().ListBookInstancesByBook(gomock.Any(), bookID).Return([]model.BookInstance{{ID: instanceID}}, nil)
			},
			response: response{code: http.StatusOK, template: "book_delete"},
		},
		{
			name:   "book without copies is removed",
			method: http.MethodPost,
			target: "/catalog/book/" + bookID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil)
				s.EXPECT().ListBookInstancesByBook(gomock.Any(), bookID).Return(nil, nil)
				s.EXPECT().DeleteBook(gomock.Any(), bookID).Return(nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/books"},
		},
		{
			name:   "author with books is kept",
			method: http.MethodPost,
			target: "/catalog/author/" + authorID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetAuthor(gomock.Any(), authorID).Return(model.Author{ID: authorID}, nil)
				s.EXPECT().ListBooksByAuthor(gomock.Any(), authorID).Return([]model.Book{{ID: bookID}}, nil)
			},
			response: response{code: http.StatusOK, template: "author_delete"},
		},
		{
			name:   "country guard uses the country id",
			method: http.MethodPost,
			target: "/catalog/country/" + countryID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetCountry(gomock.Any(), countryID).Return(model.Country{ID: countryID}, nil)
				s.EXPECT().ListAuthorsByCountry(gomock.Any(), countryID).Return([]model.Author{{ID: authorID}}, nil)
			},
			response: response{code: http.StatusOK, template: "country_delete"},
		},
		{
			name:   "genre without books is removed",
			method: http.MethodPost,
			target: "/catalog/genre/" + genreID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetTag(gomock.Any(), model.EntityGenre, genreID).Return(model.Tag{ID: genreID, Kind: model.EntityGenre}, nil)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityGenre, genreID).Return(nil, nil)
				s.EXPECT().DeleteTag(gomock.Any(), model.EntityGenre, genreID).Return(nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/genres"},
		},
		{
			name:   "dependent added after the check",
			method: http.MethodPost,
			target: "/catalog/formato/" + genreID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetTag(gomock.Any(), model.EntityFormato, genreID).Return(model.Tag{ID: genreID, Kind: model.EntityFormato}, nil).Times(2)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityFormato, genreID).Return(nil, nil)
				s.EXPECT().ListBooksByTag(gomock.Any(), model.EntityFormato, genreID).Return([]model.Book{{ID: bookID}}, nil)
				s.EXPECT().DeleteTag(gomock.Any(), model.EntityFormato, genreID).Return(errs.ErrHasDependents)
			},
			response: response{code: http.StatusOK, template: "tag_delete"},
		},
		{
			name:   "copy is removed",
			method: http.MethodPost,
			target: "/catalog/bookinstance/" + instanceID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(model.BookInstance{ID: instanceID}, nil)
				s.EXPECT().DeleteBookInstance(gomock.Any(), instanceID).Return(nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/bookinstances"},
		},
		{
			name:   "confirmation of a missing record redirects to the list",
			method: http.MethodGet,
			target: "/catalog/country/" + countryID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetCountry(gomock.Any(), countryID).Return(model.Country{}, errs.ErrNotFound)
				s.EXPECT().ListAuthorsByCountry(gomock.Any(), countryID).Return(nil, nil)
			},
			response: response{code: http.StatusFound, location: "/catalog/countries"},
		},
		{
			name:   "confirmation",
			method: http.MethodGet,
			target: "/catalog/author/" + authorID + "/delete",
			mockBehavior: func(s *service_mocks.MockCatalogService) {
				s.EXPECT().GetAuthor(gomock.Any(), authorID).Return(model.Author{ID: authorID}, nil)
				s.EXPECT().ListBooksByAuthor(gomock.Any(), authorID).Return(nil, nil)
			},
			response: response{code: http.StatusOK, template: "author_delete"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, rr := serve(t, tt.mockBehavior, request{method: tt.method, target: tt.target})
			check(t, w, rr, tt.response)
		})
	}
}
