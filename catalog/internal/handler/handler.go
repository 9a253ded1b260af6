package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
	mw "github.com/Astemirdum/local-library/pkg/middleware"
	"github.com/Astemirdum/local-library/pkg/validate"
)

type Handler struct {
	svc      CatalogService
	renderer echo.Renderer
	log      *zap.Logger
}

func New(svc CatalogService, renderer echo.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS    = 10
		catalogRPS = 100
	)
	e.HideBanner = true
	e.Renderer = h.renderer
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/catalog/")
	})

	catalog := e.Group("/catalog",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		middleware.BodyLimit("1M"),
		mw.NewRateLimiter(catalogRPS),
	)
	catalog.GET("", h.Index)
	catalog.GET("/", h.Index)

	// create routes go before the :id routes
	catalog.GET("/book/create", h.BookCreateGet)
	catalog.POST("/book/create", h.BookCreatePost)
	catalog.GET("/book/:id/delete", h.BookDeleteGet)
	catalog.POST("/book/:id/delete", h.BookDeletePost)
	catalog.GET("/book/:id/update", h.BookUpdateGet)
	catalog.POST("/book/:id/update", h.BookUpdatePost)
	catalog.GET("/book/:id", h.BookDetail)
	catalog.GET("/books", h.BookList)

	catalog.GET("/author/create", h.AuthorCreateGet)
	catalog.POST("/author/create", h.AuthorCreatePost)
	catalog.GET("/author/:id/delete", h.AuthorDeleteGet)
	catalog.POST("/author/:id/delete", h.AuthorDeletePost)
	catalog.GET("/author/:id/update", h.AuthorUpdateGet)
	catalog.POST("/author/:id/update", h.AuthorUpdatePost)
	catalog.GET("/author/:id", h.AuthorDetail)
	catalog.GET("/authors", h.AuthorList)

	catalog.GET("/bookinstance/create", h.BookInstanceCreateGet)
	catalog.POST("/bookinstance/create", h.BookInstanceCreatePost)
	catalog.GET("/bookinstance/:id/delete", h.BookInstanceDeleteGet)
	catalog.POST("/bookinstance/:id/delete", h.BookInstanceDeletePost)
	catalog.GET("/bookinstance/:id/update", h.BookInstanceUpdateGet)
	catalog.POST("/bookinstance/:id/update", h.BookInstanceUpdatePost)
	catalog.GET("/bookinstance/:id", h.BookInstanceDetail)
	catalog.GET("/bookinstances", h.BookInstanceList)

	catalog.GET("/country/create", h.CountryCreateGet)
	catalog.POST("/country/create", h.CountryCreatePost)
	catalog.GET("/country/:id/delete", h.CountryDeleteGet)
	catalog.POST("/country/:id/delete", h.CountryDeletePost)
	catalog.GET("/country/:id/update", h.CountryUpdateGet)
	catalog.POST("/country/:id/update", h.CountryUpdatePost)
	catalog.GET("/country/:id", h.CountryDetail)
	catalog.GET("/countries", h.CountryList)

	// genre, formato and prize share one controller
	for _, kind := range model.TagKinds {
		prefix := "/" + string(kind)
		catalog.GET(prefix+"/create", h.TagCreateGet(kind))
		catalog.POST(prefix+"/create", h.TagCreatePost(kind))
		catalog.GET(prefix+"/:id/delete", h.TagDeleteGet(kind))
		catalog.POST(prefix+"/:id/delete", h.TagDeletePost(kind))
		catalog.GET(prefix+"/:id/update", h.TagUpdateGet(kind))
		catalog.POST(prefix+"/:id/update", h.TagUpdatePost(kind))
		catalog.GET(prefix+"/:id", h.TagDetail(kind))
		catalog.GET("/"+kind.Plural(), h.TagList(kind))
	}

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err), zap.String("uri", c.Request().RequestURI))
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.Render(code, "error", view.Page{
			Title: http.StatusText(code),
			Data:  view.Error{Status: code, Message: msg},
		})
	}
	if err != nil {
		h.log.Error("render error page", zap.Error(err))
	}
}

// fail converts a service error into the HTTP error for entity.
func fail(entity model.Entity, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, entity.Label()+" not found")
	case errors.Is(err, errs.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) render(c echo.Context, name, title string, data any, ferrs []validate.FieldError) error {
	return c.Render(http.StatusOK, name, view.Page{Title: title, Data: data, Errors: ferrs})
}

// templateName maps an entity and page kind to its template; genre, formato
// and prize share the tag templates.
func templateName(entity model.Entity, page string) string {
	if entity.IsTag() {
		return "tag_" + page
	}
	return string(entity) + "_" + page
}
