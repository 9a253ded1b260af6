package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func TestEntity_URLs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		entity   model.Entity
		url      string
		listURL  string
		isTag    bool
		label    string
		createTo string
	}{
		{model.EntityBook, "/catalog/book/42", "/catalog/books", false, "Book", "/catalog/book/create"},
		{model.EntityAuthor, "/catalog/author/42", "/catalog/authors", false, "Author", "/catalog/author/create"},
		{model.EntityBookInstance, "/catalog/bookinstance/42", "/catalog/bookinstances", false, "BookInstance", "/catalog/bookinstance/create"},
		{model.EntityCountry, "/catalog/country/42", "/catalog/countries", false, "Country", "/catalog/country/create"},
		{model.EntityGenre, "/catalog/genre/42", "/catalog/genres", true, "Genre", "/catalog/genre/create"},
		{model.EntityPrize, "/catalog/prize/42", "/catalog/prizes", true, "Prize", "/catalog/prize/create"},
		{model.EntityFormato, "/catalog/formato/42", "/catalog/formatos", true, "Formato", "/catalog/formato/create"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.entity), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.url, tt.entity.URL("42"))
			require.Equal(t, tt.listURL, tt.entity.ListURL())
			require.Equal(t, tt.createTo, tt.entity.CreateURL())
			require.Equal(t, tt.isTag, tt.entity.IsTag())
			require.Equal(t, tt.label, tt.entity.Label())
		})
	}
}

func TestAuthor_Derived(t *testing.T) {
	t.Parallel()
	born := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	died := time.Date(1992, time.April, 6, 0, 0, 0, 0, time.UTC)

	a := model.Author{ID: "a1", FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: &born, DateOfDeath: &died}
	require.Equal(t, "Asimov, Isaac", a.Name())
	require.Equal(t, "Jan 2, 1920 - Apr 6, 1992", a.Lifespan())
	require.Equal(t, "1920-01-02", a.DateOfBirthInput())
	require.Equal(t, "/catalog/author/a1", a.URL())

	require.Equal(t, "", model.Author{FirstName: "Isaac"}.Name())
	require.Equal(t, "", model.Author{}.Lifespan())
	require.Equal(t, "", model.Author{}.DateOfDeathInput())
}

func TestBook_Tags(t *testing.T) {
	t.Parallel()
	var b model.Book
	for _, kind := range model.TagKinds {
		b.SetTags(kind, []model.Tag{{ID: string(kind) + "-1", Kind: kind}})
	}
	require.Equal(t, []string{"genre-1"}, model.TagIDs(b.Genres))
	require.Equal(t, []string{"formato-1"}, model.TagIDs(b.Tags(model.EntityFormato)))
	require.Equal(t, []string{"prize-1"}, model.TagIDs(b.Tags(model.EntityPrize)))
	require.Nil(t, b.Tags(model.EntityCountry))
	require.Equal(t, "/catalog/prize/prize-1", b.Prizes[0].URL())
}

func TestNewPaging(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		page      int
		total     int
		wantPages int
		offset    int
	}{
		{name: "empty", page: 0, total: 0, wantPages: 0, offset: 0},
		{name: "exact", page: 1, total: 10, wantPages: 2, offset: 5},
		{name: "ceil", page: 2, total: 11, wantPages: 3, offset: 10},
		{name: "single", page: 0, total: 1, wantPages: 1, offset: 0},
		{name: "negative page", page: -2, total: 7, wantPages: 2, offset: 0},
		{name: "page past int range", page: math.MaxInt/model.PageSize + 1, total: 7, wantPages: 2, offset: math.MaxInt / model.PageSize * model.PageSize},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := model.NewPaging(tt.page, model.PageSize, tt.total)
			require.Equal(t, tt.wantPages, p.Pages)
			require.Equal(t, tt.offset, p.Offset())
			require.Equal(t, tt.total, p.TotalElements)
		})
	}
}

func TestBookInstance_DueBack(t *testing.T) {
	t.Parallel()
	bi := model.BookInstance{ID: "c1", DueBack: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, "Mar 9, 2024", bi.DueBackFormatted())
	require.Equal(t, "2024-03-09", bi.DueBackInput())
	require.Equal(t, "/catalog/bookinstance/c1", bi.URL())
}
