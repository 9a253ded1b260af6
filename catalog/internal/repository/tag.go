package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

func withKind(kind model.Entity, tags []model.Tag) []model.Tag {
	for i := range tags {
		tags[i].Kind = kind
	}
	return tags
}

func (r *repository) ListTags(ctx context.Context, kind model.Entity, q model.ListQuery) (model.List[model.Tag], error) {
	tt, err := tagTables(kind)
	if err != nil {
		return model.List[model.Tag]{}, err
	}
	total, err := r.Count(ctx, kind)
	if err != nil {
		return model.List[model.Tag]{}, err
	}
	tags, err := selectAll[model.Tag](ctx, r.db,
		paginate(qb.Select("id", "name").From(tt.table), q, tagSorts, "name", "id"))
	if err != nil {
		return model.List[model.Tag]{}, mapErr(err, "ListTags", nil)
	}
	return model.List[model.Tag]{
		Paging: model.NewPaging(q.Page, model.PageSize, total),
		Items:  withKind(kind, tags),
	}, nil
}

func (r *repository) GetTag(ctx context.Context, kind model.Entity, id string) (model.Tag, error) {
	return r.findTag(ctx, kind, sq.Eq{"id": id}, "GetTag")
}

func (r *repository) FindTagByName(ctx context.Context, kind model.Entity, name string) (model.Tag, error) {
	return r.findTag(ctx, kind, sq.Eq{"name": name}, "FindTagByName")
}

func (r *repository) findTag(ctx context.Context, kind model.Entity, where sq.Eq, op string) (model.Tag, error) {
	tt, err := tagTables(kind)
	if err != nil {
		return model.Tag{}, err
	}
	tag, err := selectOne[model.Tag](ctx, r.db, qb.Select("id", "name").
		From(tt.table).
		Where(where).
		OrderBy("created_at", "id").
		Limit(1))
	if err != nil {
		return model.Tag{}, mapErr(err, op, nil)
	}
	tag.Kind = kind
	return tag, nil
}

func (r *repository) AllTags(ctx context.Context, kind model.Entity) ([]model.Tag, error) {
	tt, err := tagTables(kind)
	if err != nil {
		return nil, err
	}
	tags, err := selectAll[model.Tag](ctx, r.db, qb.Select("id", "name").From(tt.table).OrderBy("name", "id"))
	if err != nil {
		return nil, mapErr(err, "AllTags", nil)
	}
	return withKind(kind, tags), nil
}

func (r *repository) tagsByBook(ctx context.Context, kind model.Entity, bookID string) ([]model.Tag, error) {
	tt, err := tagTables(kind)
	if err != nil {
		return nil, err
	}
	tags, err := selectAll[model.Tag](ctx, r.db, qb.Select("t.id", "t.name").
		From(tt.table+" t").
		Join(tt.join+" bt on bt."+tt.column+" = t.id").
		Where(sq.Eq{"bt.book_id": bookID}).
		OrderBy("t.name", "t.id"))
	if err != nil {
		return nil, mapErr(err, "tagsByBook", nil)
	}
	return withKind(kind, tags), nil
}

func (r *repository) CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tt, err := tagTables(tag.Kind)
	if err != nil {
		return model.Tag{}, err
	}
	tag.ID = uuid.NewString()
	err = exec(ctx, r.db, qb.Insert(tt.table).Columns("id", "name").Values(tag.ID, tag.Name))
	if err != nil {
		return model.Tag{}, mapErr(err, "CreateTag", nil)
	}
	return tag, nil
}

func (r *repository) UpdateTag(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tt, err := tagTables(tag.Kind)
	if err != nil {
		return model.Tag{}, err
	}
	err = exec(ctx, r.db, qb.Update(tt.table).Set("name", tag.Name).Where(sq.Eq{"id": tag.ID}))
	if err != nil {
		return model.Tag{}, mapErr(err, "UpdateTag", nil)
	}
	return tag, nil
}

func (r *repository) DeleteTag(ctx context.Context, kind model.Entity, id string) error {
	tt, err := tagTables(kind)
	if err != nil {
		return err
	}
	err = exec(ctx, r.db, qb.Delete(tt.table).Where(sq.Eq{"id": id}))
	return mapErr(err, "DeleteTag", errs.ErrHasDependents)
}
