// Package crud is a generic query layer over pgx: equality filters,
// case-insensitive search, allow-listed sorting and normalized
// pagination, parameterized per entity through a Config. It also owns
// the translation of driver errors into the package sentinels.
package crud

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"

	"account-manager-api/internal/domain/query"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Config describes one entity's table to the generic layer. SortFields
// is the allow-list: a requested sort field outside it falls back to
// DefaultSort.
type Config struct {
	Table        string
	Columns      []string
	SearchFields []string
	SortFields   map[string]struct{}
	DefaultSort  string
}

// Where is an AND-combined set of column equality conditions. Keys are
// trusted column names supplied by entity repositories, never caller
// input.
type Where map[string]any

type Repo[T any] struct {
	db  DB
	cfg Config
}

func New[T any](db DB, cfg Config) *Repo[T] {
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "created_at DESC"
	}
	return &Repo[T]{db: db, cfg: cfg}
}

// List returns the full unpaged match set.
func (r *Repo[T]) List(ctx context.Context, w Where, p query.Params) ([]*T, error) {
	filter, args := r.filterClause(w, p.Search)
	sql := r.selectSQL() + filter + r.orderClause(p.Sort)

	return r.QueryMany(ctx, sql, args...)
}

// ListPage returns one page plus the total match count. The count and
// the bounded fetch run concurrently; both see whatever snapshot the
// pool's connections provide.
func (r *Repo[T]) ListPage(ctx context.Context, w Where, p query.Params, pg query.Page) (*query.Result[*T], error) {
	pg = pg.Normalize()
	filter, args := r.filterClause(w, p.Search)

	countSQL := "SELECT count(*) FROM " + r.cfg.Table + filter
	pageSQL := r.selectSQL() + filter + r.orderClause(p.Sort) +
		fmt.Sprintf(" LIMIT %d OFFSET %d", pg.Size, pg.Offset())

	var (
		total int64
		items []*T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.QueryRow(gctx, countSQL, args...).Scan(&total); err != nil {
			return Translate(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = r.QueryMany(gctx, pageSQL, args...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &query.Result[*T]{
		Items:    items,
		Total:    total,
		Page:     pg.Number,
		PageSize: pg.Size,
	}, nil
}

// GetBy fetches the single row where column equals value.
func (r *Repo[T]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	sql := r.selectSQL() + fmt.Sprintf(" WHERE %s = $1", column)
	return r.QueryOne(ctx, sql, value)
}

func (r *Repo[T]) Count(ctx context.Context, w Where) (int64, error) {
	filter, args := r.filterClause(w, "")
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM "+r.cfg.Table+filter, args...).Scan(&total); err != nil {
		return 0, Translate(err)
	}
	return total, nil
}

// QueryOne runs a statement expected to yield exactly one row — lookups
// and INSERT/UPDATE/DELETE ... RETURNING alike — and translates errors.
func (r *Repo[T]) QueryOne(ctx context.Context, sql string, args ...any) (*T, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, Translate(err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, Translate(err)
	}
	return item, nil
}

// QueryMany runs a statement yielding any number of rows.
func (r *Repo[T]) QueryMany(ctx context.Context, sql string, args ...any) ([]*T, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, Translate(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, Translate(err)
	}
	return items, nil
}

// Exec runs a statement without a result set and reports rows affected.
func (r *Repo[T]) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, Translate(err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo[T]) selectSQL() string {
	return "SELECT " + strings.Join(r.cfg.Columns, ", ") + " FROM " + r.cfg.Table
}

func (r *Repo[T]) filterClause(w Where, search string) (string, []any) {
	var (
		conds []string
		args  []any
	)

	// deterministic order keeps statements cacheable and testable
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, w[k])
		conds = append(conds, fmt.Sprintf("%s = $%d", k, len(args)))
	}

	if search != "" && len(r.cfg.SearchFields) > 0 {
		args = append(args, "%"+search+"%")
		n := len(args)
		ors := make([]string, 0, len(r.cfg.SearchFields))
		for _, f := range r.cfg.SearchFields {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", f, n))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repo[T]) orderClause(s query.Sort) string {
	if s.Field == "" {
		return " ORDER BY " + r.cfg.DefaultSort
	}
	if _, ok := r.cfg.SortFields[s.Field]; !ok {
		return " ORDER BY " + r.cfg.DefaultSort
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return " ORDER BY " + s.Field + " " + dir
}
