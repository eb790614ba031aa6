// Package pagination — постраничная выборка для всех списков.
//
// Номер страницы начинается с 1. Отрицательные page/pageSize — ошибка вызывающего
// кода (ErrNegativePage, ErrNegativePageSize), а не доменная ошибка:
// значения < 1 должны отсекаться валидацией запроса выше.
package pagination

import (
	"context"
	"errors"
)

var (
	ErrNegativePage     = errors.New("pagination: page cannot be negative")
	ErrNegativePageSize = errors.New("pagination: page size cannot be negative")
)

// Page — одна страница результата.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
}

func (p Page[T]) HasNextPage() bool {
	return p.Page*p.PageSize < p.TotalCount
}

func (p Page[T]) HasPreviousPage() bool {
	return p.Page > 1
}

// Query — отфильтрованная и упорядоченная выборка.
//
// Count считает все строки до нарезки, Fetch возвращает не больше limit строк с offset.
type Query[T any] interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

// QueryFuncs позволяет собрать Query из двух функций.
type QueryFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int, error)
	FetchFunc func(ctx context.Context, offset, limit int) ([]T, error)
}

func (q QueryFuncs[T]) Count(ctx context.Context) (int, error) {
	return q.CountFunc(ctx)
}

func (q QueryFuncs[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	return q.FetchFunc(ctx, offset, limit)
}

// Paginate выполняет Count и Fetch для страницы page размера pageSize.
func Paginate[T any](ctx context.Context, q Query[T], page, pageSize int) (Page[T], error) {
	if err := check(page, pageSize); err != nil {
		return Page[T]{}, err
	}

	total, err := q.Count(ctx)
	if err != nil {
		return Page[T]{}, err
	}

	items := []T{}
	if pageSize > 0 {
		items, err = q.Fetch(ctx, Offset(page, pageSize), pageSize)
		if err != nil {
			return Page[T]{}, err
		}
	}

	return Page[T]{Items: items, Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Slice режет уже загруженную коллекцию.
func Slice[T any](all []T, page, pageSize int) (Page[T], error) {
	if err := check(page, pageSize); err != nil {
		return Page[T]{}, err
	}

	from := min(Offset(page, pageSize), len(all))
	to := min(from+pageSize, len(all))

	items := make([]T, to-from)
	copy(items, all[from:to])

	return Page[T]{Items: items, Page: page, PageSize: pageSize, TotalCount: len(all)}, nil
}

// Map переводит элементы страницы в другой тип, сохраняя счётчики.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, f(it))
	}
	return Page[U]{Items: out, Page: p.Page, PageSize: p.PageSize, TotalCount: p.TotalCount}
}

// Offset — сколько строк пропустить; для page = 0 пропуск отрицательный и обрезается до 0.
func Offset(page, pageSize int) int {
	return max((page-1)*pageSize, 0)
}

func check(page, pageSize int) error {
	if page < 0 {
		return ErrNegativePage
	}
	if pageSize < 0 {
		return ErrNegativePageSize
	}
	return nil
}
