// Package services exposes typed accessors for each Escalator API resource
// on top of the authenticated client. Every endpoint gets an explicit
// function signature; nothing is keyed off path strings.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
)

// API is the surface of the low-level client the resource services need.
// *api.Client satisfies it; tests substitute a fake.
type API interface {
	Get(ctx context.Context, path string, opts *api.RequestOptions, out any) error
	Post(ctx context.Context, path string, opts *api.RequestOptions, out any) error
	Patch(ctx context.Context, path string, opts *api.RequestOptions, out any) error
	Delete(ctx context.Context, path string, opts *api.RequestOptions) error
}

const isoDate = "2006-01-02"

// dayRange returns [date, date+days] as ISO dates.
func dayRange(start string, days int) (string, string, error) {
	t, err := time.Parse(isoDate, start)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", start, err)
	}
	return start, t.AddDate(0, 0, days).Format(isoDate), nil
}

// monthRange returns the first and last day of the given month.
func monthRange(ano, mes int) (string, string) {
	first := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(isoDate), last.Format(isoDate)
}

func pageParams(q map[string]string, page, pageSize int) {
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		q["page_size"] = strconv.Itoa(pageSize)
	}
}
