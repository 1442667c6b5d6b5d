// Package store translates untrusted list-endpoint query parameters into
// the filter, sort and page window applied uniformly across collections.
package store

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams are the coerced query parameters of a list endpoint.
type ListParams struct {
	Search    string
	Sort      string
	Order     string
	Page      int64
	Limit     int64
	StartDate *time.Time
	EndDate   *time.Time
}

// Unpaginated reports whether the caller asked for the full matching set
// via the page=-1&limit=-1 convention.
func (p ListParams) Unpaginated() bool {
	return p.Page == -1 && p.Limit == -1
}

// ParseListParams coerces the wire-level string parameters. Unparseable
// page/limit fall back to their defaults; unparseable dates are an error.
func ParseListParams(q url.Values) (ListParams, error) {
	p := ListParams{
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}

	if v := q.Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Limit = n
		}
	}

	// only the exact -1/-1 pair disables the window; any other
	// non-positive page or limit falls back to the defaults, so a limit
	// of 0 can never reach SetLimit (which Mongo reads as "no limit")
	if !p.Unpaginated() {
		if p.Page < 1 {
			p.Page = DefaultPage
		}
		if p.Limit < 1 {
			p.Limit = DefaultLimit
		}
	}

	var err error
	if p.StartDate, err = parseDate(q.Get("startDate")); err != nil {
		return p, err
	}
	if p.EndDate, err = parseDate(q.Get("endDate")); err != nil {
		return p, err
	}
	return p, nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", v)
	}
	return &t, nil
}

// Spec is the per-entity half of the list contract: the mandatory scoping
// predicate, which text fields `search` matches against, which date field
// the range filter applies to, and the default sort.
type Spec struct {
	Scope        bson.M
	SearchFields []string
	DateField    string
	DefaultSort  string
	DefaultDesc  bool
}

// Filter AND-combines the scope with the search and date-range predicates.
func (s Spec) Filter(p ListParams) bson.M {
	filter := bson.M{}
	for k, v := range s.Scope {
		filter[k] = v
	}

	if p.Search != "" && len(s.SearchFields) > 0 {
		rx := bson.M{"$regex": regexp.QuoteMeta(p.Search), "$options": "i"}
		if len(s.SearchFields) == 1 {
			filter[s.SearchFields[0]] = rx
		} else {
			or := make([]bson.M, 0, len(s.SearchFields))
			for _, f := range s.SearchFields {
				or = append(or, bson.M{f: rx})
			}
			filter["$or"] = or
		}
	}

	if s.DateField != "" && (p.StartDate != nil || p.EndDate != nil) {
		rng := bson.M{}
		if p.StartDate != nil {
			rng["$gte"] = *p.StartDate
		}
		if p.EndDate != nil {
			rng["$lte"] = *p.EndDate
		}
		filter[s.DateField] = rng
	}
	return filter
}

// FindOptions builds the sort and page window. The window is omitted
// entirely under the -1/-1 escape hatch.
func (s Spec) FindOptions(p ListParams) *options.FindOptions {
	field := p.Sort
	if field == "" {
		field = s.DefaultSort
	}

	dir := 1
	switch p.Order {
	case "asc":
		dir = 1
	case "desc":
		dir = -1
	default:
		if s.DefaultDesc {
			dir = -1
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: field, Value: dir}})
	if !p.Unpaginated() {
		page, limit := clampWindow(p)
		opts.SetSkip((page - 1) * limit).SetLimit(limit)
	}
	return opts
}

// clampWindow guards hand-built params the same way ParseListParams
// guards wire input.
func clampWindow(p ListParams) (page, limit int64) {
	page, limit = p.Page, p.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// PageInfo is the pagination block carried alongside every list result.
type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo computes totalPages as ceil(total/limit). Under the -1/-1
// escape hatch this divides by -1 and goes negative; clients of the
// original API compensate for that, so it is kept as-is.
func NewPageInfo(p ListParams, total int64) PageInfo {
	if p.Unpaginated() {
		return PageInfo{
			Total:      total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: int64(math.Ceil(float64(total) / float64(p.Limit))),
		}
	}
	page, limit := clampWindow(p)
	return PageInfo{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
	}
}
