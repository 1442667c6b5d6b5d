package store

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseListParamsDefaults(t *testing.T) {
	p, err := ParseListParams(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultPage), p.Page)
	assert.Equal(t, int64(DefaultLimit), p.Limit)
	assert.Empty(t, p.Search)
	assert.Nil(t, p.StartDate)
	assert.Nil(t, p.EndDate)
	assert.False(t, p.Unpaginated())
}

func TestParseListParamsCoercion(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("limit", "25")
	q.Set("sort", "date")
	q.Set("order", "asc")
	q.Set("search", "bench")
	q.Set("startDate", "2024-01-01")
	q.Set("endDate", "2024-02-01")

	p, err := ParseListParams(q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Page)
	assert.Equal(t, int64(25), p.Limit)
	assert.Equal(t, "date", p.Sort)
	assert.Equal(t, "asc", p.Order)
	assert.Equal(t, "bench", p.Search)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *p.StartDate)
	require.NotNil(t, p.EndDate)
}

func TestParseListParamsBadNumbersFallBack(t *testing.T) {
	q := url.Values{}
	q.Set("page", "abc")
	q.Set("limit", "x")

	p, err := ParseListParams(q)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultPage), p.Page)
	assert.Equal(t, int64(DefaultLimit), p.Limit)
}

// limit=0 would otherwise flow into SetLimit, which Mongo reads as "no
// limit", letting a page exceed the requested size.
func TestParseListParamsNonPositiveWindowFallsBack(t *testing.T) {
	q := url.Values{}
	q.Set("page", "0")
	q.Set("limit", "0")

	p, err := ParseListParams(q)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultPage), p.Page)
	assert.Equal(t, int64(DefaultLimit), p.Limit)
	assert.False(t, p.Unpaginated())

	// a lone -1 is not the escape hatch either
	q = url.Values{}
	q.Set("page", "-1")
	q.Set("limit", "10")
	p, err = ParseListParams(q)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultPage), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestParseListParamsBadDateIsError(t *testing.T) {
	q := url.Values{}
	q.Set("startDate", "01/02/2024")
	_, err := ParseListParams(q)
	assert.Error(t, err)
}

func TestUnpaginatedEscapeHatch(t *testing.T) {
	q := url.Values{}
	q.Set("page", "-1")
	q.Set("limit", "-1")

	p, err := ParseListParams(q)
	require.NoError(t, err)
	assert.True(t, p.Unpaginated())

	// only the -1/-1 combination disables the window
	p.Page = 1
	assert.False(t, p.Unpaginated())
}

func TestFilterScopeOnly(t *testing.T) {
	userID := primitive.NewObjectID()
	spec := Spec{Scope: bson.M{"userId": userID}, SearchFields: []string{"notes"}, DateField: "date"}

	filter := spec.Filter(ListParams{})
	assert.Equal(t, bson.M{"userId": userID}, filter)
}

func TestFilterSearchSingleField(t *testing.T) {
	spec := Spec{SearchFields: []string{"name"}}
	filter := spec.Filter(ListParams{Search: "chicken"})

	rx, ok := filter["name"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "chicken", rx["$regex"])
	assert.Equal(t, "i", rx["$options"])
}

func TestFilterSearchEscapesRegexMeta(t *testing.T) {
	spec := Spec{SearchFields: []string{"name"}}
	filter := spec.Filter(ListParams{Search: "a.b*"})

	rx := filter["name"].(bson.M)
	assert.Equal(t, `a\.b\*`, rx["$regex"])
}

func TestFilterSearchMultiFieldUsesOr(t *testing.T) {
	spec := Spec{SearchFields: []string{"title", "description"}}
	filter := spec.Filter(ListParams{Search: "abs"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, or, 2)
}

func TestFilterDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	spec := Spec{DateField: "date"}

	filter := spec.Filter(ListParams{StartDate: &start, EndDate: &end})
	rng := filter["date"].(bson.M)
	assert.Equal(t, start, rng["$gte"])
	assert.Equal(t, end, rng["$lte"])

	// each bound is independently optional
	filter = spec.Filter(ListParams{StartDate: &start})
	rng = filter["date"].(bson.M)
	assert.Equal(t, start, rng["$gte"])
	_, hasLte := rng["$lte"]
	assert.False(t, hasLte)
}

func TestFindOptionsWindow(t *testing.T) {
	spec := Spec{DefaultSort: "createdAt", DefaultDesc: true}
	opts := spec.FindOptions(ListParams{Page: 3, Limit: 10})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestFindOptionsEscapeHatchOmitsWindow(t *testing.T) {
	spec := Spec{DefaultSort: "createdAt"}
	opts := spec.FindOptions(ListParams{Page: -1, Limit: -1})

	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)
}

func TestFindOptionsClampsHandBuiltWindow(t *testing.T) {
	spec := Spec{DefaultSort: "createdAt"}
	opts := spec.FindOptions(ListParams{Page: 0, Limit: 0})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(DefaultLimit), *opts.Limit)
}

func TestFindOptionsSortDirection(t *testing.T) {
	spec := Spec{DefaultSort: "name", DefaultDesc: false}

	sort := spec.FindOptions(ListParams{Page: 1, Limit: 10}).Sort.(bson.D)
	assert.Equal(t, "name", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	sort = spec.FindOptions(ListParams{Page: 1, Limit: 10, Order: "desc"}).Sort.(bson.D)
	assert.Equal(t, -1, sort[0].Value)

	sort = spec.FindOptions(ListParams{Page: 1, Limit: 10, Sort: "calories", Order: "asc"}).Sort.(bson.D)
	assert.Equal(t, "calories", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	desc := Spec{DefaultSort: "date", DefaultDesc: true}
	sort = desc.FindOptions(ListParams{Page: 1, Limit: 10}).Sort.(bson.D)
	assert.Equal(t, -1, sort[0].Value)
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(ListParams{Page: 2, Limit: 10}, 35)
	assert.Equal(t, int64(35), info.Total)
	assert.Equal(t, int64(2), info.Page)
	assert.Equal(t, int64(10), info.Limit)
	assert.Equal(t, int64(4), info.TotalPages)
}

// Pins the long-standing behavior: with the -1/-1 escape hatch the
// totalPages division still runs and goes negative. Clients compensate,
// so changing this needs product sign-off.
func TestNewPageInfoEscapeHatchKeepsNegativeTotalPages(t *testing.T) {
	info := NewPageInfo(ListParams{Page: -1, Limit: -1}, 7)
	assert.Equal(t, int64(7), info.Total)
	assert.Equal(t, int64(-7), info.TotalPages)
}

// Outside the escape hatch a zero limit must not divide to overflow.
func TestNewPageInfoZeroLimitClamped(t *testing.T) {
	info := NewPageInfo(ListParams{Page: 1, Limit: 0}, 7)
	assert.Equal(t, int64(7), info.Total)
	assert.Equal(t, int64(DefaultLimit), info.Limit)
	assert.Equal(t, int64(1), info.TotalPages)
}
