package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 12}
	assert.Equal(t, 12, p.Limit())
	assert.Equal(t, 24, p.Offset())

	first := Params{Page: 1, PerPage: 50}
	assert.Equal(t, 0, first.Offset())
}

func TestOrderExpr(t *testing.T) {
	allowed := map[string]string{
		"created_at": "news_created_at",
		"views":      "news_views_count",
	}

	p := Params{SortBy: "views", SortOrder: "asc"}
	got, err := p.OrderExpr(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "news_views_count ASC", got)

	// Sort key tak dikenal jatuh ke default
	p = Params{SortBy: "bogus", SortOrder: "desc"}
	got, err = p.OrderExpr(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "news_created_at DESC", got)

	// Tanpa default valid: error
	p = Params{SortBy: "bogus"}
	_, err = p.OrderExpr(map[string]string{}, "nope")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(25, Params{Page: 2, PerPage: 10})
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
	assert.Nil(t, empty.NextPage)
}
