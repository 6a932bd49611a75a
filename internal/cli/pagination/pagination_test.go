package pagination

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr error
	}{
		{name: "zero value", params: PaginationParams{}},
		{name: "offset mode", params: PaginationParams{Limit: 10, Offset: 20}},
		{name: "page mode", params: PaginationParams{Page: 2, PageSize: 10}},
		{name: "negative limit", params: PaginationParams{Limit: -1}, wantErr: ErrInvalidLimit},
		{name: "limit too large", params: PaginationParams{Limit: MaxLimit + 1}, wantErr: ErrInvalidLimit},
		{name: "negative offset", params: PaginationParams{Offset: -1}, wantErr: ErrInvalidOffset},
		{name: "negative page", params: PaginationParams{Page: -1}, wantErr: ErrInvalidPage},
		{name: "page size too large", params: PaginationParams{Page: 1, PageSize: MaxPageSize + 1}, wantErr: ErrInvalidPageSize},
		{name: "page and offset", params: PaginationParams{Page: 1, PageSize: 5, Offset: 3}, wantErr: ErrMixedPaginationModes},
		{name: "page size without page", params: PaginationParams{PageSize: 5}, wantErr: ErrPageSizeWithoutPage},
		{name: "page without page size", params: PaginationParams{Page: 2}, wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name   string
		params PaginationParams
		want   []string
	}{
		{name: "disabled", params: PaginationParams{}, want: items},
		{name: "limit only", params: PaginationParams{Limit: 3}, want: []string{"a", "b", "c"}},
		{name: "offset and limit", params: PaginationParams{Offset: 2, Limit: 2}, want: []string{"c", "d"}},
		{name: "offset only", params: PaginationParams{Offset: 5}, want: []string{"f", "g"}},
		{name: "offset past end", params: PaginationParams{Offset: 10}, want: []string{}},
		{name: "first page", params: PaginationParams{Page: 1, PageSize: 3}, want: []string{"a", "b", "c"}},
		{name: "last partial page", params: PaginationParams{Page: 3, PageSize: 3}, want: []string{"g"}},
		{name: "page past end caps to last page", params: PaginationParams{Page: 9, PageSize: 3}, want: []string{"g"}},
		{name: "limit larger than slice", params: PaginationParams{Limit: 100}, want: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func TestApply_Empty(t *testing.T) {
	got := Apply(PaginationParams{Page: 2, PageSize: 5}, []int(nil))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name   string
		params PaginationParams
		total  int
		want   PaginationMeta
	}{
		{
			name:   "unpaginated",
			params: PaginationParams{},
			total:  8,
			want:   PaginationMeta{CurrentPage: 1, PageSize: 8, TotalPages: 1, TotalItems: 8},
		},
		{
			name:   "middle page",
			params: PaginationParams{Page: 2, PageSize: 3},
			total:  8,
			want:   PaginationMeta{CurrentPage: 2, PageSize: 3, TotalPages: 3, TotalItems: 8, HasPrevious: true, HasNext: true},
		},
		{
			name:   "offset converted to page",
			params: PaginationParams{Limit: 2, Offset: 4},
			total:  8,
			want:   PaginationMeta{CurrentPage: 3, PageSize: 2, TotalPages: 4, TotalItems: 8, HasPrevious: true, HasNext: true},
		},
		{
			name:   "page past end is capped",
			params: PaginationParams{Page: 7, PageSize: 5},
			total:  8,
			want:   PaginationMeta{CurrentPage: 2, PageSize: 5, TotalPages: 2, TotalItems: 8, HasPrevious: true},
		},
		{
			name:   "empty result",
			params: PaginationParams{Page: 1, PageSize: 5},
			total:  0,
			want:   PaginationMeta{CurrentPage: 1, PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.params, tt.total))
		})
	}
}

func TestAddFlags(t *testing.T) {
	var p PaginationParams
	cmd := &cobra.Command{Use: "list"}
	AddFlags(cmd, &p)

	for _, name := range []string{"limit", "offset", "page", "page-size"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	require.NoError(t, cmd.Flags().Parse([]string{"--page", "2", "--page-size", "4"}))
	assert.Equal(t, PaginationParams{Page: 2, PageSize: 4}, p)
}

func TestWithDefaultPageSize(t *testing.T) {
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 20}, PaginationParams{}.WithDefaultPageSize(20))
	assert.Equal(t, PaginationParams{Limit: 3}, PaginationParams{Limit: 3}.WithDefaultPageSize(20))
	assert.Equal(t, PaginationParams{}, PaginationParams{}.WithDefaultPageSize(0))
}
