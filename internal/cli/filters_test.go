package cli

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecodash/internal/catalog"
	"github.com/rshade/ecodash/internal/cli/pagination"
	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/query"
)

func useDefaultConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvProjectDir, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

func TestApplyQuery(t *testing.T) {
	ctx := context.Background()
	events := catalog.CommunityEvents()

	tests := []struct {
		name   string
		params query.Params
		want   int
	}{
		{name: "defaults keep everything", params: query.DefaultParams(), want: len(events)},
		{name: "category", params: query.Params{Category: "planting"}, want: 1},
		{name: "no match", params: query.Params{Category: "all", Search: "volcano"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyQuery(ctx, "test", events, tt.params, query.Events)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()
	items := []int{1, 2, 3, 4, 5}

	t.Run("configured page size applies without flags", func(t *testing.T) {
		useDefaultConfig(t)

		got, meta, err := paginate(ctx, "test", pagination.PaginationParams{}, items)

		require.NoError(t, err)
		assert.Equal(t, items, got)
		require.NotNil(t, meta)
		assert.Equal(t, 1, meta.TotalPages)
	})

	t.Run("page size zero disables pagination", func(t *testing.T) {
		useDefaultConfig(t)
		config.GetGlobalConfig().Output.PageSize = 0

		got, meta, err := paginate(ctx, "test", pagination.PaginationParams{}, items)

		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Nil(t, meta)
	})

	t.Run("page past the end is capped", func(t *testing.T) {
		useDefaultConfig(t)

		got, meta, err := paginate(ctx, "test", pagination.PaginationParams{Page: 9, PageSize: 2}, items)

		require.NoError(t, err)
		assert.Equal(t, []int{5}, got)
		assert.Equal(t, 3, meta.CurrentPage)
		assert.False(t, meta.HasNext)
	})

	t.Run("invalid flags", func(t *testing.T) {
		useDefaultConfig(t)

		_, _, err := paginate(ctx, "test", pagination.PaginationParams{Limit: -1}, items)

		require.ErrorIs(t, err, pagination.ErrInvalidLimit)
		assert.Contains(t, err.Error(), "invalid pagination parameters")
	})
}

func TestResolveOutputFormat(t *testing.T) {
	useDefaultConfig(t)

	tests := []struct {
		flag    string
		want    string
		wantErr bool
	}{
		{flag: "", want: config.FormatTable},
		{flag: "JSON", want: config.FormatJSON},
		{flag: " ndjson ", want: config.FormatNDJSON},
		{flag: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.flag), func(t *testing.T) {
			got, err := resolveOutputFormat(tt.flag)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAssignment(t *testing.T) {
	f, v, err := parseAssignment("natural-gas= 12")
	require.NoError(t, err)
	assert.Equal(t, footprint.NaturalGas, f)
	assert.Equal(t, 12, v)

	_, _, err = parseAssignment("naturalGas")
	assert.ErrorIs(t, err, ErrMalformedAssignment)

	_, _, err = parseAssignment("gasoline=3")
	assert.ErrorIs(t, err, footprint.ErrUnknownField)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.False(t, isBrokenPipe(nil))
	assert.True(t, isBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, isBrokenPipe(errors.New("write |1: broken pipe")))
	assert.False(t, isBrokenPipe(errors.New("disk full")))
}
