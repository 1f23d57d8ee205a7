package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/models"
)

func TestDefault_TwelveProducts(t *testing.T) {
	c := Default()
	assert.Len(t, c.All(), 12)
}

func TestByID(t *testing.T) {
	c := Default()

	p, ok := c.ByID(5)
	require.True(t, ok)
	assert.Equal(t, "Asad", p.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestBrands_DistinctInCatalogOrder(t *testing.T) {
	c := Default()

	brands := c.Brands()
	assert.Equal(t, 11, len(brands), "Jean Paul Gaultier appears twice in the catalog")
	assert.Equal(t, "Armaf", brands[0])
}

func TestFilter(t *testing.T) {
	c := Default()

	tests := []struct {
		name       string
		priceRange string
		brand      string
		wantIDs    []int64
	}{
		{"no filters", FilterAll, FilterAll, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"price band", "0-35000", FilterAll, []int64{5, 6, 10}},
		{"open-ended price", "80000-", FilterAll, []int64{4, 8, 11, 12}},
		{"brand only", FilterAll, "Jean Paul Gaultier", []int64{4, 9}},
		{"price and brand", "0-60000", "Jean Paul Gaultier", []int64{9}},
		{"brand with no match", FilterAll, "Chanel", nil},
		{"garbage price expression matches all", "cheap", "Armaf", []int64{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Filter(tc.priceRange, tc.brand)
			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tc.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestUpdate_ReplacesEntry(t *testing.T) {
	c := Default()

	p, _ := c.ByID(1)
	p.Price = 47000
	require.NoError(t, c.Update(p))

	got, _ := c.ByID(1)
	assert.Equal(t, int64(47000), got.Price)
}

func TestUpdate_UnknownID(t *testing.T) {
	c := Default()
	err := c.Update(models.Product{ID: 99})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_DoesNotAffectOtherCatalogs(t *testing.T) {
	a := Default()
	b := Default()

	p, _ := a.ByID(1)
	p.Name = "Edited"
	require.NoError(t, a.Update(p))

	orig, _ := b.ByID(1)
	assert.Equal(t, "Club De Nuit Woman", orig.Name)
}

func TestFormatPrice_ChileanGrouping(t *testing.T) {
	got := FormatPrice(45000)
	assert.Contains(t, got, "45.000", "es-CL groups thousands with a dot")
}
