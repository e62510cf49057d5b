package services

import (
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/testutil"
	"github.com/juju/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCatalogPriceRanges(t *testing.T) {
	f := newFixture(t)
	f.product(t, "eclair", "3.50", 3*time.Hour)
	f.product(t, "napoleon", "12.00", 2*time.Hour)
	f.product(t, "medovik", "25.99", time.Hour)
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "sold out", Price: "10.00", Category: f.cakes, Store: f.store, Unavailable: true,
		CreatedAt: fixtureNow,
	})

	for _, tc := range []struct {
		name     string
		query    CatalogQuery
		expected []string
	}{
		{"unbounded", CatalogQuery{}, []string{"medovik", "napoleon", "eclair"}},
		{"inclusive bounds", CatalogQuery{MinPrice: price("3.50"), MaxPrice: price("12.00")}, []string{"napoleon", "eclair"}},
		{"min only", CatalogQuery{MinPrice: price("12")}, []string{"medovik", "napoleon"}},
		{"max only", CatalogQuery{MaxPrice: price("11.99")}, []string{"eclair"}},
		{"inverted", CatalogQuery{MinPrice: price("20"), MaxPrice: price("5")}, []string{}},
	} {
		page, err := f.shop.Catalog(requestFor(Viewer{}), tc.query)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, productNames(page.Products), tc.name)
	}
}

func TestCatalogCategoryFilterAndEmptyResult(t *testing.T) {
	f := newFixture(t)
	bread := testutil.CreateCategory(t, f.db, "Bread")
	f.product(t, "napoleon", "12.00", time.Hour)
	f.product(t, "medovik", "15.00", 2*time.Hour)
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "baguette", Price: "2.00", Category: bread, Store: f.store, CreatedAt: fixtureNow,
	})

	page, err := f.shop.Catalog(requestFor(Viewer{}), CatalogQuery{CategoryID: &f.cakes.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"napoleon", "medovik"}, productNames(page.Products))
	assert.Equal(t, []string{"Bread", "Cakes"}, categoryNames(page.Categories))

	page, err = f.shop.Catalog(requestFor(Viewer{}), CatalogQuery{CategoryID: &f.cakes.ID, MaxPrice: price("10")})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestCatalogAnnotations(t *testing.T) {
	f := newFixture(t)
	fresh := f.product(t, "fresh", "1.00", time.Hour)
	f.product(t, "old", "1.00", 60*24*time.Hour)
	_, err := f.repo.ToggleCartItem(requestFor(Viewer{}).Context, f.buyer.ID, fresh.ID, fixtureNow)
	require.NoError(t, err)

	page, err := f.shop.Catalog(requestFor(viewerOf(f.buyer)), CatalogQuery{})
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.True(t, page.Products[0].InCart)
	assert.False(t, page.Products[1].InCart)
	for _, p := range page.Products {
		assert.False(t, p.IsNew, "catalog never flags products as new")
	}

	page, err = f.shop.Catalog(requestFor(Viewer{}), CatalogQuery{})
	require.NoError(t, err)
	assert.False(t, page.Products[0].InCart, "anonymous viewers have no cart")
}

func TestParseCatalogQuery(t *testing.T) {
	q, err := ParseCatalogQuery("", " ", "")
	require.NoError(t, err)
	assert.Nil(t, q.CategoryID)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)

	q, err = ParseCatalogQuery("7", "1.5", "20")
	require.NoError(t, err)
	assert.Equal(t, uint(7), *q.CategoryID)
	assert.True(t, q.MinPrice.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, q.MaxPrice.Equal(decimal.NewFromInt(20)))

	for _, bad := range [][3]string{{"cakes", "", ""}, {"", "cheap", ""}, {"", "", "1,5"}} {
		_, err := ParseCatalogQuery(bad[0], bad[1], bad[2])
		assert.True(t, errors.Is(err, errors.NotValid), "%v", bad)
	}
}
