package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/testutil"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	f := newFixture(t)
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "Honey Cake", Description: "layers of cream", Price: "9.00",
		Category: f.cakes, Store: f.store, CreatedAt: fixtureNow.Add(-time.Hour),
	})
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "Eclair", Description: "choux pastry with HONEY glaze", Price: "2.00",
		Category: f.cakes, Store: f.store, CreatedAt: fixtureNow.Add(-40 * 24 * time.Hour),
	})
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "Rye bread", Description: "100% rye", Price: "3.00",
		Category: f.cakes, Store: f.store, Unavailable: true, CreatedAt: fixtureNow.Add(-2 * time.Hour),
	})

	req := requestFor(Viewer{})

	results, err := f.shop.Search(req, "hOnEy")
	require.NoError(t, err)
	assert.Equal(t, []string{"Honey Cake", "Eclair"}, productNames(results))
	assert.True(t, results[0].IsNew)
	assert.False(t, results[1].IsNew)

	results, err = f.shop.Search(req, "CREAM")
	require.NoError(t, err)
	assert.Equal(t, []string{"Honey Cake"}, productNames(results))

	results, err = f.shop.Search(req, "rye")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rye bread"}, productNames(results))

	results, err = f.shop.Search(req, "0%")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rye bread"}, productNames(results), "%% is matched literally")

	results, err = f.shop.Search(req, "_")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchFoldsCyrillicCase(t *testing.T) {
	f := newFixture(t)
	f.product(t, "Торт Наполеон", "15.00", time.Hour)
	f.product(t, "Эклер", "3.00", 2*time.Hour)

	for _, q := range []string{"Торт", "торт", "ТОРТ", "наполеон", "Наполеон"} {
		results, err := f.shop.Search(requestFor(Viewer{}), q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Торт Наполеон"}, productNames(results), q)
	}
}

func TestSearchBlankQueryMatchesNothing(t *testing.T) {
	f := newFixture(t)
	f.product(t, "anything", "1.00", time.Hour)

	for _, q := range []string{"", "   "} {
		results, err := f.shop.Search(requestFor(Viewer{}), q)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearchRejectsLongQueries(t *testing.T) {
	f := newFixture(t)
	_, err := f.shop.Search(requestFor(Viewer{}), strings.Repeat("a", MaxSearchLength+1))
	assert.True(t, errors.Is(err, errors.NotValid))
}
