package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPicker struct {
	picks []int
	calls []int
}

func (p *scriptedPicker) Intn(n int) int {
	p.calls = append(p.calls, n)
	pick := p.picks[0]
	p.picks = p.picks[1:]
	return pick
}

func counted(id uint, name string, n int64) models.CategoryCount {
	return models.CategoryCount{Category: models.Category{ID: id, Name: name}, ProductCount: n}
}

func categoryNames(categories []models.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}

func TestSelectTopCategoriesBackfillsAtRandom(t *testing.T) {
	counts := []models.CategoryCount{
		counted(1, "C1", 5), counted(2, "C2", 3), counted(3, "C3", 0), counted(4, "C4", 0),
	}

	picker := &scriptedPicker{picks: []int{1}}
	got := SelectTopCategories(counts, 3, picker)
	assert.Equal(t, []string{"C1", "C2", "C4"}, categoryNames(got))
	assert.Equal(t, []int{2}, picker.calls)

	picker = &scriptedPicker{picks: []int{0}}
	got = SelectTopCategories(counts, 3, picker)
	assert.Equal(t, []string{"C1", "C2", "C3"}, categoryNames(got))
}

func TestSelectTopCategoriesBackfillIsRoughlyUniform(t *testing.T) {
	counts := []models.CategoryCount{
		counted(1, "C1", 5), counted(2, "C2", 3), counted(3, "C3", 0), counted(4, "C4", 0),
	}
	rng := rand.New(rand.NewSource(42))
	seen := map[string]int{}
	const trials = 2000
	for i := 0; i < trials; i++ {
		got := SelectTopCategories(counts, 3, rng)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"C1", "C2"}, categoryNames(got[:2]))
		seen[got[2].Name]++
	}
	assert.Len(t, seen, 2)
	assert.InDelta(t, trials/2, seen["C3"], trials/10)
	assert.InDelta(t, trials/2, seen["C4"], trials/10)
}

func TestSelectTopCategoriesNoRandomnessWhenEnoughHaveProducts(t *testing.T) {
	counts := []models.CategoryCount{
		counted(1, "C1", 9), counted(2, "C2", 4), counted(3, "C3", 2), counted(4, "C4", 1), counted(5, "C5", 0),
	}
	picker := &scriptedPicker{}
	got := SelectTopCategories(counts, 3, picker)
	assert.Equal(t, []string{"C1", "C2", "C3"}, categoryNames(got))
	assert.Empty(t, picker.calls)
}

func TestSelectTopCategoriesWithoutReplacement(t *testing.T) {
	counts := []models.CategoryCount{counted(1, "A", 0), counted(2, "B", 0), counted(3, "C", 0)}
	picker := &scriptedPicker{picks: []int{2, 0, 0}}
	got := SelectTopCategories(counts, 3, picker)
	assert.Equal(t, []string{"C", "A", "B"}, categoryNames(got))
	assert.Equal(t, []int{3, 2, 1}, picker.calls)
}

func TestSelectTopCategoriesFewerThanThree(t *testing.T) {
	counts := []models.CategoryCount{counted(1, "A", 0), counted(2, "B", 2)}
	got := SelectTopCategories(counts, 3, &scriptedPicker{picks: []int{0}})
	assert.Equal(t, []string{"B", "A"}, categoryNames(got))

	assert.Empty(t, SelectTopCategories(nil, 3, &scriptedPicker{}))
}

func TestHome(t *testing.T) {
	f := newFixture(t)
	day := 24 * time.Hour
	breads := testutil.CreateCategory(t, f.db, "Bread")
	testutil.CreateCategory(t, f.db, "Candy")
	testutil.CreateCategory(t, f.db, "Pies")

	for i, name := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		f.product(t, name, "5.00", time.Duration(i+1)*10*day)
	}
	testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name: "hidden", Price: "1.00", Category: breads, Store: f.store, Unavailable: true, CreatedAt: fixtureNow,
	})
	testutil.CreatePromotion(t, f.db, "current", testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 31))
	testutil.CreatePromotion(t, f.db, "expired", testutil.Date(2023, 1, 1), testutil.Date(2023, 1, 31))

	page, err := f.shop.Home(requestFor(Viewer{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, productNames(page.NewArrivals))
	assert.True(t, page.NewArrivals[0].IsNew)
	assert.True(t, page.NewArrivals[1].IsNew)
	assert.False(t, page.NewArrivals[2].IsNew)
	assert.Equal(t, []string{"current"}, titles(page.Promotions))

	require.Len(t, page.TopCategories, 3)
	assert.Equal(t, "Cakes", page.TopCategories[0].Name)
	assert.Equal(t, "Bread", page.TopCategories[1].Name)
	assert.Contains(t, []string{"Candy", "Pies"}, page.TopCategories[2].Name)
}

func TestHomeCapsActivePromotions(t *testing.T) {
	f := newFixture(t)
	for day := 1; day <= 7; day++ {
		testutil.CreatePromotion(t, f.db, "promo", testutil.Date(2024, 1, day), testutil.Date(2024, 2, 1))
	}
	page, err := f.shop.Home(requestFor(Viewer{}))
	require.NoError(t, err)
	require.Len(t, page.Promotions, 5)
	assert.Equal(t, "2024-01-07", time.Time(page.Promotions[0].StartDate).Format("2006-01-02"))
}
