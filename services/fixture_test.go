package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/Kariqs/vkusnyashka/testutil"
	"github.com/juju/clock/testclock"
	"gorm.io/gorm"
)

var fixtureNow = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	repo  *repository.Repository
	shop  *Shop
	owner models.User
	buyer models.User
	cakes models.Category
	store models.Store
}

func newFixture(t *testing.T) *fixture {
	return newFixtureOn(t, testutil.NewDB(t))
}

func newFixtureOn(t *testing.T, db *gorm.DB) *fixture {
	repo := repository.New(db)
	f := &fixture{db: db, repo: repo, shop: NewShop(repo, nil)}
	f.owner = testutil.CreateUser(t, db, "baker", models.RoleUser)
	f.buyer = testutil.CreateUser(t, db, "buyer", models.RoleUser)
	f.cakes = testutil.CreateCategory(t, db, "Cakes")
	f.store = testutil.CreateStore(t, db, "Nyashechka", f.owner)
	return f
}

func (f *fixture) product(t *testing.T, name, price string, age time.Duration) models.Product {
	return testutil.CreateProduct(t, f.db, testutil.ProductSpec{
		Name:      name,
		Price:     price,
		Category:  f.cakes,
		Store:     f.store,
		CreatedAt: fixtureNow.Add(-age),
	})
}

func viewerOf(u models.User) Viewer {
	return Viewer{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func requestFor(viewer Viewer) Request {
	return NewRequest(context.Background(), viewer, testclock.NewClock(fixtureNow), rand.New(rand.NewSource(1)))
}

func productNames(views []ProductView) []string {
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	return names
}
