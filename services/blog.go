package services

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

type PostStore interface {
	PublishedPosts(ctx context.Context) ([]models.Post, error)
	FindPublishedPost(ctx context.Context, id uint) (models.Post, error)
}

type Blog struct {
	store PostStore
}

func NewBlog(store PostStore) *Blog {
	return &Blog{store: store}
}

// Published lists published posts, latest first.
func (b *Blog) Published(ctx context.Context) ([]models.Post, error) {
	posts, err := b.store.PublishedPosts(ctx)
	return posts, errors.Trace(err)
}

// Post returns a published post; drafts are NotFound.
func (b *Blog) Post(ctx context.Context, id uint) (models.Post, error) {
	post, err := b.store.FindPublishedPost(ctx, id)
	return post, errors.Trace(err)
}
