package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

func (r *Repository) PublishedPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.conn(ctx).
		Preload("Author").
		Where("status = ?", models.PostPublished).
		Order("publish DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, errors.Annotate(err, "listing published posts")
}

func (r *Repository) FindPublishedPost(ctx context.Context, id uint) (models.Post, error) {
	var post models.Post
	err := r.conn(ctx).
		Preload("Author").
		Where("status = ?", models.PostPublished).
		First(&post, id).Error
	if err != nil {
		return post, notFound(err, "post %d", id)
	}
	return post, nil
}

func (r *Repository) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.conn(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, errors.Annotate(err, "listing posts")
}

func (r *Repository) CreatePost(ctx context.Context, post *models.Post) error {
	return errors.Annotate(r.conn(ctx).Omit("Author").Create(post).Error, "creating post")
}

// UpdatePostStatus sets the status (and publish time) of a post.
func (r *Repository) UpdatePostStatus(ctx context.Context, post *models.Post) error {
	result := r.conn(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{"status": post.Status, "publish": post.Publish})
	if result.Error != nil {
		return errors.Annotatef(result.Error, "updating post %d", post.ID)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("post %d", post.ID)
	}
	return nil
}
