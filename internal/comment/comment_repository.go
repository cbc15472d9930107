package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instapost/internal/apperror"
	"instapost/internal/dbmysql"
)

type CommentRepository interface {
	// CreateComment validates author, post and parent inside one transaction
	// and inserts the row.
	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	// ListByPost returns every comment on a post in one bulk fetch, ordered
	// by comment id.
	ListByPost(ctx context.Context, postID uint64) ([]dbmysql.Comment, error)
	ListByAuthor(ctx context.Context, handle string) ([]dbmysql.Comment, error)
	PostExists(ctx context.Context, postID uint64) (bool, error)
	CommentExists(ctx context.Context, commentID uint64) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.User{}).Where("handle = ?", comment.Handle).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("user", comment.Handle)
		}

		if err := tx.Model(&dbmysql.Post{}).Where("post_id = ?", comment.PostID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("post", comment.PostID)
		}

		if comment.ParentID != nil {
			var parent dbmysql.Comment
			err := tx.Where("comment_id = ?", *comment.ParentID).First(&parent).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("comment", *comment.ParentID)
			}
			if err != nil {
				return err
			}
			// a reply must live on the same post as its parent
			if parent.PostID != comment.PostID {
				return apperror.BadRequest("parent comment belongs to a different post")
			}
		}

		return tx.Create(comment).Error
	})
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint64) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("post_id = ?", postID).
			Order("comment_id").
			Find(&comments).Error
	})
	return comments, err
}

func (r *commentRepository) ListByAuthor(ctx context.Context, handle string) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("handle = ?", handle).
			Order("comment_id").
			Find(&comments).Error
	})
	return comments, err
}

func (r *commentRepository) PostExists(ctx context.Context, postID uint64) (bool, error) {
	var count int64
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Post{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	})
	return count > 0, err
}

func (r *commentRepository) CommentExists(ctx context.Context, commentID uint64) (bool, error) {
	var count int64
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Comment{}).
			Where("comment_id = ?", commentID).
			Count(&count).Error
	})
	return count > 0, err
}
