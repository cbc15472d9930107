package feed

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instapost/internal/apperror"
	"instapost/internal/dbmysql"
)

type PostRepository interface {
	// CreatePost checks the author exists and inserts, in one transaction.
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	PostExists(ctx context.Context, postID uint64) (bool, error)
	// ListByAuthor returns one account's posts oldest-first (profile order).
	ListByAuthor(ctx context.Context, handle string) ([]dbmysql.Post, error)
	// ListByAuthors returns posts for the feed, newest-first with post id as
	// the deterministic tie-break.
	ListByAuthors(ctx context.Context, handles []string) ([]dbmysql.Post, error)
	// DeletePost removes the post and its dependent comments and likes in one
	// transaction.
	DeletePost(ctx context.Context, postID uint64) error
	CommentCountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.User{}).Where("handle = ?", post.Handle).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("user", post.Handle)
		}
		return tx.Create(post).Error
	})
}

func (r *postRepository) GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("post_id = ?", postID).First(&post).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("post", postID)
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) PostExists(ctx context.Context, postID uint64) (bool, error) {
	var count int64
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Post{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	})
	return count > 0, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, handle string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("handle = ?", handle).
			Order("created_at").
			Find(&posts).Error
	})
	return posts, err
}

func (r *postRepository) ListByAuthors(ctx context.Context, handles []string) ([]dbmysql.Post, error) {
	if len(handles) == 0 {
		return []dbmysql.Post{}, nil
	}

	var posts []dbmysql.Post
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("handle IN ?", handles).
			Order("created_at DESC, post_id DESC").
			Find(&posts).Error
	})
	return posts, err
}

func (r *postRepository) DeletePost(ctx context.Context, postID uint64) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.Post{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("post", postID)
		}

		// likes on the post's comments first, then the comments, then the
		// post's own likes, then the post
		var commentIDs []uint64
		if err := tx.Model(&dbmysql.Comment{}).Where("post_id = ?", postID).Pluck("comment_id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&dbmysql.CommentLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", postID).Delete(&dbmysql.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&dbmysql.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&dbmysql.Post{}).Error
	})
}

func (r *postRepository) CommentCountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint64 `gorm:"column:post_id"`
		Count  int64  `gorm:"column:num_comments"`
	}
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Comment{}).
			Select("post_id, COUNT(*) AS num_comments").
			Where("post_id IN ?", postIDs).
			Group("post_id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
