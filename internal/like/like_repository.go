package like

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instapost/internal/apperror"
	"instapost/internal/dbmysql"
)

// LikeRepository owns the post_likes and comment_likes tables. The mutating
// methods run their existence checks and the write inside one transaction so
// a concurrent account or target deletion cannot leave a dangling row.
type LikeRepository interface {
	LikePost(ctx context.Context, handle string, postID uint64) error
	UnlikePost(ctx context.Context, handle string, postID uint64) error
	LikeComment(ctx context.Context, handle string, commentID uint64) error
	UnlikeComment(ctx context.Context, handle string, commentID uint64) error

	CountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
	CountForComments(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error)

	PostsLikedBy(ctx context.Context, handle string) ([]dbmysql.Post, error)
	CommentsLikedBy(ctx context.Context, handle string) ([]dbmysql.Comment, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) LikePost(ctx context.Context, handle string, postID uint64) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, handle); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&dbmysql.Post{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("post", postID)
		}

		err := tx.Create(&dbmysql.PostLike{Handle: handle, PostID: postID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// already liked, keep the single row
			return nil
		}
		return err
	})
}

func (r *likeRepository) UnlikePost(ctx context.Context, handle string, postID uint64) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, handle); err != nil {
			return err
		}
		// absence of the row is not an error
		return tx.Where("handle = ? AND post_id = ?", handle, postID).
			Delete(&dbmysql.PostLike{}).Error
	})
}

func (r *likeRepository) LikeComment(ctx context.Context, handle string, commentID uint64) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, handle); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&dbmysql.Comment{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("comment", commentID)
		}

		err := tx.Create(&dbmysql.CommentLike{Handle: handle, CommentID: commentID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	})
}

func (r *likeRepository) UnlikeComment(ctx context.Context, handle string, commentID uint64) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, handle); err != nil {
			return err
		}
		return tx.Where("handle = ? AND comment_id = ?", handle, commentID).
			Delete(&dbmysql.CommentLike{}).Error
	})
}

type countRow struct {
	TargetID uint64 `gorm:"column:target_id"`
	Count    int64  `gorm:"column:num_likes"`
}

func (r *likeRepository) CountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.PostLike{}).
			Select("post_id AS target_id, COUNT(*) AS num_likes").
			Where("post_id IN ?", postIDs).
			Group("post_id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

func (r *likeRepository) CountForComments(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.CommentLike{}).
			Select("comment_id AS target_id, COUNT(*) AS num_likes").
			Where("comment_id IN ?", commentIDs).
			Group("comment_id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

func (r *likeRepository) PostsLikedBy(ctx context.Context, handle string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Post{}).
			Joins("JOIN post_likes ON post_likes.post_id = posts.post_id").
			Where("post_likes.handle = ?", handle).
			Find(&posts).Error
	})
	return posts, err
}

func (r *likeRepository) CommentsLikedBy(ctx context.Context, handle string) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Comment{}).
			Joins("JOIN comment_likes ON comment_likes.comment_id = comments.comment_id").
			Where("comment_likes.handle = ?", handle).
			Find(&comments).Error
	})
	return comments, err
}

func accountExists(tx *gorm.DB, handle string) error {
	var count int64
	if err := tx.Model(&dbmysql.User{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound("user", handle)
	}
	return nil
}
