package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instapost/internal/apperror"
	"instapost/internal/dbmysql"
)

type FollowRepository interface {
	// Follow validates the target, then the actor, then inserts the edge,
	// all in one transaction. A duplicate edge is rejected.
	Follow(ctx context.Context, follower, followed string) error
	// Unfollow validates both accounts and deletes the edge; a missing edge
	// is not an error.
	Unfollow(ctx context.Context, follower, followed string) error
	FollowedHandles(ctx context.Context, handle string) ([]string, error)
	Following(ctx context.Context, handle string) ([]dbmysql.UserSummary, error)
	Followers(ctx context.Context, handle string) ([]dbmysql.UserSummary, error)
	// NotFollowedBy returns accounts the given account does not follow yet,
	// excluding itself.
	NotFollowedBy(ctx context.Context, handle string) ([]dbmysql.UserSummary, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, follower, followed string) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// target first, then actor
		if err := handleExists(tx, followed); err != nil {
			return err
		}
		if err := handleExists(tx, follower); err != nil {
			return err
		}

		err := tx.Create(&dbmysql.Follow{FollowerHandle: follower, FollowedHandle: followed}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.BadRequest("already following " + followed)
		}
		return err
	})
}

func (r *followRepository) Unfollow(ctx context.Context, follower, followed string) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := handleExists(tx, followed); err != nil {
			return err
		}
		if err := handleExists(tx, follower); err != nil {
			return err
		}

		return tx.Where("follower_handle = ? AND followed_handle = ?", follower, followed).
			Delete(&dbmysql.Follow{}).Error
	})
}

func (r *followRepository) FollowedHandles(ctx context.Context, handle string) ([]string, error) {
	var handles []string
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.Follow{}).
			Where("follower_handle = ?", handle).
			Pluck("followed_handle", &handles).Error
	})
	return handles, err
}

func (r *followRepository) Following(ctx context.Context, handle string) ([]dbmysql.UserSummary, error) {
	return r.summaries(ctx, "users.handle = follows.followed_handle", "follows.follower_handle = ?", handle)
}

func (r *followRepository) Followers(ctx context.Context, handle string) ([]dbmysql.UserSummary, error) {
	return r.summaries(ctx, "users.handle = follows.follower_handle", "follows.followed_handle = ?", handle)
}

func (r *followRepository) summaries(ctx context.Context, joinOn, where string, handle string) ([]dbmysql.UserSummary, error) {
	var out []dbmysql.UserSummary
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.User{}).
			Select("users.handle, users.full_name, users.profile_image_url").
			Joins("JOIN follows ON "+joinOn).
			Where(where, handle).
			Scan(&out).Error
	})
	return out, err
}

func (r *followRepository) NotFollowedBy(ctx context.Context, handle string) ([]dbmysql.UserSummary, error) {
	var out []dbmysql.UserSummary
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&dbmysql.User{}).
			Select("handle, full_name, profile_image_url").
			Where("handle <> ?", handle).
			Where("handle NOT IN (?)",
				r.db.Model(&dbmysql.Follow{}).
					Select("followed_handle").
					Where("follower_handle = ?", handle)).
			Scan(&out).Error
	})
	return out, err
}

func handleExists(tx *gorm.DB, handle string) error {
	var count int64
	if err := tx.Model(&dbmysql.User{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound("user", handle)
	}
	return nil
}
