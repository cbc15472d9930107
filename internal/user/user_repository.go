package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"instapost/internal/apperror"
	"instapost/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByHandle(ctx context.Context, handle string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	// DeleteUser removes the account and everything hanging off it (posts,
	// comments and their reply subtrees, likes, follow edges) in one
	// transaction.
	DeleteUser(ctx context.Context, handle string) error
	CheckUserExists(ctx context.Context, handle string) (bool, error)
	// SearchUsers matches handle or full name case-insensitively with bound
	// parameters, ordered by handle.
	SearchUsers(ctx context.Context, name string) ([]dbmysql.User, error)
	SummariesByHandles(ctx context.Context, handles []string) (map[string]dbmysql.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.BadRequest("handle or email already taken")
	}
	return err
}

func (r *userRepository) GetUserByHandle(ctx context.Context, handle string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("handle = ?", handle).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user", handle)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.BadRequest("email already taken")
	}
	return err
}

func (r *userRepository) DeleteUser(ctx context.Context, handle string) error {
	ctx, cancel := dbmysql.WithTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbmysql.User{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("user", handle)
		}

		// posts owned by the account take their whole discussion with them
		var postIDs []uint64
		if err := tx.Model(&dbmysql.Post{}).Where("handle = ?", handle).Pluck("post_id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			var commentIDs []uint64
			if err := tx.Model(&dbmysql.Comment{}).Where("post_id IN ?", postIDs).Pluck("comment_id", &commentIDs).Error; err != nil {
				return err
			}
			if len(commentIDs) > 0 {
				if err := tx.Where("comment_id IN ?", commentIDs).Delete(&dbmysql.CommentLike{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&dbmysql.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&dbmysql.PostLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&dbmysql.Post{}).Error; err != nil {
				return err
			}
		}

		// comments the account left on surviving posts go too, along with
		// their reply subtrees so no reply is left pointing at a gone parent
		doomed, err := commentClosure(tx, handle)
		if err != nil {
			return err
		}
		if len(doomed) > 0 {
			if err := tx.Where("comment_id IN ?", doomed).Delete(&dbmysql.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id IN ?", doomed).Delete(&dbmysql.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("handle = ?", handle).Delete(&dbmysql.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("handle = ?", handle).Delete(&dbmysql.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_handle = ? OR followed_handle = ?", handle, handle).Delete(&dbmysql.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where("handle = ?", handle).Delete(&dbmysql.User{}).Error
	})
}

// commentClosure collects the ids of every comment authored by handle plus
// all transitive replies to them. The seen set keeps a malformed parent cycle
// from looping.
func commentClosure(tx *gorm.DB, handle string) ([]uint64, error) {
	var frontier []uint64
	if err := tx.Model(&dbmysql.Comment{}).Where("handle = ?", handle).Pluck("comment_id", &frontier).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool, len(frontier))
	all := make([]uint64, 0, len(frontier))
	for _, id := range frontier {
		seen[id] = true
		all = append(all, id)
	}

	for len(frontier) > 0 {
		var children []uint64
		if err := tx.Model(&dbmysql.Comment{}).Where("parent_id IN ?", frontier).Pluck("comment_id", &children).Error; err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, id := range children {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
				frontier = append(frontier, id)
			}
		}
	}
	return all, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("handle = ?", handle).Count(&count).Error
	})
	return count > 0, err
}

func (r *userRepository) SearchUsers(ctx context.Context, name string) ([]dbmysql.User, error) {
	var users []dbmysql.User
	query := r.db.Model(&dbmysql.User{}).Order("handle")
	if name != "" {
		pattern := "%" + strings.ToLower(name) + "%"
		query = query.Where("LOWER(handle) LIKE ? OR LOWER(full_name) LIKE ?", pattern, pattern)
	}

	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return query.WithContext(ctx).Find(&users).Error
	})
	return users, err
}

func (r *userRepository) SummariesByHandles(ctx context.Context, handles []string) (map[string]dbmysql.UserSummary, error) {
	summaries := make(map[string]dbmysql.UserSummary, len(handles))
	if len(handles) == 0 {
		return summaries, nil
	}

	var users []dbmysql.User
	err := dbmysql.WithRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("handle IN ?", handles).Find(&users).Error
	})
	if err != nil {
		return nil, err
	}

	for i := range users {
		summaries[users[i].Handle] = users[i].Summary()
	}
	return summaries, nil
}
