package dbmysql

import (
	"time"
)

// PostLike and CommentLike both carry a composite unique index so one account
// can never hold two likes on the same target; re-liking is a no-op upstream.

type PostLike struct {
	PostLikeID uint64    `gorm:"primaryKey;column:post_like_id;autoIncrement" json:"post_like_id"`
	Handle     string    `gorm:"column:handle;size:50;not null;index:idx_post_like,unique" json:"handle"`
	PostID     uint64    `gorm:"column:post_id;not null;index:idx_post_like,unique" json:"post_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type CommentLike struct {
	CommentLikeID uint64    `gorm:"primaryKey;column:comment_like_id;autoIncrement" json:"comment_like_id"`
	Handle        string    `gorm:"column:handle;size:50;not null;index:idx_comment_like,unique" json:"handle"`
	CommentID     uint64    `gorm:"column:comment_id;not null;index:idx_comment_like,unique" json:"comment_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
