package dbmysql

import (
	"time"
)

// Comment hangs off a post; ParentID nil means a root comment, otherwise it
// points at another comment on the same post.
type Comment struct {
	CommentID uint64    `gorm:"primaryKey;column:comment_id;autoIncrement" json:"comment_id"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"parent_id"`
	Handle    string    `gorm:"column:handle;size:50;not null;index" json:"handle"`
	PostID    uint64    `gorm:"column:post_id;not null;index" json:"post_id"`
	Message   string    `gorm:"column:message;size:2200;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
