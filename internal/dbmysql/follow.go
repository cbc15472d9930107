package dbmysql

import (
	"time"
)

// Follow is a directed edge: follower -> followed. The composite unique index
// keeps at most one edge per ordered pair.
type Follow struct {
	FollowID       uint64    `gorm:"primaryKey;column:follow_id;autoIncrement" json:"follow_id"`
	FollowerHandle string    `gorm:"column:follower_handle;size:50;not null;index:idx_follow_pair,unique" json:"follower_handle"`
	FollowedHandle string    `gorm:"column:followed_handle;size:50;not null;index:idx_follow_pair,unique" json:"followed_handle"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
