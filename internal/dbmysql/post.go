package dbmysql

import (
	"time"
)

type Post struct {
	PostID        uint64    `gorm:"primaryKey;column:post_id;autoIncrement" json:"post_id"`
	Handle        string    `gorm:"column:handle;size:50;not null;index" json:"handle"`
	PostURL       string    `gorm:"column:post_url;size:512;not null" json:"post_url"`
	PostKey       string    `gorm:"column:post_key;size:255" json:"post_key"`
	Caption       string    `gorm:"column:caption;size:2200;not null" json:"caption"`
	Watermark     string    `gorm:"column:watermark;size:35" json:"watermark,omitempty"`
	WatermarkFont string    `gorm:"column:watermark_font;size:50" json:"watermark_font,omitempty"`
	Filter        string    `gorm:"column:filter;size:50" json:"filter,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
