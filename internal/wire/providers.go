// Package wire assembles the application graph with google/wire.
// Regenerate wire_gen.go with `go generate ./internal/wire` after
// changing providers.
package wire

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"instapost/internal/chat"
	"instapost/internal/comment"
	"instapost/internal/common"
	"instapost/internal/config"
	"instapost/internal/dbmongo"
	"instapost/internal/dbmysql"
	"instapost/internal/feed"
	"instapost/internal/like"
	"instapost/internal/media"
	"instapost/internal/user"
)

// Application holds everything the server entrypoint needs: the loaded
// configuration, the database handle for migrations, and one handler per
// route group.
type Application struct {
	Config *config.Config
	DB     *gorm.DB

	Users    *user.Handler
	Feed     *feed.Handler
	Comments *comment.Handler
	Likes    *like.Handler
	Media    *media.Handler
	Chat     *chat.Handler
}

func ProvideConfig() *config.Config {
	cfg := config.Load()
	common.ConfigureJWT(cfg.JWT)
	return cfg
}

func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("closing mysql: %v", err)
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Printf("closing mongo: %v", err)
		}
	}
	return client, cleanup, nil
}

func ProvideHub(cfg *config.Config) *chat.Hub {
	return chat.NewHub(cfg.Relay.SendBufferSize)
}
