//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"instapost/internal/chat"
	"instapost/internal/comment"
	"instapost/internal/dbmongo"
	"instapost/internal/feed"
	"instapost/internal/like"
	"instapost/internal/media"
	"instapost/internal/user"
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideDatabase,
		ProvideMongo,
		ProvideHub,
		dbmongo.NewMediaStorage,
		user.NewUserRepository,
		user.NewFollowRepository,
		feed.NewPostRepository,
		comment.NewCommentRepository,
		like.NewLikeRepository,
		comment.NewTreeService,
		feed.NewFeedService,
		user.NewUserService,
		like.NewLikeService,
		user.NewHandler,
		feed.NewHandler,
		comment.NewHandler,
		like.NewHandler,
		media.NewHandler,
		chat.NewHandler,
		wire.Bind(new(feed.FollowSource), new(user.FollowRepository)),
		wire.Bind(new(feed.AccountSource), new(user.UserRepository)),
		wire.Bind(new(feed.LikeCounter), new(like.LikeRepository)),
		wire.Bind(new(feed.MediaDeleter), new(*dbmongo.MediaStorage)),
		wire.Bind(new(comment.LikeCounter), new(like.LikeRepository)),
		wire.Bind(new(user.PostSource), new(feed.PostRepository)),
		wire.Bind(new(user.LikeSource), new(like.LikeRepository)),
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}
