package feed

import (
	"context"
	"log"

	"instapost/internal/apperror"
	"instapost/internal/comment"
	"instapost/internal/common"
	"instapost/internal/dbmysql"
)

// FollowSource resolves who an account currently follows.
type FollowSource interface {
	FollowedHandles(ctx context.Context, handle string) ([]string, error)
}

// AccountSource is the slice of the user store the feed needs.
type AccountSource interface {
	CheckUserExists(ctx context.Context, handle string) (bool, error)
	SummariesByHandles(ctx context.Context, handles []string) (map[string]dbmysql.UserSummary, error)
}

// LikeCounter is the slice of the like ledger the feed needs.
type LikeCounter interface {
	CountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

// MediaDeleter removes an uploaded blob by key.
type MediaDeleter interface {
	Delete(ctx context.Context, key string) error
}

// FeedPost is a post decorated for the home feed.
type FeedPost struct {
	dbmysql.Post
	NumLikes        int64  `json:"num_likes"`
	ProfileImageURL string `json:"profile_image_url"`
}

// PostDetail is one post with its like count and flat comment list.
type PostDetail struct {
	dbmysql.Post
	NumLikes int64                      `json:"num_likes"`
	Comments []comment.CommentWithLikes `json:"comments"`
}

type CreatePostInput struct {
	PostURL       string `json:"post_url"`
	PostKey       string `json:"post_key"`
	Caption       string `json:"caption"`
	Watermark     string `json:"watermark"`
	WatermarkFont string `json:"watermark_font"`
	Filter        string `json:"filter"`
}

type FeedService interface {
	// HomeFeed returns posts by accounts the given account currently follows,
	// newest first, each with author avatar and like count.
	HomeFeed(ctx context.Context, handle string) ([]FeedPost, error)
	CreatePost(ctx context.Context, handle string, input CreatePostInput) (*dbmysql.Post, error)
	GetPost(ctx context.Context, postID uint64) (*PostDetail, error)
	// DeletePost removes the caller's own post and best-effort deletes its
	// stored media.
	DeletePost(ctx context.Context, requester string, postID uint64) error
}

type feedService struct {
	posts    PostRepository
	follows  FollowSource
	accounts AccountSource
	likes    LikeCounter
	comments comment.TreeService
	media    MediaDeleter
}

func NewFeedService(posts PostRepository, follows FollowSource, accounts AccountSource, likes LikeCounter, comments comment.TreeService, media MediaDeleter) FeedService {
	return &feedService{
		posts:    posts,
		follows:  follows,
		accounts: accounts,
		likes:    likes,
		comments: comments,
		media:    media,
	}
}

func (s *feedService) HomeFeed(ctx context.Context, handle string) ([]FeedPost, error) {
	exists, err := s.accounts.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("user", handle)
	}

	followed, err := s.follows.FollowedHandles(ctx, handle)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByAuthors(ctx, followed)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}
	counts, err := s.likes.CountForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries, err := s.accounts.SummariesByHandles(ctx, followed)
	if err != nil {
		return nil, err
	}

	out := make([]FeedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, FeedPost{
			Post:            p,
			NumLikes:        counts[p.PostID],
			ProfileImageURL: summaries[p.Handle].ProfileImageURL,
		})
	}
	return out, nil
}

func (s *feedService) CreatePost(ctx context.Context, handle string, input CreatePostInput) (*dbmysql.Post, error) {
	if err := common.ValidateText("caption", input.Caption); err != nil {
		return nil, err
	}
	if err := common.ValidateWatermark(input.Watermark); err != nil {
		return nil, err
	}
	if input.PostURL == "" {
		return nil, apperror.BadRequest("post_url is required")
	}

	post := &dbmysql.Post{
		Handle:        handle,
		PostURL:       input.PostURL,
		PostKey:       input.PostKey,
		Caption:       input.Caption,
		Watermark:     input.Watermark,
		WatermarkFont: input.WatermarkFont,
		Filter:        input.Filter,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *feedService) GetPost(ctx context.Context, postID uint64) (*PostDetail, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	counts, err := s.likes.CountForPosts(ctx, []uint64{postID})
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.PostCommentsFlat(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:     *post,
		NumLikes: counts[postID],
		Comments: comments,
	}, nil
}

func (s *feedService) DeletePost(ctx context.Context, requester string, postID uint64) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Handle != requester {
		return apperror.Forbidden("cannot delete another user's post")
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return err
	}

	// media cleanup is best-effort: the row delete already happened
	if post.PostKey != "" && s.media != nil {
		if err := s.media.Delete(ctx, post.PostKey); err != nil {
			log.Printf("failed to delete media %s for post %d: %v", post.PostKey, postID, err)
		}
	}
	return nil
}
