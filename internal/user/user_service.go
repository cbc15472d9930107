package user

import (
	"context"

	"instapost/internal/apperror"
	"instapost/internal/common"
	"instapost/internal/dbmysql"
)

// PostSource is the slice of the post store the profile aggregate needs.
type PostSource interface {
	ListByAuthor(ctx context.Context, handle string) ([]dbmysql.Post, error)
	CommentCountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

// LikeSource is the slice of the like ledger the profile aggregate needs.
type LikeSource interface {
	CountForPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
	PostsLikedBy(ctx context.Context, handle string) ([]dbmysql.Post, error)
	CommentsLikedBy(ctx context.Context, handle string) ([]dbmysql.Comment, error)
}

// ProfilePost is an owned post with its engagement counts.
type ProfilePost struct {
	dbmysql.Post
	NumLikes    int64 `json:"num_likes"`
	NumComments int64 `json:"num_comments"`
}

// Profile is the full aggregate returned for GET /users/{handle}.
type Profile struct {
	Handle          string                `json:"handle"`
	FullName        string                `json:"full_name"`
	Email           string                `json:"email"`
	ProfileImageURL string                `json:"profile_image_url"`
	Bio             string                `json:"bio"`
	Posts           []ProfilePost         `json:"posts"`
	PostLikes       []dbmysql.Post        `json:"post_likes"`
	CommentLikes    []dbmysql.Comment     `json:"comment_likes"`
	Following       []dbmysql.UserSummary `json:"following"`
	Followers       []dbmysql.UserSummary `json:"followers"`
}

type RegisterInput struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// UpdateInput carries a partial update; empty fields are left unchanged.
type UpdateInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Password        string `json:"password"`
}

type AccountInfo struct {
	Handle          string `json:"handle"`
	FullName        string `json:"full_name"`
	ProfileImageURL string `json:"profile_image_url"`
	Bio             string `json:"bio"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*dbmysql.User, string, error)
	Authenticate(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	Profile(ctx context.Context, handle string) (*Profile, error)
	UpdateProfile(ctx context.Context, handle string, input UpdateInput) (*dbmysql.User, error)
	DeleteAccount(ctx context.Context, handle string) error
	Follow(ctx context.Context, follower, followed string) error
	Unfollow(ctx context.Context, follower, followed string) error
	Search(ctx context.Context, name string) ([]AccountInfo, error)
	Suggestions(ctx context.Context, handle string) ([]dbmysql.UserSummary, error)
}

type userService struct {
	userRepo   UserRepository
	followRepo FollowRepository
	posts      PostSource
	likes      LikeSource
}

func NewUserService(userRepo UserRepository, followRepo FollowRepository, posts PostSource, likes LikeSource) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
		posts:      posts,
		likes:      likes,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(input.Handle); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(input.Password); err != nil {
		return nil, "", err
	}
	if input.Email == "" {
		return nil, "", apperror.BadRequest("email is required")
	}
	if err := common.ValidateEmail(input.Email); err != nil {
		return nil, "", err
	}
	if input.Bio != "" && len(input.Bio) > common.MaxTextLen {
		return nil, "", apperror.BadRequest("bio is too long")
	}

	hashed, err := common.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Handle:       input.Handle,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashed,
		Bio:          input.Bio,
	}
	// duplicate handle/email surfaces from the unique indexes as BadRequest
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.Handle)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Authenticate(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	if handle == "" || password == "" {
		return nil, "", apperror.BadRequest("handle and password required")
	}

	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		// do not leak whether the account exists
		return nil, "", apperror.Unauthorized("invalid handle/password")
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized("invalid handle/password")
	}

	token, err := common.GenerateToken(user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Profile(ctx context.Context, handle string) (*Profile, error) {
	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(ctx, handle)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}
	likeCounts, err := s.likes.CountForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.posts.CommentCountForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}

	profilePosts := make([]ProfilePost, 0, len(posts))
	for _, p := range posts {
		profilePosts = append(profilePosts, ProfilePost{
			Post:        p,
			NumLikes:    likeCounts[p.PostID],
			NumComments: commentCounts[p.PostID],
		})
	}

	postLikes, err := s.likes.PostsLikedBy(ctx, handle)
	if err != nil {
		return nil, err
	}
	commentLikes, err := s.likes.CommentsLikedBy(ctx, handle)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.Following(ctx, handle)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.Followers(ctx, handle)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Handle:          user.Handle,
		FullName:        user.FullName,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		Bio:             user.Bio,
		Posts:           profilePosts,
		PostLikes:       postLikes,
		CommentLikes:    commentLikes,
		Following:       following,
		Followers:       followers,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, handle string, input UpdateInput) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		if err := common.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Bio != "" {
		if len(input.Bio) > common.MaxTextLen {
			return nil, apperror.BadRequest("bio is too long")
		}
		user.Bio = input.Bio
	}
	if input.ProfileImageURL != "" {
		user.ProfileImageURL = input.ProfileImageURL
	}
	if input.Password != "" {
		if err := common.ValidatePassword(input.Password); err != nil {
			return nil, err
		}
		hashed, err := common.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context, handle string) error {
	return s.userRepo.DeleteUser(ctx, handle)
}

func (s *userService) Follow(ctx context.Context, follower, followed string) error {
	if follower == followed {
		return apperror.BadRequest("cannot follow yourself")
	}
	return s.followRepo.Follow(ctx, follower, followed)
}

func (s *userService) Unfollow(ctx context.Context, follower, followed string) error {
	return s.followRepo.Unfollow(ctx, follower, followed)
}

func (s *userService) Search(ctx context.Context, name string) ([]AccountInfo, error) {
	users, err := s.userRepo.SearchUsers(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]AccountInfo, 0, len(users))
	for _, u := range users {
		out = append(out, AccountInfo{
			Handle:          u.Handle,
			FullName:        u.FullName,
			ProfileImageURL: u.ProfileImageURL,
			Bio:             u.Bio,
		})
	}
	return out, nil
}

func (s *userService) Suggestions(ctx context.Context, handle string) ([]dbmysql.UserSummary, error) {
	exists, err := s.userRepo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("user", handle)
	}
	return s.followRepo.NotFollowedBy(ctx, handle)
}
