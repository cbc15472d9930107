package like

import (
	"context"

	"instapost/internal/apperror"
)

// TargetKind discriminates what a like points at.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// ParseTargetKind validates the wire discriminator.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetPost, TargetComment:
		return TargetKind(s), nil
	default:
		return "", apperror.BadRequest("likeType must be 'post' or 'comment'")
	}
}

// LikeService is the ledger of single (account, target) endorsements.
// Liking an already-liked target and unliking a never-liked target are both
// no-ops, so counts can never drift.
type LikeService interface {
	Like(ctx context.Context, handle string, targetID uint64, kind TargetKind) error
	Unlike(ctx context.Context, handle string, targetID uint64, kind TargetKind) error
}

type likeService struct {
	repo LikeRepository
}

func NewLikeService(repo LikeRepository) LikeService {
	return &likeService{repo: repo}
}

func (s *likeService) Like(ctx context.Context, handle string, targetID uint64, kind TargetKind) error {
	switch kind {
	case TargetPost:
		return s.repo.LikePost(ctx, handle, targetID)
	case TargetComment:
		return s.repo.LikeComment(ctx, handle, targetID)
	default:
		return apperror.BadRequest("unknown like target kind")
	}
}

func (s *likeService) Unlike(ctx context.Context, handle string, targetID uint64, kind TargetKind) error {
	switch kind {
	case TargetPost:
		return s.repo.UnlikePost(ctx, handle, targetID)
	case TargetComment:
		return s.repo.UnlikeComment(ctx, handle, targetID)
	default:
		return apperror.BadRequest("unknown like target kind")
	}
}
