package comment

import (
	"context"
	"fmt"

	"instapost/internal/apperror"
	"instapost/internal/common"
	"instapost/internal/dbmysql"
)

// LikeCounter is the slice of the like ledger the assembler needs.
type LikeCounter interface {
	CountForComments(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error)
}

// CommentNode is one comment with its like count and its direct replies.
type CommentNode struct {
	dbmysql.Comment
	NumLikes int64          `json:"num_likes"`
	Children []*CommentNode `json:"children"`
}

// CommentWithLikes is the flat shape used outside tree contexts.
type CommentWithLikes struct {
	dbmysql.Comment
	NumLikes int64 `json:"num_likes"`
}

type TreeService interface {
	// PostComments returns the post's discussion as a forest: one tree per
	// root comment, every node carrying its like count.
	PostComments(ctx context.Context, postID uint64) ([]*CommentNode, error)
	// PostCommentsFlat skips tree assembly and returns the post's comments as
	// a flat list with like counts (single-post detail view).
	PostCommentsFlat(ctx context.Context, postID uint64) ([]CommentWithLikes, error)
	CreateComment(ctx context.Context, handle string, postID uint64, parentID *uint64, message string) (*dbmysql.Comment, error)
	UserComments(ctx context.Context, handle string) ([]CommentWithLikes, error)
}

type treeService struct {
	repo  CommentRepository
	likes LikeCounter
}

func NewTreeService(repo CommentRepository, likes LikeCounter) TreeService {
	return &treeService{repo: repo, likes: likes}
}

// PostComments does one bulk fetch and one grouped like-count query, then
// assembles the forest in memory. A parent reference pointing outside the
// post, or a parent cycle, surfaces as a data-integrity error rather than a
// wrong tree or an endless walk.
func (s *treeService) PostComments(ctx context.Context, postID uint64) ([]*CommentNode, error) {
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("post", postID)
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.CommentID)
	}
	counts, err := s.likes.CountForComments(ctx, ids)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint64]*CommentNode, len(comments))
	for i := range comments {
		c := comments[i]
		nodes[c.CommentID] = &CommentNode{Comment: c, NumLikes: counts[c.CommentID]}
	}

	// adjacency: parent id -> children, insertion order preserved
	var roots []*CommentNode
	children := make(map[uint64][]*CommentNode, len(comments))
	for _, c := range comments {
		node := nodes[c.CommentID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if *c.ParentID == c.CommentID {
			return nil, apperror.Integrity(fmt.Sprintf("comment %d is its own parent", c.CommentID))
		}
		if _, ok := nodes[*c.ParentID]; !ok {
			return nil, apperror.Integrity(fmt.Sprintf("comment %d references parent %d outside post %d", c.CommentID, *c.ParentID, postID))
		}
		children[*c.ParentID] = append(children[*c.ParentID], node)
	}

	// breadth-first attach from the roots; every node must be reached
	// exactly once or the parent chain contains a cycle
	visited := 0
	queue := append([]*CommentNode(nil), roots...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++

		node.Children = children[node.CommentID]
		queue = append(queue, node.Children...)
	}
	if visited != len(comments) {
		return nil, apperror.Integrity(fmt.Sprintf("comment parent chain on post %d contains a cycle", postID))
	}

	return roots, nil
}

func (s *treeService) PostCommentsFlat(ctx context.Context, postID uint64) ([]CommentWithLikes, error) {
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("post", postID)
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, comments)
}

func (s *treeService) CreateComment(ctx context.Context, handle string, postID uint64, parentID *uint64, message string) (*dbmysql.Comment, error) {
	if err := common.ValidateText("message", message); err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{
		Handle:   handle,
		PostID:   postID,
		ParentID: parentID,
		Message:  message,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *treeService) UserComments(ctx context.Context, handle string) ([]CommentWithLikes, error) {
	comments, err := s.repo.ListByAuthor(ctx, handle)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, comments)
}

func (s *treeService) decorate(ctx context.Context, comments []dbmysql.Comment) ([]CommentWithLikes, error) {
	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.CommentID)
	}
	counts, err := s.likes.CountForComments(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]CommentWithLikes, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentWithLikes{Comment: c, NumLikes: counts[c.CommentID]})
	}
	return out, nil
}
