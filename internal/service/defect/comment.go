package defect

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// AddComment attaches a note to the defect. Comments are accepted in every
// status, locked defects included.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return domain.Comment{}, err
	}

	var c domain.Comment
	_, _, err := s.mutate(ctx, opComment, input.DefectID, func(txCtx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error) {
		var err error
		c, err = s.comments.Create(txCtx, domain.Comment{
			DefectID: d.ID,
			AuthorID: actor.UserID,
			Body:     strings.TrimSpace(input.Body),
		})
		if err != nil {
			return nil, err
		}
		return domain.Commented{CommentID: c.ID}, nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

// ListComments returns the comments of a defect oldest first.
func (s *Service) ListComments(ctx context.Context, defectID int64, limit, offset int) ([]domain.Comment, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if defectID <= 0 {
		return nil, domain.NewValidationError("defect_id", "required")
	}
	if limit < 0 || limit > maxListLimit || offset < 0 {
		return nil, domain.NewValidationError("limit", "must be between 0 and 500")
	}

	if _, err := s.defects.GetByID(ctx, defectID); err != nil {
		return nil, fmt.Errorf("get defect: %w", err)
	}
	comments, err := s.comments.ListByDefect(ctx, defectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
