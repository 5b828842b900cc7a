package defect

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
	"github.com/heartmarshall/sitedefects-backend/pkg/storagekey"
)

// AddAttachment stores metadata of an uploaded blob. Blob bytes live in
// external storage; when the caller has no key yet one is minted.
func (s *Service) AddAttachment(ctx context.Context, input AddAttachmentInput) (domain.Attachment, error) {
	if err := input.Validate(); err != nil {
		return domain.Attachment{}, err
	}
	if s.cfg.MaxSizeBytes > 0 && input.SizeBytes > s.cfg.MaxSizeBytes {
		return domain.Attachment{}, domain.NewValidationError("size_bytes", fmt.Sprintf("max %d bytes", s.cfg.MaxSizeBytes))
	}

	prefix := s.cfg.StorageKeyPrefix
	key := strings.TrimSpace(input.StorageKey)
	switch {
	case key == "":
		key = storagekey.New(prefix)
	case prefix != "" && strings.HasPrefix(key, prefix):
		// Keys under the minting prefix must be ones we could have minted.
		if _, err := storagekey.Parse(prefix, key); err != nil {
			return domain.Attachment{}, domain.NewValidationError("storage_key", "malformed key under "+prefix)
		}
	}

	var a domain.Attachment
	_, _, err := s.mutate(ctx, opAttach, input.DefectID, func(txCtx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error) {
		var err error
		a, err = s.attachments.Create(txCtx, domain.Attachment{
			DefectID:    d.ID,
			UploaderID:  actor.UserID,
			FileName:    strings.TrimSpace(input.FileName),
			SizeBytes:   input.SizeBytes,
			ContentType: strings.TrimSpace(input.ContentType),
			StorageKey:  key,
		})
		if err != nil {
			return nil, err
		}
		return domain.AttachmentAdded{AttachmentID: a.ID, FileName: a.FileName}, nil
	})
	if err != nil {
		return domain.Attachment{}, err
	}
	return a, nil
}

// RemoveAttachment soft-deletes an attachment. The row stays readable with
// includeDeleted; removing it twice yields domain.ErrNotFound.
func (s *Service) RemoveAttachment(ctx context.Context, attachmentID int64) (domain.Attachment, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Attachment{}, domain.ErrUnauthorized
	}
	if attachmentID <= 0 {
		return domain.Attachment{}, domain.NewValidationError("attachment_id", "required")
	}

	current, err := s.attachments.GetByID(ctx, attachmentID, false)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("get attachment: %w", err)
	}

	var a domain.Attachment
	_, _, err = s.mutate(ctx, opDetach, current.DefectID, func(txCtx context.Context, d *domain.Defect, _ domain.Actor) (domain.Change, error) {
		var err error
		a, err = s.attachments.SoftDelete(txCtx, attachmentID)
		if err != nil {
			return nil, err
		}
		return domain.AttachmentRemoved{AttachmentID: a.ID, FileName: a.FileName}, nil
	})
	if err != nil {
		return domain.Attachment{}, err
	}
	return a, nil
}

// GetAttachment returns attachment metadata. Soft-deleted rows are only
// returned with includeDeleted.
func (s *Service) GetAttachment(ctx context.Context, id int64, includeDeleted bool) (domain.Attachment, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Attachment{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.Attachment{}, domain.NewValidationError("attachment_id", "required")
	}

	a, err := s.attachments.GetByID(ctx, id, includeDeleted)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("get attachment: %w", err)
	}
	return a, nil
}

// ListAttachments returns the attachments of a defect. Attachments of a
// deleted defect remain listable with includeDeleted.
func (s *Service) ListAttachments(ctx context.Context, defectID int64, includeDeleted bool) ([]domain.Attachment, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if defectID <= 0 {
		return nil, domain.NewValidationError("defect_id", "required")
	}

	list, err := s.attachments.ListByDefect(ctx, defectID, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return list, nil
}
