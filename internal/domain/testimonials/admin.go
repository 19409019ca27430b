package testimonials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AdminService holds the moderation operations. It shares the Store with
// Service instead of extending it.
type AdminService struct {
	store  Store
	logger *zap.SugaredLogger
	page   PageConfig
}

func NewAdminService(store Store, logger *zap.SugaredLogger, page PageConfig) *AdminService {
	return &AdminService{store: store, logger: logger, page: page}
}

// ListAll pages through every testimonial, optionally filtered by status.
func (a *AdminService) ListAll(ctx context.Context, limit, offset int, status string) ([]Testimonial, error) {
	limit, offset = a.page.Clamp(limit, offset)
	f := ListFilter{Limit: limit, Offset: offset}
	if status = strings.TrimSpace(status); status != "" {
		st, ok := ParseStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		f.Status = &st
	}
	list, err := a.store.List(ctx, f)
	if err != nil {
		a.logger.Errorw("error fetching all testimonials", "status", status, "error", err)
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return list, nil
}

// Get returns one testimonial in any status.
func (a *AdminService) Get(ctx context.Context, id int64) (*Testimonial, error) {
	t, err := a.store.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Errorw("error fetching testimonial", "id", id, "error", err)
		}
		return nil, err
	}
	return t, nil
}

func (a *AdminService) SetStatus(ctx context.Context, id int64, status string) error {
	st, ok := ParseStatus(strings.TrimSpace(status))
	if !ok {
		return ErrInvalidStatus
	}
	if err := a.store.UpdateStatus(ctx, id, st); err != nil {
		return err
	}
	a.logger.Infow("testimonial status updated", "id", id, "status", st)
	return nil
}

// BulkApprove approves every existing id in one statement. Missing ids only
// lower the returned count.
func (a *AdminService) BulkApprove(ctx context.Context, ids []int64) (int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return 0, ErrEmptySelection
	}
	n, err := a.store.BulkUpdateStatus(ctx, unique, StatusApproved)
	if err != nil {
		return 0, err
	}
	a.logger.Infow("testimonials bulk approved", "requested", len(unique), "approved", n)
	return n, nil
}

func (a *AdminService) Delete(ctx context.Context, id int64) error {
	if err := a.store.Delete(ctx, id); err != nil {
		return err
	}
	a.logger.Infow("testimonial deleted", "id", id)
	return nil
}
