// internal/service/retention.go
package service

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/repository"
)

// RetentionService hard-purges soft-deleted tasks once they are older
// than the configured age. Soft-deleted rows stay invisible to every
// read path until then.
type RetentionService struct {
	tasks  *repository.EntTaskRepository
	maxAge time.Duration
	now    func() time.Time
}

func NewRetentionService(tasks *repository.EntTaskRepository, maxAge time.Duration) *RetentionService {
	return &RetentionService{
		tasks:  tasks,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// PurgeSoftDeleted removes expired soft-deleted tasks together with
// their subtasks and attachments. Returns the number of purged tasks.
func (s *RetentionService) PurgeSoftDeleted(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.maxAge)
	return s.tasks.PurgeDeletedBefore(ctx, cutoff)
}
