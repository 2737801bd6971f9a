// internal/service/subtask_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// SubtaskService applies the subtask business rules.
type SubtaskService struct {
	subtasks *repository.EntSubtaskRepository
}

func NewSubtaskService(subtasks *repository.EntSubtaskRepository) *SubtaskService {
	return &SubtaskService{
		subtasks: subtasks,
	}
}

type CreateSubtaskInput struct {
	Title       string
	Description *string
	OrderIndex  *int
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, accountID, taskID uuid.UUID, in CreateSubtaskInput) (*ent.Subtask, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	description := ""
	if in.Description != nil {
		if err := validateDescription(*in.Description, subtaskDescriptionMax); err != nil {
			return nil, err
		}
		description = *in.Description
	}

	orderIndex := 0
	if in.OrderIndex != nil {
		orderIndex = *in.OrderIndex
	}

	return s.subtasks.Create(ctx, accountID, taskID, &repository.SubtaskInput{
		Title:       title,
		Description: description,
		Status:      models.SubtaskStatusToString(models.SubtaskStatusPending),
		OrderIndex:  orderIndex,
	})
}

type UpdateSubtaskInput struct {
	Title       *string
	Description *string
	Status      *int
	OrderIndex  *int
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, accountID, taskID, subtaskID uuid.UUID, in UpdateSubtaskInput) (*ent.Subtask, error) {
	patch := &repository.SubtaskUpdateInput{
		OrderIndex: in.OrderIndex,
	}

	if in.Title != nil {
		title, err := validateTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}

	if in.Description != nil {
		if err := validateDescription(*in.Description, subtaskDescriptionMax); err != nil {
			return nil, err
		}
		patch.Description = in.Description
	}

	if in.Status != nil {
		if !models.ValidSubtaskStatus(*in.Status) {
			return nil, models.ErrInvalidStatus
		}
		status := models.SubtaskStatusToString(*in.Status)
		patch.Status = &status
	}

	return s.subtasks.Update(ctx, accountID, taskID, subtaskID, patch)
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, accountID, taskID, subtaskID uuid.UUID) error {
	return s.subtasks.SoftDelete(ctx, accountID, taskID, subtaskID)
}
