package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/cache"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const taskCacheTTL = 5 * time.Minute

// TaskUpdate carries a partial field set for an update. Nil fields are left
// unchanged on the stored task.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService exposes task CRUD. Tasks form a shared board: operations are
// not filtered by the calling user.
type TaskService interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error)
	CreateTask(ctx context.Context, title, description, status string) (*model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, update TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	repo  repository.TaskRepository
	cache *cache.Client
}

// NewTaskService builds a TaskService with repository and cache.
func NewTaskService(repo repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{repo: repo, cache: cache}
}

func (s *taskService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("task:%s", id)
}

func (s *taskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Task
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(task); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, taskCacheTTL)
	}
	return task, nil
}

func (s *taskService) CreateTask(ctx context.Context, title, description, status string) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrTitleRequired
	}
	taskStatus := model.StatusPending
	if status != "" {
		taskStatus = model.TaskStatus(status)
		if !taskStatus.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      taskStatus,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperrors.ErrTitleRequired
		}
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		status := model.TaskStatus(*update.Status)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		task.Status = status
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
