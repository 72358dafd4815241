// Package services はタスク関連のビジネスロジックを提供します。
package services

import (
	"errors"
	"strings"
	"time"

	"go-task-api/internal/models"
	"go-task-api/internal/repositories"
)

var (
	// ErrTitleRequired はタイトルが空または未指定の場合のエラーです。
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidDueDate は期限日がYYYY-MM-DD形式の日付でない場合のエラーです。
	ErrInvalidDueDate = errors.New("due_date must be a valid date in YYYY-MM-DD format")
)

// dueDateLayout はdue_dateの書式です。
const dueDateLayout = "2006-01-02"

// TaskService はタスクのバリデーションとリポジトリ操作を扱います。
type TaskService struct {
	taskRepo repositories.TaskRepository
}

// NewTaskService は新しいTaskServiceを作成します。
func NewTaskService(taskRepo repositories.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create は新しいタスクを作成します。completedは常にfalseで始まります。
func (s *TaskService) Create(title string, dueDate *string) (*models.Task, error) {
	validTitle, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	validDueDate, err := normalizeDueDate(dueDate)
	if err != nil {
		return nil, err
	}

	newTask := models.Task{
		Title:     validTitle,
		DueDate:   validDueDate,
		Completed: false,
	}
	return s.taskRepo.Create(&newTask)
}

// List はすべてのタスクを作成順で取得します。
func (s *TaskService) List() ([]*models.Task, error) {
	return s.taskRepo.FindAll()
}

// Get は指定IDのタスクを取得します。
func (s *TaskService) Get(id int) (*models.Task, error) {
	return s.taskRepo.FindByID(id)
}

// Update はpatchに含まれるフィールドのみを検証して更新します。
// 存在しないIDはフィールドの検証より先にNotFoundにします。
func (s *TaskService) Update(id int, patch models.TaskPatch) (*models.Task, error) {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		validTitle, err := validateTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &validTitle
	}
	if patch.DueDateSet {
		validDueDate, err := normalizeDueDate(patch.DueDate)
		if err != nil {
			return nil, err
		}
		patch.DueDate = validDueDate
	}
	return s.taskRepo.Update(id, patch)
}

// Delete は指定IDのタスクを削除します。
func (s *TaskService) Delete(id int) error {
	return s.taskRepo.Delete(id)
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}
	return trimmed, nil
}

// normalizeDueDate は期限日を検証します。nilと空文字は「期限日なし」としてnilを返します。
func normalizeDueDate(dueDate *string) (*string, error) {
	if dueDate == nil || *dueDate == "" {
		return nil, nil
	}
	if _, err := time.Parse(dueDateLayout, *dueDate); err != nil {
		return nil, ErrInvalidDueDate
	}
	return dueDate, nil
}
