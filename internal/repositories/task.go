// Package repositories はタスクの保存と取得を行うリポジトリを提供します。
package repositories

import (
	"errors"

	"go-task-api/internal/models"
)

// ErrTaskNotFound はタスクが見つからない場合のエラーです。
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository はタスクのCRUD操作の契約を定義します。
// 本番はファイルミラー付きのFileRepository、テストはMemoryRepositoryを注入します。
type TaskRepository interface {
	Create(t *models.Task) (*models.Task, error)
	FindAll() ([]*models.Task, error)
	FindByID(id int) (*models.Task, error)
	Update(id int, patch models.TaskPatch) (*models.Task, error)
	Delete(id int) error
}
