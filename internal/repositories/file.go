package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-task-api/internal/models"
)

// FileRepository はMemoryRepositoryをラップし、変更のたびに
// タスク一覧全体をJSONファイルへ書き出すリポジトリです。
// 起動時にファイルがあれば読み込み、なければ空の状態から始めます。
// アトミックな書き込みや外部プロセスとの排他は行いません。
type FileRepository struct {
	mem  *MemoryRepository
	path string
}

// NewFileRepository はバックアップファイルを読み込んでFileRepositoryを作成します。
// ファイルが存在しない場合は空のストアで開始し、
// 存在するのに解析できない場合はエラーを返します（起動失敗扱い）。
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		mem:  NewMemoryRepository(),
		path: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, fmt.Errorf("could not read tasks file: %w", err)
	}

	var tasks []*models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("could not parse tasks file %s: %w", path, err)
	}
	r.mem.Restore(tasks)

	return r, nil
}

// Create はタスクを追加し、ファイルへ書き出します。
func (r *FileRepository) Create(t *models.Task) (*models.Task, error) {
	created, err := r.mem.Create(t)
	if err != nil {
		return nil, err
	}
	if err := r.save(); err != nil {
		return nil, err
	}
	return created, nil
}

// FindAll はすべてのタスクを返します。読み取りはファイルに触れません。
func (r *FileRepository) FindAll() ([]*models.Task, error) {
	return r.mem.FindAll()
}

// FindByID は指定されたIDのタスクを返します。
func (r *FileRepository) FindByID(id int) (*models.Task, error) {
	return r.mem.FindByID(id)
}

// Update はタスクを更新し、ファイルへ書き出します。
func (r *FileRepository) Update(id int, patch models.TaskPatch) (*models.Task, error) {
	updated, err := r.mem.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if err := r.save(); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete はタスクを削除し、ファイルへ書き出します。
func (r *FileRepository) Delete(id int) error {
	if err := r.mem.Delete(id); err != nil {
		return err
	}
	return r.save()
}

// save はタスク一覧全体をJSON配列としてファイルに上書きします。
func (r *FileRepository) save() error {
	tasks, err := r.mem.FindAll()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal tasks: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("could not write tasks file: %w", err)
	}
	return nil
}
