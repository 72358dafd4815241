package repositories

import (
	"sync"

	"go-task-api/internal/models"
)

// MemoryRepository はタスクを作成順のままメモリに保持するリポジトリです。
// IDは1から連番で採番し、削除されても再利用しません。
type MemoryRepository struct {
	mu     sync.RWMutex
	tasks  []*models.Task
	nextID int
}

// NewMemoryRepository は空のMemoryRepositoryを作成します。
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Create は新しいタスクにIDを採番して追加します。
func (r *MemoryRepository) Create(t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *t
	stored.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, &stored)

	created := stored
	return &created, nil
}

// FindAll はすべてのタスクを作成順で返します。
func (r *MemoryRepository) FindAll() ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// 外部からの変更を防ぐためコピーを返す
	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		clone := *t
		tasks = append(tasks, &clone)
	}
	return tasks, nil
}

// FindByID は指定されたIDのタスクを返します。
func (r *MemoryRepository) FindByID(id int) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.find(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

// Update はpatchに含まれるフィールドのみを置き換えます。
func (r *MemoryRepository) Update(id int, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(id)
	if !ok {
		return nil, ErrTaskNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.DueDateSet {
		t.DueDate = patch.DueDate
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}

	clone := *t
	return &clone, nil
}

// Delete は指定されたIDのタスクを削除します。IDは再採番しません。
func (r *MemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// Restore はバックアップから読み込んだタスクで状態を置き換えます。
// 次のIDは既存の最大ID+1になります。
func (r *MemoryRepository) Restore(tasks []*models.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make([]*models.Task, 0, len(tasks))
	maxID := 0
	for _, t := range tasks {
		clone := *t
		r.tasks = append(r.tasks, &clone)
		if clone.ID > maxID {
			maxID = clone.ID
		}
	}
	r.nextID = maxID + 1
}

func (r *MemoryRepository) find(id int) (*models.Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
