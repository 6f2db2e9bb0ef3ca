package taskstore

import (
	"context"
	"sync"
)

// Memory はタスクをプロセス内メモリに保持するStore実装。
// サーバーを再起動するとタスクは消える。
type Memory struct {
	// mu はtasksとlastIDを保護するミューテックス。
	mu sync.Mutex
	// tasks は作成順のタスク一覧。
	tasks []Task
	// lastID は最後に採番したタスクID。削除されても巻き戻さない。
	lastID int64
}

var _ Store = (*Memory)(nil)

// NewMemory は新しいインメモリストアを生成する。
func NewMemory() *Memory {
	return &Memory{
		tasks: make([]Task, 0),
	}
}

// GetAll は全タスクを作成順で返す。
func (m *Memory) GetAll(_ context.Context) ([]Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]Task, len(m.tasks))
	copy(tasks, m.tasks)
	return tasks, nil
}

// Create は説明文からタスクを作成し、新しいIDを採番して返す。
func (m *Memory) Create(_ context.Context, description string) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	task := Task{
		ID:          m.lastID,
		Description: description,
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

// DeleteByID は指定IDのタスクを削除する。
func (m *Memory) DeleteByID(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Reset は全タスクを削除し、ID採番を初期状態に戻す。
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = make([]Task, 0)
	m.lastID = 0
	return nil
}

// Close は何もしない。インメモリストアに解放すべきリソースは無い。
func (m *Memory) Close() error {
	return nil
}
