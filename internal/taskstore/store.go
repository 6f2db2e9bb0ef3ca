package taskstore

import "context"

// Task はタスクリストの1件のタスク。
type Task struct {
	// ID はタスクの一意識別子。作成順に1から単調増加する。
	ID int64 `json:"id"`
	// Description はタスクの内容。
	Description string `json:"description"`
}

// Store はタスクの保存先を抽象化するインターフェース。
// すべての実装はIDの単調増加と作成順の保持を保証する。
type Store interface {
	// GetAll は全タスクを作成順で返す。タスクが無い場合は空スライスを返す。
	GetAll(ctx context.Context) ([]Task, error)
	// Create は説明文からタスクを作成し、新しいIDを採番して返す。
	Create(ctx context.Context, description string) (Task, error)
	// DeleteByID は指定IDのタスクを削除する。
	// タスクが存在して削除した場合はtrue、存在しなかった場合はfalseを返す。
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// Reset は全タスクを削除し、ID採番を初期状態（次のIDが1）に戻す。
	Reset(ctx context.Context) error
	// Close はストアが保持するリソースを解放する。
	Close() error
}
