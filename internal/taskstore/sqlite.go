package taskstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite はタスクをSQLiteデータベースに保持するStore実装。
type SQLite struct {
	// db はSQLiteデータベース接続。
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// NewSQLite は指定パスのSQLiteデータベースを開き、スキーマを適用して返す。
// path に ":memory:" を指定するとインメモリデータベースを使う。
func NewSQLite(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	// インメモリデータベースはコネクションごとに別の実体になるため、接続を1本に固定する。
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	return &SQLite{db: db}, nil
}

// GetAll は全タスクを作成順で返す。
func (s *SQLite) GetAll(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, description FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("タスク一覧の取得に失敗: %w", err)
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Description); err != nil {
			return nil, fmt.Errorf("タスクの読み取りに失敗: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("タスク一覧の走査に失敗: %w", err)
	}
	return tasks, nil
}

// Create は説明文からタスクを作成し、新しいIDを採番して返す。
func (s *SQLite) Create(ctx context.Context, description string) (Task, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO tasks (description) VALUES (?)", description)
	if err != nil {
		return Task{}, fmt.Errorf("タスクの作成に失敗: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Task{}, fmt.Errorf("タスクIDの取得に失敗: %w", err)
	}

	return Task{ID: id, Description: description}, nil
}

// DeleteByID は指定IDのタスクを削除する。
func (s *SQLite) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("タスクの削除に失敗: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("削除結果の取得に失敗: %w", err)
	}
	return affected > 0, nil
}

// Reset は全タスクを削除し、ID採番を初期状態に戻す。
func (s *SQLite) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("タスクの全削除に失敗: %w", err)
	}

	// sqlite_sequence は最初のINSERTまで作られないため、存在を確認してから消す。
	var name string
	err = tx.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'").Scan(&name)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("sqlite_sequenceの確認に失敗: %w", err)
	}
	if err == nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'tasks'"); err != nil {
			return fmt.Errorf("ID採番のリセットに失敗: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗: %w", err)
	}
	return nil
}

// Close はデータベース接続を閉じる。
func (s *SQLite) Close() error {
	return s.db.Close()
}
