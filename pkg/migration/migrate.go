// Package migration はSQLiteデータベースのスキーマ移行を管理する。
// embedされたSQLファイルを読み込み、バージョン管理テーブルで適用状態を追跡する。
package migration

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

// Run は未適用のマイグレーションを順序通りに適用し、適用した件数を返す。
// 適用済みのバージョンはスキップする。ログ出力は行わず、呼び出し側に委ねる。
// ファイル名形式: 000001_description.up.sql
func Run(db *sql.DB, fsys fs.FS, dir string) (int, error) {
	if err := ensureVersionTable(db); err != nil {
		return 0, fmt.Errorf("バージョン管理テーブルの作成に失敗: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return 0, fmt.Errorf("適用済みバージョンの取得に失敗: %w", err)
	}

	scripts, err := collectScripts(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("マイグレーションファイルの収集に失敗: %w", err)
	}

	count := 0
	for _, sc := range scripts {
		if applied[sc.version] {
			continue
		}

		if err := applyScript(db, fsys, sc); err != nil {
			return count, fmt.Errorf("マイグレーション %06d_%s の適用に失敗: %w", sc.version, sc.name, err)
		}
		count++
	}

	return count, nil
}

// script は1つのマイグレーションファイル。
type script struct {
	version int
	name    string
	path    string
}

// ensureVersionTable はバージョン管理テーブルを作成する。
func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

// appliedVersions は適用済みのマイグレーションバージョンを取得する。
func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// collectScripts はディレクトリからup.sqlファイルを収集してバージョン順にソートする。
// 同じバージョン番号が2つ以上ある場合はエラーを返す。
func collectScripts(fsys fs.FS, dir string) ([]script, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]string)
	var scripts []script
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) < 2 {
			continue
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}

		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("バージョン %d が重複している: %s と %s", version, prev, entry.Name())
		}
		seen[version] = entry.Name()

		scripts = append(scripts, script{
			version: version,
			name:    strings.TrimSuffix(parts[1], ".up.sql"),
			path:    dir + "/" + entry.Name(),
		})
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].version < scripts[j].version
	})

	return scripts, nil
}

// applyScript は1つのマイグレーションをトランザクション内で適用する。
// SQLの実行とバージョンの記録が同じトランザクションで確定する。
func applyScript(db *sql.DB, fsys fs.FS, sc script) error {
	content, err := fs.ReadFile(fsys, sc.path)
	if err != nil {
		return fmt.Errorf("ファイル読み込みに失敗: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(string(content)); err != nil {
		return fmt.Errorf("SQL実行に失敗: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", sc.version); err != nil {
		return fmt.Errorf("バージョン記録に失敗: %w", err)
	}

	return tx.Commit()
}
