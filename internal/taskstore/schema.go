package taskstore

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	"github.com/nao1215/tasklist/pkg/migration"
)

//go:embed migrations
var migrationsFS embed.FS

// initSchema はマイグレーションを実行してタスクデータベースのスキーマを適用する。
func initSchema(db *sql.DB) error {
	count, err := migration.Run(db, migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	if count > 0 {
		log.Printf("マイグレーションを%d件適用しました", count)
	}
	return nil
}
