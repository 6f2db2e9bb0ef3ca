// タスクリストサービスのエントリポイント。
// タスクの一覧取得・作成・削除のAPIを提供する。
// 環境変数の読み取りはここで行い、サーバーには展開済みの設定値を渡す。
package main

import (
	"log"
	"os"

	"github.com/nao1215/tasklist/internal/tasklist"
	"github.com/nao1215/tasklist/internal/taskstore"
)

func main() {
	port := getEnvOr("PORT", "8080")
	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")
	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:3000")

	// TASKLIST_DBにSQLiteのパスを指定するとタスクが永続化される。未指定ならインメモリ。
	var store taskstore.Store
	if dbPath := os.Getenv("TASKLIST_DB"); dbPath != "" {
		sqliteStore, err := taskstore.NewSQLite(dbPath)
		if err != nil {
			log.Fatalf("SQLiteストアの初期化に失敗: %v", err)
		}
		store = sqliteStore
		log.Printf("SQLiteストアを使用します: %s", dbPath)
	} else {
		store = taskstore.NewMemory()
		log.Printf("インメモリストアを使用します")
	}

	server, err := tasklist.NewServer(tasklist.Config{
		Port:           port,
		JWTSecret:      jwtSecret,
		AllowedOrigins: []string{frontendURL},
	}, store)
	if err != nil {
		log.Fatalf("タスクリストサーバーの初期化に失敗: %v", err)
	}

	log.Printf("タスクリストサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("タスクリストサービスの起動に失敗: %v", err)
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
