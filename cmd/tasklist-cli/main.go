// タスクリストサービスを操作するCLIのエントリポイント。
// list / create / delete / token の4コマンドを提供する。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/tasklist/pkg/httpclient"
)

// task はAPIから受け取るタスク。
type task struct {
	// ID はタスクの一意識別子。
	ID int64 `json:"id"`
	// Description はタスクの内容。
	Description string `json:"description"`
}

// tokenResponse は開発用トークン発行APIのレスポンス。
type tokenResponse struct {
	// Token は発行されたJWTトークン。
	Token string `json:"token"`
	// UserID はトークンに紐づくユーザーID。
	UserID string `json:"user_id"`
}

func main() {
	addr := flag.String("addr", getEnvOr("TASKLIST_ADDR", "http://localhost:8080"), "タスクリストサーバーのアドレス")
	token := flag.String("token", os.Getenv("TASKLIST_TOKEN"), "認証用のアクセストークン（既定値は環境変数TASKLIST_TOKEN）")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	client := httpclient.New(*addr)
	ctx := context.Background()
	if *token != "" {
		ctx = httpclient.WithToken(ctx, *token)
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "list":
		err = runList(ctx, client)
	case "create":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "create には説明文を指定してください")
			os.Exit(2)
		}
		err = runCreate(ctx, client, strings.Join(flag.Args()[1:], " "))
	case "delete":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "delete にはタスクIDを指定してください")
			os.Exit(2)
		}
		err = runDelete(ctx, client, flag.Arg(1))
	case "token":
		err = runToken(ctx, client)
	default:
		fmt.Fprintf(os.Stderr, "不明なコマンド: %s\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}

// runList はタスク一覧を取得して1行ずつ表示する。
func runList(ctx context.Context, client *httpclient.Client) error {
	var tasks []task
	if err := client.GetJSON(ctx, "/", &tasks); err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("タスクはありません")
		return nil
	}
	for _, t := range tasks {
		fmt.Printf("%d\t%s\n", t.ID, t.Description)
	}
	return nil
}

// runCreate は説明文からタスクを作成する。
func runCreate(ctx context.Context, client *httpclient.Client, description string) error {
	body := map[string]map[string]string{"task": {"description": description}}

	var created task
	if err := client.PostJSON(ctx, "/create", body, &created); err != nil {
		return err
	}

	fmt.Printf("タスクを作成しました: id=%d %s\n", created.ID, created.Description)
	return nil
}

// runDelete はIDを指定してタスクを削除する。
func runDelete(ctx context.Context, client *httpclient.Client, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("タスクIDが整数ではありません: %q", rawID)
	}

	if err := client.Delete(ctx, fmt.Sprintf("/%d", id)); err != nil {
		return err
	}

	fmt.Printf("タスクを削除しました: id=%d\n", id)
	return nil
}

// runToken は開発用トークンを発行して標準出力に表示する。
func runToken(ctx context.Context, client *httpclient.Client) error {
	var resp tokenResponse
	if err := client.PostJSON(ctx, "/auth/token", nil, &resp); err != nil {
		return err
	}

	fmt.Println(resp.Token)
	return nil
}

// usage はCLIの使い方を表示する。
func usage() {
	fmt.Fprintf(os.Stderr, `使い方: tasklist-cli [フラグ] <コマンド> [引数]

コマンド:
  list              タスク一覧を表示する
  create <説明文>   タスクを作成する（要トークン）
  delete <タスクID> タスクを削除する（要トークン）
  token             開発用トークンを発行する

フラグ:
`)
	flag.PrintDefaults()
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
