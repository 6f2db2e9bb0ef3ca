// Package tasklist はタスクリストサービスの内部実装を提供する。
//
// タスクの一覧取得・作成・削除の3操作をHTTPで公開する。
// 一覧取得は認証不要、作成と削除はJWTによる認証を必須とする。
// タスクの保存先はtaskstore.Storeとして注入され、
// サーバー自身は保存方式を知らない。
//
// 主な機能:
//   - タスク一覧の取得（GET /）
//   - タスクの作成（POST /create、要認証）
//   - タスクの削除（DELETE /:id、要認証）
//   - 開発用JWTトークンの発行（POST /auth/token）
package tasklist
