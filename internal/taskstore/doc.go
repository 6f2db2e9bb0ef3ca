// Package taskstore はタスクの永続化層を提供する。
//
// Storeインターフェースの背後にインメモリ実装とSQLite実装を持ち、
// どちらも同じID採番規則に従う。IDは1から始まる単調増加の整数で、
// タスクを削除しても欠番のまま再利用しない。
//
// 主な機能:
//   - タスク一覧の取得（作成順）
//   - タスクの作成（ID採番）
//   - IDを指定したタスクの削除
//   - 全タスクの削除とID採番のリセット
package taskstore
