// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの検証（X-Access-Tokenヘッダーの生トークン方式）、
// パニックリカバリ、リクエストID付与、CORS設定を含む。
package middleware
