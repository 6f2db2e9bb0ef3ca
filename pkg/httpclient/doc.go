// Package httpclient はタスクリストAPIを呼び出すHTTPクライアントを提供する。
//
// CLIなどの外部クライアントがサーバーのAPIを呼び出す際に使用する。
// アクセストークンはWithTokenでコンテキストに載せると
// X-Access-Tokenヘッダーとして自動的に伝播される。
package httpclient
