package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID はリクエストIDを運ぶHTTPヘッダーキー。
const HeaderRequestID = "X-Request-ID"

// RequestID はリクエストごとに一意のIDを割り当てるGinミドルウェアを返す。
// クライアントがX-Request-IDヘッダーを送信した場合はその値を引き継ぎ、
// 無い場合はUUIDを新規発行する。IDはレスポンスヘッダーにも設定する。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID はGinコンテキストからリクエストIDを取得する。
// RequestIDミドルウェアが適用されていない場合は空文字列を返す。
func GetRequestID(c *gin.Context) string {
	requestID, _ := c.Get("request_id")
	if id, ok := requestID.(string); ok {
		return id
	}
	return ""
}
