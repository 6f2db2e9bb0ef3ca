package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims はJWTトークンのクレーム（ペイロード）を表す。
// 認証済みユーザーの識別子をハンドラに伝播するために使用する。
type JWTClaims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの一意識別子。
	UserID string `json:"user_id"`
}

// HeaderAccessToken は署名付きトークンを運ぶHTTPヘッダーキー。
// 値は生のトークン文字列であり、"Bearer " 等の接頭辞は付けない。
// 既存クライアントはこの形式で送信するため、接頭辞付きのトークンは検証に失敗する。
const HeaderAccessToken = "X-Access-Token"

// GenerateJWT はユーザーIDからJWTトークンを生成する。
// 開発用トークン発行エンドポイントとテストが使用する。
func GenerateJWT(secret, userID string) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "tasklist",
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はJWTトークンを検証するGinミドルウェアを返す。
// X-Access-Tokenヘッダーの生トークンを共有シークレットで検証し、
// 成功した場合はコンテキストに "user_id" を設定する。
// ヘッダーが無い、または検証に失敗したリクエストは401で打ち切る。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(HeaderAccessToken)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No token provided",
			})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Failed to authenticate token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// GetUserID はGinコンテキストからユーザーIDを取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}
