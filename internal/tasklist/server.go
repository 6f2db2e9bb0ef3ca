package tasklist

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nao1215/tasklist/internal/taskstore"
	"github.com/nao1215/tasklist/pkg/middleware"
)

// descriptionMinLength はタスク説明文の最小文字数（トリム後）。
const descriptionMinLength = 3

// Config はタスクリストサーバーの設定。
// 環境変数の読み取りはエントリポイントの責務とし、ここには展開済みの値を渡す。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// JWTSecret はJWT署名用の秘密鍵。
	JWTSecret string
	// AllowedOrigins はCORSで許可するオリジンの一覧。
	AllowedOrigins []string
}

// Server はタスクリストサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// store はタスクの保存先。
	store taskstore.Store
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
}

// NewServer は新しいタスクリストサーバーを生成する。
// ストアは呼び出し側が構築して注入する。
func NewServer(cfg Config, store taskstore.Store) (*Server, error) {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		store:     store,
		jwtSecret: cfg.JWTSecret,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// タスク一覧の取得（認証不要）
	s.router.GET("/", s.handleListTasks())

	// 開発用トークン発行（認証不要）
	auth := s.router.Group("/auth")
	{
		auth.POST("/token", s.handleIssueDevToken())
	}

	// 認証必須の変更系エンドポイント
	protected := s.router.Group("/")
	protected.Use(middleware.JWTAuth(s.jwtSecret))
	{
		protected.POST("/create", s.handleCreateTask())
		protected.DELETE("/:id", s.handleDeleteTask())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "tasklist"})
	})
}

// createTaskRequest はタスク作成リクエストのボディ。
// フィールドの有無を値の空文字列と区別するため、ポインタで受ける。
type createTaskRequest struct {
	Task *createTaskPayload `json:"task"`
}

// createTaskPayload はタスク作成リクエストのタスク部分。
type createTaskPayload struct {
	Description *string `json:"description"`
}

// handleListTasks は全タスクを作成順で返すハンドラを返す。
func (s *Server) handleListTasks() gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := s.store.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
			log.Printf("タスク一覧取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, tasks)
	}
}

// handleCreateTask はタスクを作成するハンドラを返す。
// 説明文の有無の検証を長さの検証より先に行い、返すエラーは1リクエストにつき1つ。
func (s *Server) handleCreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Task == nil || req.Task.Description == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task is required"})
			return
		}

		description := strings.TrimSpace(*req.Task.Description)
		if utf8.RuneCountInString(description) < descriptionMinLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description too short"})
			return
		}

		task, err := s.store.Create(c.Request.Context(), description)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			log.Printf("タスク作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, task)
	}
}

// handleDeleteTask はIDを指定してタスクを削除するハンドラを返す。
// パスパラメータが整数として解釈できない場合は該当タスク無しとして扱う。
func (s *Server) handleDeleteTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}

		deleted, err := s.store.DeleteByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			log.Printf("タスク削除エラー: %v", err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// handleIssueDevToken は開発用JWTトークンを発行するハンドラを返す。
// 本番環境では無効化すべき。
func (s *Server) handleIssueDevToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := uuid.New().String()

		token, err := middleware.GenerateJWT(s.jwtSecret, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   token,
			"user_id": userID,
		})
	}
}
