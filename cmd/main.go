package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"emporio_dash_v1_202608/internal/controller"
	"emporio_dash_v1_202608/internal/model"
	"emporio_dash_v1_202608/internal/repository"
	"emporio_dash_v1_202608/internal/router"
	"emporio_dash_v1_202608/internal/service"
	"emporio_dash_v1_202608/internal/task"
	"emporio_dash_v1_202608/pkg/database"
)

// @title Emporio Dashboard API
// @version 1.0
// @description 订单仪表盘后端：注册/登录、用户权限与佣金管理、最近订单查询
// @host localhost:8080
// @BasePath /api

func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
// 数据库句柄只在这里构造一次，往下层显式传递，不做全局单例
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Usuario   repository.UsuarioRepository
	Pedido    repository.PedidoRepository
	AcessoLog repository.AcessoLogRepository
	Snapshot  repository.SnapshotRepository
}

// Services 服务集合
type Services struct {
	Auth   *service.AuthService
	Pedido *service.PedidoService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "emporio"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "emporio"),
		getEnv("DB_PORT", "5432"),
	)

	return database.InitDB(dsn,
		&model.Usuario{},
		&model.Pedido{},
		&model.AcessoLog{},
		&model.MetricSnapshot{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Usuario:   repository.NewUsuarioRepository(db),
		Pedido:    repository.NewPedidoRepository(db),
		AcessoLog: repository.NewAcessoLogRepository(db),
		Snapshot:  repository.NewSnapshotRepository(db),
	}

	// -------- Service 层 --------
	services := &Services{
		Auth:   service.NewAuthService(repos.Usuario, repos.AcessoLog),
		Pedido: service.NewPedidoService(repos.Pedido),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:   controller.NewAuthController(services.Auth),
		Pedido: controller.NewPedidoController(services.Pedido),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	snapshotTask := task.NewSnapshotTask(deps.Repos.Pedido, deps.Repos.Snapshot)
	snapshotTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
