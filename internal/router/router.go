package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"emporio_dash_v1_202608/internal/controller"
	"emporio_dash_v1_202608/internal/middleware"

	_ "emporio_dash_v1_202608/docs"
)

// Controllers 路由需要的控制器集合
type Controllers struct {
	Auth   *controller.AuthController
	Pedido *controller.PedidoController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. API 路由组
	api := r.Group("/api")
	{
		// 健康检查
		api.GET("/health", controller.Health)

		// auth 组（旧前端的路径全挂在 /api/auth 下，包括 pedidos）
		auth := api.Group("/auth")
		{
			// POST /api/auth/register
			auth.POST("/register", ctls.Auth.Register)

			// POST /api/auth/login
			auth.POST("/login", ctls.Auth.Login)

			// GET /api/auth/users
			auth.GET("/users", ctls.Auth.ListUsers)

			// PUT /api/auth/users/:usuario/permissions
			auth.PUT("/users/:usuario/permissions", ctls.Auth.UpdatePermissions)

			// PUT /api/auth/users/:usuario/comissao
			auth.PUT("/users/:usuario/comissao", ctls.Auth.UpdateComissao)

			// PUT /api/auth/users/:usuario/bloqueio
			auth.PUT("/users/:usuario/bloqueio", ctls.Auth.UpdateBloqueio)

			// GET /api/auth/pedidos
			auth.GET("/pedidos", ctls.Pedido.GetPedidos)
		}
	}
}
