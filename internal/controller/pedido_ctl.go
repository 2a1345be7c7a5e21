package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emporio_dash_v1_202608/internal/service"
)

// ==================== PedidoController 订单控制器 ====================

// PedidoController 仪表盘订单接口
type PedidoController struct {
	pedidoService *service.PedidoService
}

// NewPedidoController 创建订单控制器
func NewPedidoController(s *service.PedidoService) *PedidoController {
	return &PedidoController{pedidoService: s}
}

// GetPedidos 最近订单
// @Summary 最近订单列表
// @Description 最近 50 条 cabpdv 行，emissao 倒序；status 是原始单字符编码，
// @Description L/B/R 到 faturado/pendente/perdido 的映射由客户端聚合器完成
// @Tags Pedidos (订单模块)
// @Produce json
// @Success 200 {array} dto.PedidoRow
// @Failure 500 {object} map[string]string
// @Router /auth/pedidos [get]
func (ctrl *PedidoController) GetPedidos(c *gin.Context) {
	rows, err := ctrl.pedidoService.ListarRecentes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos. Por favor, tente novamente."})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Health 健康检查
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
