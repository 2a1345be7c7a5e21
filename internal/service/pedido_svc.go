package service

import (
	"context"
	"time"

	"emporio_dash_v1_202608/internal/api/dto"
	"emporio_dash_v1_202608/internal/repository"
	"emporio_dash_v1_202608/pkg/utils"
)

// ==================== PedidoService ====================

const (
	// 旧接口固定取最近 50 条
	pedidosLimit = 50

	// 仪表盘几个卡片会同时打这个接口，给个短缓存
	pedidosCacheKey = "pedidos:recentes"
	pedidosCacheTTL = 15 * time.Second
)

// PedidoService 订单查询
type PedidoService struct {
	PedidoRepo repository.PedidoRepository
}

// NewPedidoService 工厂方法
func NewPedidoService(pedidoRepo repository.PedidoRepository) *PedidoService {
	return &PedidoService{PedidoRepo: pedidoRepo}
}

// ListarRecentes 最近 50 条订单，emissao 倒序
func (s *PedidoService) ListarRecentes(ctx context.Context) ([]dto.PedidoRow, error) {
	// 1. 缓存命中直接返回
	if cached, ok := utils.GetCache(pedidosCacheKey); ok {
		if rows, ok := cached.([]dto.PedidoRow); ok {
			return rows, nil
		}
	}

	// 2. 查库
	pedidos, err := s.PedidoRepo.ListRecentes(ctx, pedidosLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PedidoRow, 0, len(pedidos))
	for _, p := range pedidos {
		rows = append(rows, dto.PedidoRow{
			Numero:  p.Numero,
			Cliente: p.Cliente,
			Emissao: p.Emissao,
			Status:  p.Status,
			Valor:   p.Valor,
		})
	}

	// 3. 回填缓存
	utils.SetCache(pedidosCacheKey, rows, pedidosCacheTTL)
	return rows, nil
}
