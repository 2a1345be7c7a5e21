package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"emporio_dash_v1_202608/internal/model"
)

// ==================== PedidoRepository 订单仓库 ====================

// PedidoRepository 订单仓库接口
// 仪表盘只读最近订单；Create 留给数据导入和测试
type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	ListRecentes(ctx context.Context, limit int) ([]model.Pedido, error)
	ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Pedido, error)
}

type pedidoRepository struct {
	db *gorm.DB
}

// NewPedidoRepository 创建订单仓库
func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

// Create 插入订单
func (r *pedidoRepository) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListRecentes 最近订单，按开单时间倒序
func (r *pedidoRepository) ListRecentes(ctx context.Context, limit int) ([]model.Pedido, error) {
	if limit <= 0 {
		limit = 50
	}
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Order("emissao DESC").
		Limit(limit).
		Find(&pedidos).Error
	return pedidos, err
}

// ListPorPeriodo 按开单时间区间查询，快照任务用
func (r *pedidoRepository) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("emissao >= ? AND emissao < ?", inicio, fim).
		Find(&pedidos).Error
	return pedidos, err
}
