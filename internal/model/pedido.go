package model

import "time"

// ==================== 订单状态常量 ====================

// cabpdv.status 原始状态码（旧 ERP 的单字符编码）
const (
	StatusBrutoFaturado = "L" // 已开票
	StatusBrutoPendente = "B" // 待处理
	StatusBrutoPerdido  = "R" // 已流失
)

// ==================== Pedido 订单行 ====================

// Pedido 销售订单头，表名沿用旧系统的 cabpdv
type Pedido struct {
	Numero  int64     `gorm:"column:numero;primaryKey;autoIncrement"`
	Cliente string    `gorm:"column:cliente;size:100"`
	Emissao time.Time `gorm:"column:emissao;index"`
	Status  string    `gorm:"column:status;size:1"`
	Valor   float64   `gorm:"column:valor"`
}

func (Pedido) TableName() string {
	return "cabpdv"
}
