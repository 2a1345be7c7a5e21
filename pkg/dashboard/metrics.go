package dashboard

import (
	"context"
	"math"
	"time"
)

// ==================== 订单状态 ====================

// 仪表盘使用的三种订单状态
const (
	StatusFaturado = "faturado"
	StatusPendente = "pendente"
	StatusPerdido  = "perdido"
)

// MapearStatusBruto 把 cabpdv 的单字符状态码映射成仪表盘状态
// 未知编码一律按 pendente 处理
func MapearStatusBruto(codigo string) string {
	switch codigo {
	case "L":
		return StatusFaturado
	case "B":
		return StatusPendente
	case "R":
		return StatusPerdido
	default:
		return StatusPendente
	}
}

// ==================== 数据类型 ====================

// Pedido 仪表盘视角的扁平订单
type Pedido struct {
	ID      string    `json:"id"`
	Cliente string    `json:"customer"`
	Data    time.Time `json:"date"`
	Status  string    `json:"status"`
	Total   float64   `json:"total"`
	Itens   int       `json:"items"`
}

// Resumo 订单指标汇总
type Resumo struct {
	PedidosFaturados int     `json:"pedidosFaturados"`
	PedidosPendentes int     `json:"pedidosPendentes"`
	PedidosPerdidos  int     `json:"pedidosPerdidos"`
	FaturamentoTotal float64 `json:"faturamentoTotal"`
}

// Percentuais 三种状态占总单数的整数百分比
type Percentuais struct {
	Faturado int `json:"faturado"`
	Pendente int `json:"pendente"`
	Perdido  int `json:"perdido"`
}

// SerieDiaria 按天汇总的一行，历史图表用
type SerieDiaria struct {
	Data             time.Time `json:"date"`
	PedidosFaturados int       `json:"pedidosFaturados"`
	PedidosPendentes int       `json:"pedidosPendentes"`
	PedidosPerdidos  int       `json:"pedidosPerdidos"`
	Faturamento      float64   `json:"faturamento"`
}

// ==================== 数据源 ====================

// FontePedidos 订单数据源
// 真实实现走 HTTP API；未接入真实库的图表用模拟实现顶替
type FontePedidos interface {
	ListarPedidos(ctx context.Context) ([]Pedido, error)
}

// ==================== 聚合 ====================

// CalcularResumo 按状态计数，faturamento 只累计 faturado 订单
func CalcularResumo(pedidos []Pedido) Resumo {
	var r Resumo
	for _, p := range pedidos {
		switch p.Status {
		case StatusFaturado:
			r.PedidosFaturados++
			r.FaturamentoTotal += p.Total
		case StatusPerdido:
			r.PedidosPerdidos++
		default:
			r.PedidosPendentes++
		}
	}
	return r
}

// CalcularPercentuais 状态占比，四舍五入取整
// 没有订单时三项都是 0，不会除零
func CalcularPercentuais(r Resumo) Percentuais {
	total := r.PedidosFaturados + r.PedidosPendentes + r.PedidosPerdidos
	if total == 0 {
		return Percentuais{}
	}
	pct := func(n int) int {
		return int(math.Round(float64(n) / float64(total) * 100))
	}
	return Percentuais{
		Faturado: pct(r.PedidosFaturados),
		Pendente: pct(r.PedidosPendentes),
		Perdido:  pct(r.PedidosPerdidos),
	}
}

// ResumirFonte 从数据源拉取后聚合
func ResumirFonte(ctx context.Context, fonte FontePedidos) (Resumo, error) {
	pedidos, err := fonte.ListarPedidos(ctx)
	if err != nil {
		return Resumo{}, err
	}
	return CalcularResumo(pedidos), nil
}
