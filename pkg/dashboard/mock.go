package dashboard

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// ==================== 模拟数据源 ====================

// FonteSimulada 模拟订单数据源
// 账单/时间序列还没接真实查询，仪表盘先用它顶着；换真实实现时
// 只要替换 FontePedidos，聚合代码不动
type FonteSimulada struct {
	Quantidade int
	rng        *rand.Rand
}

// NewFonteSimulada seed 固定时生成可复现的数据，测试里好断言
func NewFonteSimulada(quantidade int, seed int64) *FonteSimulada {
	if quantidade <= 0 {
		quantidade = 50
	}
	return &FonteSimulada{
		Quantidade: quantidade,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// ListarPedidos 生成模拟订单
// 前段订单全是 faturado，后段逐渐混入 pendente/perdido，比例接近旧系统的假数据
func (f *FonteSimulada) ListarPedidos(_ context.Context) ([]Pedido, error) {
	statuses := []string{StatusFaturado, StatusPendente, StatusPerdido}
	pedidos := make([]Pedido, 0, f.Quantidade)
	for i := 0; i < f.Quantidade; i++ {
		n := 1
		if i > f.Quantidade*4/5 {
			n = 3
		} else if i > f.Quantidade*2/5 {
			n = 2
		}
		pedidos = append(pedidos, Pedido{
			ID:      fmt.Sprintf("ORD-%d", 1000+i),
			Cliente: fmt.Sprintf("Cliente %d", i+1),
			Data:    time.Now().AddDate(0, 0, -f.rng.Intn(30)),
			Status:  statuses[f.rng.Intn(n)],
			Total:   float64(f.rng.Intn(10000) + 1000),
			Itens:   f.rng.Intn(10) + 1,
		})
	}
	return pedidos, nil
}

// GerarSerieDiaria 最近 N 天的模拟日汇总，历史图表用
func (f *FonteSimulada) GerarSerieDiaria(dias int) []SerieDiaria {
	if dias <= 0 {
		dias = 7
	}
	serie := make([]SerieDiaria, 0, dias)
	hoje := time.Now()
	for i := 0; i < dias; i++ {
		serie = append(serie, SerieDiaria{
			Data:             hoje.AddDate(0, 0, -(dias - i - 1)),
			PedidosFaturados: f.rng.Intn(25) + 10,
			PedidosPendentes: f.rng.Intn(15) + 5,
			PedidosPerdidos:  f.rng.Intn(5) + 1,
			Faturamento:      float64(f.rng.Intn(15000) + 5000),
		})
	}
	return serie
}
