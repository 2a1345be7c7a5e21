package task

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"emporio_dash_v1_202608/internal/model"
	"emporio_dash_v1_202608/internal/repository"
	"emporio_dash_v1_202608/pkg/dashboard"
)

// ==================== SnapshotTask 每日指标快照 ====================

// SnapshotTask 每天算一次当日订单指标写进 metric_snapshots，
// 历史图表不用每次都全表扫 cabpdv
type SnapshotTask struct {
	PedidoRepo   repository.PedidoRepository
	SnapshotRepo repository.SnapshotRepository
	Cron         *cron.Cron
}

// NewSnapshotTask 工厂方法
func NewSnapshotTask(pedidoRepo repository.PedidoRepository, snapshotRepo repository.SnapshotRepository) *SnapshotTask {
	return &SnapshotTask{
		PedidoRepo:   pedidoRepo,
		SnapshotRepo: snapshotRepo,
		Cron:         cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *SnapshotTask) Start() {
	// 首次执行，服务刚起时就把今天的行补上
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次指标快照...")
		t.snapshotJob(ctx, time.Now())
	}()

	// 每天 00:05 跑前一天的终值，再刷一次今天的行
	_, err := t.Cron.AddFunc("0 5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		ontem := time.Now().AddDate(0, 0, -1)
		t.snapshotJob(ctx, ontem)
		t.snapshotJob(ctx, time.Now())
	})
	if err != nil {
		log.Fatalf("无法启动指标快照任务: %v", err)
	}

	t.Cron.Start()
	log.Println("指标快照任务已启动 (每天 00:05)")
}

// Stop 停服时让 cron 收尾
func (t *SnapshotTask) Stop() {
	t.Cron.Stop()
}

// snapshotJob 聚合某一天的订单并 upsert 快照行
func (t *SnapshotTask) snapshotJob(ctx context.Context, dia time.Time) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fim := inicio.AddDate(0, 0, 1)

	pedidos, err := t.PedidoRepo.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		log.Printf("[Cron] 查询 %s 的订单失败: %v", inicio.Format("2006-01-02"), err)
		return
	}

	// 复用仪表盘的聚合，状态码映射也走同一处
	flat := make([]dashboard.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		flat = append(flat, dashboard.Pedido{
			ID:     strconv.FormatInt(p.Numero, 10),
			Status: dashboard.MapearStatusBruto(p.Status),
			Total:  p.Valor,
			Data:   p.Emissao,
		})
	}
	resumo := dashboard.CalcularResumo(flat)

	snap := &model.MetricSnapshot{
		Dia:         inicio,
		Faturados:   resumo.PedidosFaturados,
		Pendentes:   resumo.PedidosPendentes,
		Perdidos:    resumo.PedidosPerdidos,
		Faturamento: resumo.FaturamentoTotal,
	}
	if err := t.SnapshotRepo.Upsert(ctx, snap); err != nil {
		log.Printf("[Cron] 写入 %s 的快照失败: %v", inicio.Format("2006-01-02"), err)
		return
	}

	log.Printf("[Cron] 快照 %s: faturados=%d pendentes=%d perdidos=%d faturamento=%.2f",
		inicio.Format("2006-01-02"),
		resumo.PedidosFaturados, resumo.PedidosPendentes, resumo.PedidosPerdidos, resumo.FaturamentoTotal)
}
