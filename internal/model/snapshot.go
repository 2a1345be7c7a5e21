package model

import "time"

// ==================== MetricSnapshot 每日指标快照 ====================

// MetricSnapshot 定时任务每天写一行，给历史图表一个真实数据源
// Dia 唯一，当天重复执行按 upsert 覆盖
type MetricSnapshot struct {
	ID  int64     `gorm:"primaryKey;autoIncrement"`
	Dia time.Time `gorm:"column:dia;uniqueIndex;not null"`

	Faturados int `gorm:"default:0"`
	Pendentes int `gorm:"default:0"`
	Perdidos  int `gorm:"default:0"`

	// 仅统计 faturado 订单的合计金额
	Faturamento float64 `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}
