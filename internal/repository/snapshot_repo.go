package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"emporio_dash_v1_202608/internal/model"
)

// ==================== SnapshotRepository 指标快照仓库 ====================

// SnapshotRepository 每日指标快照仓库接口
type SnapshotRepository interface {
	Upsert(ctx context.Context, snap *model.MetricSnapshot) error
	ListUltimos(ctx context.Context, dias int) ([]model.MetricSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建指标快照仓库
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Upsert 按 dia 冲突则覆盖计数，任务当天重跑是幂等的
func (r *snapshotRepository) Upsert(ctx context.Context, snap *model.MetricSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dia"}},
			DoUpdates: clause.AssignmentColumns([]string{"faturados", "pendentes", "perdidos", "faturamento", "updated_at"}),
		}).
		Create(snap).Error
}

// ListUltimos 最近 N 天的快照，按日期升序
func (r *snapshotRepository) ListUltimos(ctx context.Context, dias int) ([]model.MetricSnapshot, error) {
	if dias <= 0 {
		dias = 7
	}
	var snaps []model.MetricSnapshot
	err := r.db.WithContext(ctx).
		Order("dia DESC").
		Limit(dias).
		Find(&snaps).Error
	if err != nil {
		return nil, err
	}
	// 倒序取出后翻回升序，图表按时间从左到右
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}
	return snaps, nil
}
