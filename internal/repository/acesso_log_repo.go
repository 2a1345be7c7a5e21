package repository

import (
	"context"

	"gorm.io/gorm"

	"emporio_dash_v1_202608/internal/model"
)

// ==================== AcessoLogRepository 登录审计仓库 ====================

// AcessoLogRepository 登录审计仓库接口
type AcessoLogRepository interface {
	Create(ctx context.Context, entry *model.AcessoLog) error
	ListRecentes(ctx context.Context, limit int) ([]model.AcessoLog, error)
}

type acessoLogRepository struct {
	db *gorm.DB
}

// NewAcessoLogRepository 创建登录审计仓库
func NewAcessoLogRepository(db *gorm.DB) AcessoLogRepository {
	return &acessoLogRepository{db: db}
}

// Create 追加一条登录记录
func (r *acessoLogRepository) Create(ctx context.Context, entry *model.AcessoLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListRecentes 最近的登录记录，排查问题用
func (r *acessoLogRepository) ListRecentes(ctx context.Context, limit int) ([]model.AcessoLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []model.AcessoLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
