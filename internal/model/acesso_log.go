package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== AcessoLog 登录审计 ====================

// AcessoLog 登录尝试记录，只追加不更新
// Payload 存请求的非敏感快照 (jsonb)，密码在入库前已被剥离
type AcessoLog struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Usuario string `gorm:"size:30;index"`
	Sucesso bool   `gorm:"default:false"`
	Motivo  string `gorm:"size:100"` // credenciais_invalidas / bloqueado / ok ...
	IP      string `gorm:"size:45"`

	Payload datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time
}

func (AcessoLog) TableName() string {
	return "acesso_logs"
}

// 审计里使用的失败原因
const (
	MotivoOK                   = "ok"
	MotivoCredenciaisInvalidas = "credenciais_invalidas"
	MotivoBloqueado            = "bloqueado"
	MotivoCamposFaltando       = "campos_faltando"
)
