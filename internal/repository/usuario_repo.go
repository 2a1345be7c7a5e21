package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"emporio_dash_v1_202608/internal/model"
)

// ==================== UsuarioRepository 用户仓库 ====================

// UsuarioRepository 用户仓库接口
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	GetByUsuario(ctx context.Context, usuario string) (*model.Usuario, error)
	ExistsByUsuario(ctx context.Context, usuario string) (bool, error)
	List(ctx context.Context) ([]model.Usuario, error)
	UpdatePermissoes(ctx context.Context, usuario string, grau string, flags model.PermissoesFlags) (bool, error)
	UpdateComissao(ctx context.Context, usuario string, comissao float64) (bool, error)
	UpdateBloqueado(ctx context.Context, usuario string, bloqueado bool) (bool, error)
}

// ==================== 实现 ====================

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository 创建用户仓库
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// Create 插入新用户
// USUARIO 上有唯一索引，冲突时 gorm 会翻译成 ErrDuplicatedKey，由上层兜底
func (r *usuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByUsuario 根据用户名查询，未找到返回 (nil, nil)
// 列名是大写的，条件一律走 map/clause，让 gorm 按方言加引号
func (r *usuarioRepository) GetByUsuario(ctx context.Context, usuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where(map[string]interface{}{"USUARIO": usuario}).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByUsuario 检查用户名是否已占用
func (r *usuarioRepository) ExistsByUsuario(ctx context.Context, usuario string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where(map[string]interface{}{"USUARIO": usuario}).
		Count(&count).Error
	return count > 0, err
}

// List 全量用户列表，按 NOME 升序
// 表很小（公司内部账号），不做分页
func (r *usuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "NOME"}}).
		Find(&users).Error
	return users, err
}

// UpdatePermissoes 更新 GRAU 和六个权限开关
// 返回 false 表示用户不存在（RowsAffected == 0）
func (r *usuarioRepository) UpdatePermissoes(ctx context.Context, usuario string, grau string, flags model.PermissoesFlags) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where(map[string]interface{}{"USUARIO": usuario}).
		Updates(map[string]interface{}{
			"GRAU":    grau,
			"LOJAS":   model.FlagValor(flags.Lojas),
			"MODULO":  model.FlagValor(flags.Modulo),
			"BANCOS":  model.FlagValor(flags.Bancos),
			"LIMICP":  model.FlagValor(flags.Limicp),
			"CCUSTO":  model.FlagValor(flags.Ccusto),
			"ARMAZEN": model.FlagValor(flags.Armazen),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateComissao 更新佣金百分比，范围校验在 service 层完成
func (r *usuarioRepository) UpdateComissao(ctx context.Context, usuario string, comissao float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where(map[string]interface{}{"USUARIO": usuario}).
		Update("COMISSAO", comissao)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateBloqueado 冻结/解冻账号
func (r *usuarioRepository) UpdateBloqueado(ctx context.Context, usuario string, bloqueado bool) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where(map[string]interface{}{"USUARIO": usuario}).
		Update("BLOQUEADO", bloqueado)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
