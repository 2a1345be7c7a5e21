package model

// ==================== 访问级别常量 ====================

// Grau 访问级别 (对应 senhas.GRAU 列)
const (
	GrauUsuario  = "U" // 普通用户（注册默认值）
	GrauVisual   = "V" // 仅查看
	GrauCompleto = "S" // 完整系统权限（管理员）
)

// Flag 权限开关存储值，表里存 CHAR(1)
const (
	FlagSim = "S"
	FlagNao = "N"
)

// ==================== Usuario 用户/凭证行 ====================

// Usuario 登录凭证与权限行，表名沿用旧系统的 senhas
// SENHA 存 bcrypt 哈希，任何响应里都不允许出现
type Usuario struct {
	Usuario  string  `gorm:"column:USUARIO;size:30;primaryKey"`
	Senha    string  `gorm:"column:SENHA;size:255;not null"`
	Nome     string  `gorm:"column:NOME;size:100"`
	Grau     string  `gorm:"column:GRAU;size:1;default:U"`
	Lojas    string  `gorm:"column:LOJAS;size:1;default:N"`
	Modulo   string  `gorm:"column:MODULO;size:1;default:N"`
	Bancos   string  `gorm:"column:BANCOS;size:1;default:N"`
	Limicp   string  `gorm:"column:LIMICP;size:1;default:N"`
	Ccusto   string  `gorm:"column:CCUSTO;size:1;default:N"`
	Armazen  string  `gorm:"column:ARMAZEN;size:1;default:N"`
	Comissao float64 `gorm:"column:COMISSAO;default:0"`

	// 第二套旧 schema (USERCC/UACESSO) 里唯一多出的能力：冻结账号
	Bloqueado bool `gorm:"column:BLOQUEADO;default:false"`
}

func (Usuario) TableName() string {
	return "senhas"
}

// TemAcessoCompleto 是否为管理员级别
func (u *Usuario) TemAcessoCompleto() bool {
	return u.Grau == GrauCompleto
}

// ==================== PermissoesFlags 权限开关集合 ====================

// PermissoesFlags 六个附加权限开关（入库值 S/N）
// sistema_completo 不在这里，它决定 GRAU 本身
type PermissoesFlags struct {
	Lojas   bool `json:"lojas"`
	Modulo  bool `json:"modulo"`
	Bancos  bool `json:"bancos"`
	Limicp  bool `json:"limicp"`
	Ccusto  bool `json:"ccusto"`
	Armazen bool `json:"armazen"`
}

// FlagValor bool -> 'S'/'N'
func FlagValor(b bool) string {
	if b {
		return FlagSim
	}
	return FlagNao
}
