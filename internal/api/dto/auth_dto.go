package dto

import "time"

// ==================== 注册 / 登录 ====================

// CredenciaisRequest 注册和登录共用的请求体
// 字段名沿用旧前端的 usuario/senha
type CredenciaisRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// UsuarioInfo 对外的用户记录
// 每个字段都由 service 显式填好默认值再序列化，不存在可选字段；
// SENHA 永远不出现在这里
type UsuarioInfo struct {
	Usuario  string  `json:"USUARIO"`
	Nome     string  `json:"NOME"`
	Grau     string  `json:"GRAU"`
	Lojas    string  `json:"LOJAS"`
	Modulo   string  `json:"MODULO"`
	Bancos   string  `json:"BANCOS"`
	Limicp   string  `json:"LIMICP"`
	Ccusto   string  `json:"CCUSTO"`
	Armazen  string  `json:"ARMAZEN"`
	Comissao float64 `json:"COMISSAO"`
}

// ==================== 用户列表 ====================

// UsuarioResumo 用户管理列表的一行
type UsuarioResumo struct {
	Usuario  string  `json:"USUARIO"`
	Nome     string  `json:"NOME"`
	Comissao float64 `json:"COMISSAO"`
	Grau     string  `json:"GRAU"`
}

// ==================== 权限 / 佣金 / 冻结 ====================

// Permissoes 权限开关载荷
type Permissoes struct {
	SistemaCompleto bool `json:"sistema_completo"`
	Lojas           bool `json:"lojas"`
	Modulo          bool `json:"modulo"`
	Bancos          bool `json:"bancos"`
	Limicp          bool `json:"limicp"`
	Ccusto          bool `json:"ccusto"`
	Armazen         bool `json:"armazen"`
}

// PermissoesRequest PUT /users/:usuario/permissions 请求体
type PermissoesRequest struct {
	Permissoes Permissoes `json:"permissoes"`
}

// ComissaoRequest PUT /users/:usuario/comissao 请求体
// 指针用来区分「没传/不是数字」和合法的 0
type ComissaoRequest struct {
	Comissao *float64 `json:"comissao"`
}

// BloqueioRequest PUT /users/:usuario/bloqueio 请求体
type BloqueioRequest struct {
	Bloqueado *bool `json:"bloqueado"`
}

// ==================== 订单 ====================

// PedidoRow GET /pedidos 返回的一行，列名跟 cabpdv 一致
type PedidoRow struct {
	Numero  int64     `json:"numero"`
	Cliente string    `json:"cliente"`
	Emissao time.Time `json:"emissao"`
	Status  string    `json:"status"`
	Valor   float64   `json:"valor"`
}
