package client

// ==================== 权限判断 ====================

// AcessoCompleto 是否有完整系统权限 (GRAU == 'S')
// 纯谓词，只决定界面显示什么；服务端的变更接口目前不做这个校验，
// 所以这不是安全边界
func AcessoCompleto(u *Usuario) bool {
	return u != nil && u.Grau == "S"
}

// PodeGerirUsuarios 用户管理/权限编辑界面的门槛，同一个谓词
func PodeGerirUsuarios(u *Usuario) bool {
	return AcessoCompleto(u)
}
