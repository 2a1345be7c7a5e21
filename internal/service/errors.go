package service

import "errors"

// ==================== 业务错误 ====================

// 错误文案沿用葡语前端的提示，controller 按 errors.Is 映射状态码。
// 注意：找不到用户和密码错误必须是同一个错误，避免用户名枚举。
var (
	ErrCamposObrigatorios = errors.New("Todos os campos são obrigatórios")
	ErrSenhaCurta         = errors.New("A senha deve ter pelo menos 6 caracteres")
	ErrSenhaLonga         = errors.New("A senha deve ter no máximo 20 caracteres")

	ErrUsuarioJaCadastrado  = errors.New("Usuário já cadastrado")
	ErrCredenciaisInvalidas = errors.New("Usuário ou senha inválidos")
	ErrUsuarioBloqueado     = errors.New("Usuário bloqueado. Contate o administrador")
	ErrUsuarioNaoEncontrado = errors.New("Usuário não encontrado")

	ErrComissaoInvalida  = errors.New("A comissão deve ser um número")
	ErrComissaoForaFaixa = errors.New("A comissão deve estar entre 0 e 100")
)
