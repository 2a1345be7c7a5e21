package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"emporio_dash_v1_202608/internal/api/dto"
	"emporio_dash_v1_202608/internal/service"
)

// ==================== AuthController 认证控制器 ====================

// AuthController 注册/登录/用户管理接口
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 创建认证控制器
func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{authService: s}
}

// ==================== 注册 ====================

// Register 用户注册
// @Summary 注册新用户
// @Description 创建账号，密码 6-20 位，默认 GRAU=U、权限开关全 N
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param request body dto.CredenciaisRequest true "usuario + senha"
// @Success 201 {object} dto.UsuarioInfo
// @Failure 400 {object} map[string]string "校验失败/用户已存在"
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.CredenciaisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios"})
		return
	}

	info, err := ctrl.authService.Registrar(c.Request.Context(), req.Usuario, req.Senha)
	if err != nil {
		ctrl.responderErroRegistro(c, err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

// ==================== 登录 ====================

// Login 用户登录
// @Summary 登录
// @Description 校验凭证；响应是完整的用户记录（不含哈希），客户端自己保存，服务端不发 token
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param request body dto.CredenciaisRequest true "usuario + senha"
// @Success 200 {object} dto.UsuarioInfo
// @Failure 400 {object} map[string]string "缺字段"
// @Failure 401 {object} map[string]string "凭证错误/账号冻结"
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.CredenciaisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios"})
		return
	}

	info, err := ctrl.authService.Login(c.Request.Context(), req.Usuario, req.Senha, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCamposObrigatorios):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCredenciaisInvalidas), errors.Is(err, service.ErrUsuarioBloqueado):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer login. Por favor, tente novamente."})
		}
		return
	}

	c.JSON(http.StatusOK, info)
}

// ==================== 用户列表 ====================

// ListUsers 用户列表
// @Summary 用户列表
// @Description 全量返回 USUARIO/NOME/COMISSAO/GRAU，按 NOME 升序；表很小，不分页
// @Tags Auth (认证模块)
// @Produce json
// @Success 200 {array} dto.UsuarioResumo
// @Failure 500 {object} map[string]string
// @Router /auth/users [get]
func (ctrl *AuthController) ListUsers(c *gin.Context) {
	users, err := ctrl.authService.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuários"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ==================== 权限 ====================

// UpdatePermissions 更新权限
// @Summary 更新用户权限
// @Description sistema_completo=true 时 GRAU=S，否则 V；六个开关按 S/N 入库。
// @Description 跟旧系统一样，这里不校验调用方自己的 GRAU（前端只是把入口藏了）
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param usuario path string true "用户名"
// @Param request body dto.PermissoesRequest true "权限载荷"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/users/{usuario}/permissions [put]
func (ctrl *AuthController) UpdatePermissions(c *gin.Context) {
	usuario := c.Param("usuario")

	var req dto.PermissoesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erro ao atualizar permissões"})
		return
	}

	if err := ctrl.authService.AtualizarPermissoes(c.Request.Context(), usuario, req.Permissoes); err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar permissões"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permissões atualizadas com sucesso"})
}

// ==================== 佣金 ====================

// UpdateComissao 更新佣金
// @Summary 更新用户佣金
// @Description 佣金是 [0,100] 的数字，边界含；不是数字直接 400
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param usuario path string true "用户名"
// @Param request body dto.ComissaoRequest true "comissao"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "类型/范围错误"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/users/{usuario}/comissao [put]
func (ctrl *AuthController) UpdateComissao(c *gin.Context) {
	usuario := c.Param("usuario")

	var req dto.ComissaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// body 不是合法 JSON 或 comissao 不是数字
		c.JSON(http.StatusBadRequest, gin.H{"error": "A comissão deve ser um número"})
		return
	}

	if err := ctrl.authService.AtualizarComissao(c.Request.Context(), usuario, req.Comissao); err != nil {
		switch {
		case errors.Is(err, service.ErrComissaoInvalida), errors.Is(err, service.ErrComissaoForaFaixa):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUsuarioNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar comissão"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comissão atualizada com sucesso"})
}

// ==================== 冻结 ====================

// UpdateBloqueio 冻结/解冻账号
// @Summary 冻结或解冻用户
// @Description 冻结后即使密码正确也无法登录
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param usuario path string true "用户名"
// @Param request body dto.BloqueioRequest true "bloqueado"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/users/{usuario}/bloqueio [put]
func (ctrl *AuthController) UpdateBloqueio(c *gin.Context) {
	usuario := c.Param("usuario")

	var req dto.BloqueioRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Bloqueado == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O campo bloqueado é obrigatório"})
		return
	}

	if err := ctrl.authService.AtualizarBloqueio(c.Request.Context(), usuario, *req.Bloqueado); err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar bloqueio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bloqueio atualizado com sucesso"})
}

// ==================== 错误映射 ====================

// responderErroRegistro 注册错误 -> 状态码
// 驱动返回的字段超长错误按旧服务的约定降级为 400，其余一律 500 的通用文案，
// 不把驱动内部信息透给客户端
func (ctrl *AuthController) responderErroRegistro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCamposObrigatorios),
		errors.Is(err, service.ErrSenhaCurta),
		errors.Is(err, service.ErrSenhaLonga),
		errors.Is(err, service.ErrUsuarioJaCadastrado):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isDadoMuitoLongo(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados fornecidos excedem o tamanho máximo permitido"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar usuário. Por favor, tente novamente."})
	}
}

// isDadoMuitoLongo 字段超长的驱动错误（postgres: value too long / mysql: Data too long）
func isDadoMuitoLongo(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "value too long") || strings.Contains(msg, "data too long")
}
