package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"emporio_dash_v1_202608/internal/api/dto"
	"emporio_dash_v1_202608/internal/model"
	"emporio_dash_v1_202608/internal/repository"
)

// 业务常量
const (
	// BcryptCost 沿用旧服务的 cost 10
	BcryptCost = 10

	SenhaMin = 6
	SenhaMax = 20
)

// ==================== AuthService ====================

// AuthService 注册/登录/用户管理
// 无状态，每个请求就是几次顺序的仓库读写
type AuthService struct {
	UserRepo repository.UsuarioRepository
	LogRepo  repository.AcessoLogRepository
}

// NewAuthService 工厂方法
func NewAuthService(userRepo repository.UsuarioRepository, logRepo repository.AcessoLogRepository) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		LogRepo:  logRepo,
	}
}

// ==================== 注册 ====================

// Registrar 创建新账号并返回公开记录
// 先查重给出友好错误；真正的保证是 USUARIO 的唯一索引，
// 并发注册撞上约束时同样映射成「已注册」
func (s *AuthService) Registrar(ctx context.Context, usuario, senha string) (*dto.UsuarioInfo, error) {
	// 1. 校验
	if usuario == "" || senha == "" {
		return nil, ErrCamposObrigatorios
	}
	// 长度按字符数算，不是字节数，葡语密码常带重音
	if tam := utf8.RuneCountInString(senha); tam < SenhaMin {
		return nil, ErrSenhaCurta
	} else if tam > SenhaMax {
		return nil, ErrSenhaLonga
	}

	// 2. 查重（快路径，留着窄竞态窗口）
	exists, err := s.UserRepo.ExistsByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsuarioJaCadastrado
	}

	// 3. 哈希入库，默认 GRAU=U、开关全 N、佣金 0
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), BcryptCost)
	if err != nil {
		return nil, err
	}

	novo := &model.Usuario{
		Usuario: usuario,
		Senha:   string(hash),
		Nome:    usuario, // 没有单独的姓名就用用户名
		Grau:    model.GrauUsuario,
		Lojas:   model.FlagNao,
		Modulo:  model.FlagNao,
		Bancos:  model.FlagNao,
		Limicp:  model.FlagNao,
		Ccusto:  model.FlagNao,
		Armazen: model.FlagNao,
	}
	if err := s.UserRepo.Create(ctx, novo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsuarioJaCadastrado
		}
		return nil, err
	}

	info := perfilPublico(novo)
	return &info, nil
}

// ==================== 登录 ====================

// Login 校验凭证，成功返回完整的公开记录
// 用户不存在和密码错误必须返回同一个错误
func (s *AuthService) Login(ctx context.Context, usuario, senha, ip string) (*dto.UsuarioInfo, error) {
	if usuario == "" || senha == "" {
		s.registrarAcesso(ctx, usuario, ip, false, model.MotivoCamposFaltando)
		return nil, ErrCamposObrigatorios
	}

	u, err := s.UserRepo.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.registrarAcesso(ctx, usuario, ip, false, model.MotivoCredenciaisInvalidas)
		return nil, ErrCredenciaisInvalidas
	}

	// 冻结账号直接拒绝，密码对不对都一样
	if u.Bloqueado {
		s.registrarAcesso(ctx, usuario, ip, false, model.MotivoBloqueado)
		return nil, ErrUsuarioBloqueado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(senha)); err != nil {
		s.registrarAcesso(ctx, usuario, ip, false, model.MotivoCredenciaisInvalidas)
		return nil, ErrCredenciaisInvalidas
	}

	s.registrarAcesso(ctx, usuario, ip, true, model.MotivoOK)

	info := perfilPublico(u)
	return &info, nil
}

// ==================== 用户管理 ====================

// ListarUsuarios 全量用户列表（按 NOME 升序，仓库层排好）
func (s *AuthService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResumo, error) {
	users, err := s.UserRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resumo := make([]dto.UsuarioResumo, 0, len(users))
	for _, u := range users {
		resumo = append(resumo, dto.UsuarioResumo{
			Usuario:  u.Usuario,
			Nome:     nomeOuUsuario(&u),
			Comissao: u.Comissao,
			Grau:     grauOuPadrao(&u),
		})
	}
	return resumo, nil
}

// AtualizarPermissoes 重算 GRAU 并持久化六个开关
// sistema_completo=true -> S，否则 V
// 注意：旧系统在这里不校验调用方自己的权限，服务端行为保持一致（已知缺口）
func (s *AuthService) AtualizarPermissoes(ctx context.Context, usuario string, p dto.Permissoes) error {
	grau := model.GrauVisual
	if p.SistemaCompleto {
		grau = model.GrauCompleto
	}

	flags := model.PermissoesFlags{
		Lojas:   p.Lojas,
		Modulo:  p.Modulo,
		Bancos:  p.Bancos,
		Limicp:  p.Limicp,
		Ccusto:  p.Ccusto,
		Armazen: p.Armazen,
	}

	ok, err := s.UserRepo.UpdatePermissoes(ctx, usuario, grau, flags)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}

// AtualizarComissao 佣金必须在 [0,100]，边界含
func (s *AuthService) AtualizarComissao(ctx context.Context, usuario string, comissao *float64) error {
	if comissao == nil {
		return ErrComissaoInvalida
	}
	if *comissao < 0 || *comissao > 100 {
		return ErrComissaoForaFaixa
	}

	ok, err := s.UserRepo.UpdateComissao(ctx, usuario, *comissao)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}

// AtualizarBloqueio 冻结/解冻账号
func (s *AuthService) AtualizarBloqueio(ctx context.Context, usuario string, bloqueado bool) error {
	ok, err := s.UserRepo.UpdateBloqueado(ctx, usuario, bloqueado)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}

// ==================== 辅助 ====================

// perfilPublico 行 -> 对外记录，缺省字段全部补齐，哈希剥离
func perfilPublico(u *model.Usuario) dto.UsuarioInfo {
	flag := func(v string) string {
		if v == "" {
			return model.FlagNao
		}
		return v
	}
	return dto.UsuarioInfo{
		Usuario:  u.Usuario,
		Nome:     nomeOuUsuario(u),
		Grau:     grauOuPadrao(u),
		Lojas:    flag(u.Lojas),
		Modulo:   flag(u.Modulo),
		Bancos:   flag(u.Bancos),
		Limicp:   flag(u.Limicp),
		Ccusto:   flag(u.Ccusto),
		Armazen:  flag(u.Armazen),
		Comissao: u.Comissao,
	}
}

func nomeOuUsuario(u *model.Usuario) string {
	if u.Nome == "" {
		return u.Usuario
	}
	return u.Nome
}

func grauOuPadrao(u *model.Usuario) string {
	if u.Grau == "" {
		return model.GrauUsuario
	}
	return u.Grau
}

// registrarAcesso 写登录审计，失败只打日志，不影响主流程
func (s *AuthService) registrarAcesso(ctx context.Context, usuario, ip string, sucesso bool, motivo string) {
	if s.LogRepo == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{"usuario": usuario, "ip": ip})
	entry := &model.AcessoLog{
		Usuario: usuario,
		Sucesso: sucesso,
		Motivo:  motivo,
		IP:      ip,
		Payload: payload,
	}
	if err := s.LogRepo.Create(ctx, entry); err != nil {
		log.Printf("[Auth] falha ao gravar acesso_log: %v", err)
	}
}
