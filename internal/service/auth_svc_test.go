package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"emporio_dash_v1_202608/internal/api/dto"
	"emporio_dash_v1_202608/internal/model"
	"emporio_dash_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Usuario{}, &model.AcessoLog{}); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(
		repository.NewUsuarioRepository(db),
		repository.NewAcessoLogRepository(db),
	)
	return svc, db
}

// ==================== 注册 ====================

func TestAuthService_RegistrarELogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	info, err := svc.Registrar(ctx, "carlos", "senha123")
	if err != nil {
		t.Fatalf("Registrar: %v", err)
	}

	// 新账号的默认值
	if info.Grau != model.GrauUsuario {
		t.Errorf("GRAU = %q, want %q", info.Grau, model.GrauUsuario)
	}
	if info.Nome != "carlos" {
		t.Errorf("NOME = %q, want usuario", info.Nome)
	}
	if info.Lojas != model.FlagNao || info.Armazen != model.FlagNao {
		t.Errorf("权限开关默认应为 N, got lojas=%q armazen=%q", info.Lojas, info.Armazen)
	}
	if info.Comissao != 0 {
		t.Errorf("COMISSAO = %v, want 0", info.Comissao)
	}

	// 响应序列化后不能出现密码字段
	raw, _ := json.Marshal(info)
	if strings.Contains(strings.ToUpper(string(raw)), "SENHA") {
		t.Errorf("响应里泄漏了密码字段: %s", raw)
	}

	// 同一组凭证能登录
	logged, err := svc.Login(ctx, "carlos", "senha123", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.Usuario != "carlos" {
		t.Errorf("USUARIO = %q", logged.Usuario)
	}
}

func TestAuthService_SenhaLimites(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	// 5 位太短，21 位太长；6 和 20 是含边界
	if _, err := svc.Registrar(ctx, "u5", "12345"); !errors.Is(err, ErrSenhaCurta) {
		t.Errorf("senha len 5: err = %v, want ErrSenhaCurta", err)
	}
	if _, err := svc.Registrar(ctx, "u21", strings.Repeat("x", 21)); !errors.Is(err, ErrSenhaLonga) {
		t.Errorf("senha len 21: err = %v, want ErrSenhaLonga", err)
	}
	if _, err := svc.Registrar(ctx, "u6", "123456"); err != nil {
		t.Errorf("senha len 6: %v", err)
	}
	if _, err := svc.Registrar(ctx, "u20", strings.Repeat("x", 20)); err != nil {
		t.Errorf("senha len 20: %v", err)
	}
}

func TestAuthService_SenhaComAcentos(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	// 长度按字符数：5 个重音字符 (10 字节) 还是太短
	if _, err := svc.Registrar(ctx, "acentos5", "çãõáé"); !errors.Is(err, ErrSenhaCurta) {
		t.Errorf("senha de 5 caracteres acentuados: err = %v, want ErrSenhaCurta", err)
	}

	// 12 个字符 (24 字节) 在 [6,20] 之内，必须通过
	if _, err := svc.Registrar(ctx, "acentos12", strings.Repeat("ã", 12)); err != nil {
		t.Errorf("senha de 12 caracteres acentuados: %v", err)
	}

	// 20 个字符 (40 字节) 是含边界；21 个字符才超长
	if _, err := svc.Registrar(ctx, "acentos20", strings.Repeat("é", 20)); err != nil {
		t.Errorf("senha de 20 caracteres acentuados: %v", err)
	}
	if _, err := svc.Registrar(ctx, "acentos21", strings.Repeat("é", 21)); !errors.Is(err, ErrSenhaLonga) {
		t.Errorf("senha de 21 caracteres acentuados: err = %v, want ErrSenhaLonga", err)
	}

	// 重音密码要能登录回来
	if _, err := svc.Login(ctx, "acentos12", strings.Repeat("ã", 12), ""); err != nil {
		t.Errorf("login com senha acentuada: %v", err)
	}
}

func TestAuthService_CamposObrigatorios(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "", "senha123"); !errors.Is(err, ErrCamposObrigatorios) {
		t.Errorf("usuario vazio: err = %v", err)
	}
	if _, err := svc.Login(ctx, "alguem", "", ""); !errors.Is(err, ErrCamposObrigatorios) {
		t.Errorf("senha vazia no login: err = %v", err)
	}
}

func TestAuthService_RegistroDuplicado(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "dupe", "senha123"); err != nil {
		t.Fatalf("primeiro registro: %v", err)
	}
	// 密码不同也一样拒绝
	if _, err := svc.Registrar(ctx, "dupe", "outrasenha"); !errors.Is(err, ErrUsuarioJaCadastrado) {
		t.Errorf("registro duplicado: err = %v, want ErrUsuarioJaCadastrado", err)
	}
}

// ==================== 登录 ====================

func TestAuthService_LoginErrosIndistinguiveis(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "ana", "senha123"); err != nil {
		t.Fatalf("Registrar: %v", err)
	}

	// 用户不存在 vs 密码错误：必须是同一个错误
	_, errInexistente := svc.Login(ctx, "naoexiste", "qualquer1", "")
	_, errSenhaErrada := svc.Login(ctx, "ana", "senhaerrada", "")

	if !errors.Is(errInexistente, ErrCredenciaisInvalidas) {
		t.Errorf("usuario inexistente: err = %v", errInexistente)
	}
	if !errors.Is(errSenhaErrada, ErrCredenciaisInvalidas) {
		t.Errorf("senha errada: err = %v", errSenhaErrada)
	}
	if errInexistente.Error() != errSenhaErrada.Error() {
		t.Errorf("mensagens divergem: %q vs %q", errInexistente, errSenhaErrada)
	}
}

func TestAuthService_LoginBloqueado(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "preso", "senha123"); err != nil {
		t.Fatalf("Registrar: %v", err)
	}
	if err := svc.AtualizarBloqueio(ctx, "preso", true); err != nil {
		t.Fatalf("AtualizarBloqueio: %v", err)
	}

	// 密码正确也要被拒
	if _, err := svc.Login(ctx, "preso", "senha123", ""); !errors.Is(err, ErrUsuarioBloqueado) {
		t.Errorf("login bloqueado: err = %v, want ErrUsuarioBloqueado", err)
	}

	// 审计里要有 bloqueado 的记录
	var count int64
	db.Model(&model.AcessoLog{}).Where("motivo = ?", model.MotivoBloqueado).Count(&count)
	if count != 1 {
		t.Errorf("acesso_logs bloqueado = %d, want 1", count)
	}

	// 解冻后恢复正常
	if err := svc.AtualizarBloqueio(ctx, "preso", false); err != nil {
		t.Fatalf("desbloquear: %v", err)
	}
	if _, err := svc.Login(ctx, "preso", "senha123", ""); err != nil {
		t.Errorf("login apos desbloqueio: %v", err)
	}
}

// ==================== 佣金 ====================

func TestAuthService_AtualizarComissao(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "vendedor", "senha123"); err != nil {
		t.Fatalf("Registrar: %v", err)
	}

	f := func(v float64) *float64 { return &v }

	// 范围外拒绝
	if err := svc.AtualizarComissao(ctx, "vendedor", f(-0.01)); !errors.Is(err, ErrComissaoForaFaixa) {
		t.Errorf("comissao -0.01: err = %v", err)
	}
	if err := svc.AtualizarComissao(ctx, "vendedor", f(100.01)); !errors.Is(err, ErrComissaoForaFaixa) {
		t.Errorf("comissao 100.01: err = %v", err)
	}
	// 不是数字（body 里缺失/类型错）
	if err := svc.AtualizarComissao(ctx, "vendedor", nil); !errors.Is(err, ErrComissaoInvalida) {
		t.Errorf("comissao nil: err = %v", err)
	}

	// 边界值接受
	if err := svc.AtualizarComissao(ctx, "vendedor", f(0)); err != nil {
		t.Errorf("comissao 0: %v", err)
	}
	if err := svc.AtualizarComissao(ctx, "vendedor", f(100)); err != nil {
		t.Errorf("comissao 100: %v", err)
	}

	var u model.Usuario
	db.Where("USUARIO = ?", "vendedor").First(&u)
	if u.Comissao != 100 {
		t.Errorf("COMISSAO persistida = %v, want 100", u.Comissao)
	}

	// 用户不存在
	if err := svc.AtualizarComissao(ctx, "fantasma", f(10)); !errors.Is(err, ErrUsuarioNaoEncontrado) {
		t.Errorf("usuario inexistente: err = %v", err)
	}
}

// ==================== 权限 ====================

func TestAuthService_AtualizarPermissoes(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Registrar(ctx, "gestor", "senha123"); err != nil {
		t.Fatalf("Registrar: %v", err)
	}

	// sistema_completo=true -> GRAU S
	err := svc.AtualizarPermissoes(ctx, "gestor", permissoesTest(true, true))
	if err != nil {
		t.Fatalf("AtualizarPermissoes: %v", err)
	}

	var u model.Usuario
	db.Where("USUARIO = ?", "gestor").First(&u)
	if u.Grau != model.GrauCompleto {
		t.Errorf("GRAU = %q, want S", u.Grau)
	}
	if u.Lojas != model.FlagSim || u.Bancos != model.FlagSim {
		t.Errorf("flags nao persistidas: lojas=%q bancos=%q", u.Lojas, u.Bancos)
	}

	// sistema_completo=false -> GRAU V
	if err := svc.AtualizarPermissoes(ctx, "gestor", permissoesTest(false, false)); err != nil {
		t.Fatalf("AtualizarPermissoes: %v", err)
	}
	db.Where("USUARIO = ?", "gestor").First(&u)
	if u.Grau != model.GrauVisual {
		t.Errorf("GRAU = %q, want V", u.Grau)
	}
	if u.Lojas != model.FlagNao {
		t.Errorf("LOJAS = %q, want N", u.Lojas)
	}

	// 用户不存在
	err = svc.AtualizarPermissoes(ctx, "fantasma", permissoesTest(true, false))
	if !errors.Is(err, ErrUsuarioNaoEncontrado) {
		t.Errorf("usuario inexistente: err = %v", err)
	}
}

// ==================== 用户列表 ====================

func TestAuthService_ListarUsuarios(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	for _, nome := range []string{"carla", "bruno", "ana"} {
		if _, err := svc.Registrar(ctx, nome, "senha123"); err != nil {
			t.Fatalf("Registrar %s: %v", nome, err)
		}
	}
	// NOME 为空的行要回退到 USUARIO；空串在 NOME 升序里排最前
	db.Model(&model.Usuario{}).Where("USUARIO = ?", "bruno").Update("NOME", "")

	users, err := svc.ListarUsuarios(ctx)
	if err != nil {
		t.Fatalf("ListarUsuarios: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3", len(users))
	}

	// 按 NOME 升序："" < "ana" < "carla"
	if users[0].Usuario != "bruno" || users[1].Usuario != "ana" || users[2].Usuario != "carla" {
		t.Errorf("ordem errada: %v %v %v", users[0].Usuario, users[1].Usuario, users[2].Usuario)
	}
	if users[0].Nome != "bruno" {
		t.Errorf("NOME vazio deveria cair no USUARIO, got %q", users[0].Nome)
	}
}

// permissoesTest 方便拼载荷
func permissoesTest(sistemaCompleto, flags bool) dto.Permissoes {
	return dto.Permissoes{
		SistemaCompleto: sistemaCompleto,
		Lojas:           flags,
		Modulo:          flags,
		Bancos:          flags,
		Limicp:          flags,
		Ccusto:          flags,
		Armazen:         flags,
	}
}
