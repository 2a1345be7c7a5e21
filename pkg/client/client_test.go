package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"emporio_dash_v1_202608/pkg/dashboard"
)

// ==================== 测试服务器 ====================

func newFakeAPI(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")
		if req["usuario"] == "carlos" && req["senha"] == "senha123" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"USUARIO": "carlos", "NOME": "Carlos", "GRAU": "S",
				"LOJAS": "S", "MODULO": "N", "BANCOS": "N",
				"LIMICP": "N", "CCUSTO": "N", "ARMAZEN": "N",
				"COMISSAO": 2.5,
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Usuário ou senha inválidos"})
	})

	mux.HandleFunc("/api/auth/pedidos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"numero": 1, "cliente": "Loja A", "emissao": time.Now().Format(time.RFC3339), "status": "L", "valor": 150.0},
			{"numero": 2, "cliente": "Loja B", "emissao": time.Now().Format(time.RFC3339), "status": "B", "valor": 80.0},
			{"numero": 3, "cliente": "Loja C", "emissao": time.Now().Format(time.RFC3339), "status": "R", "valor": 40.0},
		})
	})

	mux.HandleFunc("/api/auth/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"USUARIO": "ana", "NOME": "Ana", "COMISSAO": 1.0, "GRAU": "U"},
			{"USUARIO": "carlos", "NOME": "Carlos", "COMISSAO": 2.5, "GRAU": "S"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ==================== 登录 ====================

func TestClientLoginGravaSessao(t *testing.T) {
	srv := newFakeAPI(t)
	dir := t.TempDir()

	c := New(srv.URL, NewSessao(dir))
	u, err := c.Login(context.Background(), "carlos", "senha123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Grau != "S" || u.Comissao != 2.5 {
		t.Errorf("usuario = %+v", u)
	}

	// 会话文件要落盘
	if _, err := os.Stat(filepath.Join(dir, ArquivoSessao)); err != nil {
		t.Errorf("arquivo de sessao nao foi gravado: %v", err)
	}
	estado, atual := c.Sessao.Atual()
	if estado != EstadoAutenticado || atual.Usuario != "carlos" {
		t.Errorf("sessao: estado=%v usuario=%+v", estado, atual)
	}

	// 登录成功的记录过权限门
	if !AcessoCompleto(atual) {
		t.Errorf("GRAU=S deveria passar no gate")
	}
}

func TestClientLoginInvalido(t *testing.T) {
	srv := newFakeAPI(t)
	dir := t.TempDir()

	c := New(srv.URL, NewSessao(dir))
	_, err := c.Login(context.Background(), "carlos", "senhaerrada")
	if err == nil {
		t.Fatal("login invalido deveria falhar")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Error() != "Usuário ou senha inválidos" {
		t.Errorf("mensagem = %q", apiErr.Error())
	}

	// 登录失败不能建立会话
	if _, err := os.Stat(filepath.Join(dir, ArquivoSessao)); !os.IsNotExist(err) {
		t.Errorf("login falho nao pode gravar sessao")
	}
}

// ==================== 订单数据源 ====================

func TestClientListarPedidos(t *testing.T) {
	srv := newFakeAPI(t)
	c := New(srv.URL, nil)

	// Client 要能当 dashboard.FontePedidos 用
	var fonte dashboard.FontePedidos = c

	pedidos, err := fonte.ListarPedidos(context.Background())
	if err != nil {
		t.Fatalf("ListarPedidos: %v", err)
	}
	if len(pedidos) != 3 {
		t.Fatalf("len = %d", len(pedidos))
	}

	// L/B/R -> faturado/pendente/perdido
	if pedidos[0].Status != dashboard.StatusFaturado ||
		pedidos[1].Status != dashboard.StatusPendente ||
		pedidos[2].Status != dashboard.StatusPerdido {
		t.Errorf("mapeamento de status: %v %v %v", pedidos[0].Status, pedidos[1].Status, pedidos[2].Status)
	}

	r := dashboard.CalcularResumo(pedidos)
	if r.PedidosFaturados != 1 || r.FaturamentoTotal != 150 {
		t.Errorf("resumo = %+v", r)
	}
}

// ==================== 用户列表 ====================

func TestClientListarUsuarios(t *testing.T) {
	srv := newFakeAPI(t)
	c := New(srv.URL, nil)

	users, err := c.ListarUsuarios(context.Background())
	if err != nil {
		t.Fatalf("ListarUsuarios: %v", err)
	}
	if len(users) != 2 || users[0].Usuario != "ana" {
		t.Errorf("users = %+v", users)
	}
}
