package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"emporio_dash_v1_202608/pkg/dashboard"
)

// ==================== 类型 ====================

// Usuario 服务端返回的公开用户记录
// 字段名沿用旧前端（localStorage 里就是这个形状），没有 SENHA
type Usuario struct {
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

// UsuarioResumo 用户管理列表行
type UsuarioResumo struct {
	Usuario  string  `json:"USUARIO"`
	Nome     string  `json:"NOME"`
	Comissao float64 `json:"COMISSAO"`
	Grau     string  `json:"GRAU"`
}

// Permissoes 权限载荷
type Permissoes struct {
	SistemaCompleto bool `json:"sistema_completo"`
	Lojas           bool `json:"lojas"`
	Modulo          bool `json:"modulo"`
	Bancos          bool `json:"bancos"`
	Limicp          bool `json:"limicp"`
	Ccusto          bool `json:"ccusto"`
	Armazen         bool `json:"armazen"`
}

// pedidoRow /api/auth/pedidos 的一行
type pedidoRow struct {
	Numero  int64     `json:"numero"`
	Cliente string    `json:"cliente"`
	Emissao time.Time `json:"emissao"`
	Status  string    `json:"status"`
	Valor   float64   `json:"valor"`
}

// APIError 服务端的 {"error": "..."} 响应
type APIError struct {
	Status   int
	Mensagem string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	return fmt.Sprintf("erro HTTP %d", e.Status)
}

// ==================== Client ====================

// Client 仪表盘 API 客户端
// 登录/注册成功后自动写入会话缓存；失败的变更不会碰缓存
type Client struct {
	http   *resty.Client
	Sessao *Sessao
}

// New 创建客户端
// 超时和重试是防御性的，服务端没有约定重试语义，所以只重试网络层错误
func New(baseURL string, sessao *Sessao) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http, Sessao: sessao}
}

// ==================== 认证 ====================

// Login 登录，成功后把记录写进会话缓存
func (c *Client) Login(ctx context.Context, usuario, senha string) (*Usuario, error) {
	var u Usuario
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"usuario": usuario, "senha": senha}).
		SetResult(&u).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, erroDaResposta(resp)
	}

	if c.Sessao != nil {
		if err := c.Sessao.Entrar(&u); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

// Registrar 注册，服务端返回 201 时同样建立会话
func (c *Client) Registrar(ctx context.Context, usuario, senha string) (*Usuario, error) {
	var u Usuario
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"usuario": usuario, "senha": senha}).
		SetResult(&u).
		Post("/api/auth/register")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, erroDaResposta(resp)
	}

	if c.Sessao != nil {
		if err := c.Sessao.Entrar(&u); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

// Logout 纯本地登出，服务端无会话可注销
func (c *Client) Logout() error {
	if c.Sessao == nil {
		return nil
	}
	return c.Sessao.Sair()
}

// ==================== 用户管理 ====================

// ListarUsuarios 用户列表
func (c *Client) ListarUsuarios(ctx context.Context) ([]UsuarioResumo, error) {
	var users []UsuarioResumo
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/api/auth/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, erroDaResposta(resp)
	}
	return users, nil
}

// AtualizarPermissoes 更新某个用户的权限
func (c *Client) AtualizarPermissoes(ctx context.Context, usuario string, p Permissoes) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]Permissoes{"permissoes": p}).
		Put("/api/auth/users/" + usuario + "/permissions")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return erroDaResposta(resp)
	}
	return nil
}

// AtualizarComissao 更新某个用户的佣金
func (c *Client) AtualizarComissao(ctx context.Context, usuario string, comissao float64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]float64{"comissao": comissao}).
		Put("/api/auth/users/" + usuario + "/comissao")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return erroDaResposta(resp)
	}
	return nil
}

// ==================== 订单 ====================

// ListarPedidos 拉取最近订单并映射成仪表盘订单
// 实现 dashboard.FontePedidos，聚合代码不关心数据从哪来
func (c *Client) ListarPedidos(ctx context.Context) ([]dashboard.Pedido, error) {
	var rows []pedidoRow
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&rows).
		Get("/api/auth/pedidos")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, erroDaResposta(resp)
	}

	pedidos := make([]dashboard.Pedido, 0, len(rows))
	for _, r := range rows {
		pedidos = append(pedidos, dashboard.Pedido{
			ID:      fmt.Sprintf("%d", r.Numero),
			Cliente: r.Cliente,
			Data:    r.Emissao,
			Status:  dashboard.MapearStatusBruto(r.Status),
			Total:   r.Valor,
			Itens:   1, // cabpdv 没有件数信息，跟旧前端一样给 1
		})
	}
	return pedidos, nil
}

// ==================== 辅助 ====================

func erroDaResposta(resp *resty.Response) error {
	apiErr := &APIError{Status: resp.StatusCode()}
	// body 解析失败就只带状态码
	_ = json.Unmarshal(resp.Body(), apiErr)
	return apiErr
}
