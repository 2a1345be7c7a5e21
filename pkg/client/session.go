package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// ==================== 会话状态机 ====================

// Estado 会话状态
// Desconhecido -> Autenticado | Anonimo；中途不会回到 Desconhecido。
// 还在 Desconhecido 时界面既不渲染登录后的内容也不跳登录页，避免闪屏
type Estado int

const (
	EstadoDesconhecido Estado = iota
	EstadoAnonimo
	EstadoAutenticado
)

// ArquivoSessao 固定的持久化文件名，localStorage 那个 'user' key 的等价物
const ArquivoSessao = "user.json"

// ==================== Sessao ====================

// Sessao 客户端会话缓存
// 保存最近一次登录/注册的响应；没有过期时间，登出是纯本地操作
type Sessao struct {
	mu      sync.Mutex
	caminho string
	estado  Estado
	usuario *Usuario
}

// NewSessao dir 是存放会话文件的目录
func NewSessao(dir string) *Sessao {
	return &Sessao{
		caminho: filepath.Join(dir, ArquivoSessao),
		estado:  EstadoDesconhecido,
	}
}

// Carregar 启动时读一次持久化文件，尽力而为：
// 文件不存在或解析不了都当作无会话，坏文件顺手删掉，绝不向上抛错误
func (s *Sessao) Carregar() Estado {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.caminho)
	if err != nil {
		s.estado = EstadoAnonimo
		return s.estado
	}

	var u Usuario
	if err := json.Unmarshal(data, &u); err != nil || u.Usuario == "" {
		// 数据损坏：清掉，按匿名处理
		_ = os.Remove(s.caminho)
		s.estado = EstadoAnonimo
		return s.estado
	}

	s.usuario = &u
	s.estado = EstadoAutenticado
	return s.estado
}

// Entrar 登录/注册成功后写入缓存并持久化
func (s *Sessao) Entrar(u *Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.caminho), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.caminho, data, 0o600); err != nil {
		return err
	}

	// 存副本，调用方之后改自己的结构体不影响缓存
	copia := *u
	s.usuario = &copia
	s.estado = EstadoAutenticado
	return nil
}

// Sair 显式登出：清内存、删文件
func (s *Sessao) Sair() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.usuario = nil
	s.estado = EstadoAnonimo

	err := os.Remove(s.caminho)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Atual 当前状态和用户（匿名/未知时用户为 nil）
// 返回的是副本，改它不影响缓存里的记录
func (s *Sessao) Atual() (Estado, *Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usuario == nil {
		return s.estado, nil
	}
	copia := *s.usuario
	return s.estado, &copia
}
