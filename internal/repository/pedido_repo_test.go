package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"emporio_dash_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

func setupRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Pedido{}, &model.MetricSnapshot{}); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

// ==================== 订单仓库 ====================

func TestPedidoRepositoryListRecentes(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewPedidoRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		err := repo.Create(ctx, &model.Pedido{
			Cliente: fmt.Sprintf("Cliente %d", i),
			Emissao: base.AddDate(0, 0, i),
			Status:  model.StatusBrutoPendente,
			Valor:   10,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// limit 生效
	pedidos, err := repo.ListRecentes(ctx, 50)
	if err != nil {
		t.Fatalf("ListRecentes: %v", err)
	}
	if len(pedidos) != 50 {
		t.Fatalf("len = %d, want 50", len(pedidos))
	}

	// emissao 倒序：第一条是最新的
	if pedidos[0].Cliente != "Cliente 59" {
		t.Errorf("primeiro = %q, want Cliente 59", pedidos[0].Cliente)
	}
	for i := 1; i < len(pedidos); i++ {
		if pedidos[i].Emissao.After(pedidos[i-1].Emissao) {
			t.Fatalf("ordem quebrada na posicao %d", i)
		}
	}

	// limit <= 0 cai no padrao de 50
	pedidos, err = repo.ListRecentes(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecentes(0): %v", err)
	}
	if len(pedidos) != 50 {
		t.Errorf("limit padrao: len = %d", len(pedidos))
	}
}

func TestPedidoRepositoryListPorPeriodo(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewPedidoRepository(db)
	ctx := context.Background()

	dia := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	repo.Create(ctx, &model.Pedido{Cliente: "antes", Emissao: dia.Add(-time.Second)})
	repo.Create(ctx, &model.Pedido{Cliente: "inicio", Emissao: dia})
	repo.Create(ctx, &model.Pedido{Cliente: "meio", Emissao: dia.Add(12 * time.Hour)})
	repo.Create(ctx, &model.Pedido{Cliente: "fim", Emissao: dia.AddDate(0, 0, 1)})

	// [inicio, fim): a borda superior fica fora
	pedidos, err := repo.ListPorPeriodo(ctx, dia, dia.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListPorPeriodo: %v", err)
	}
	if len(pedidos) != 2 {
		t.Fatalf("len = %d, want 2", len(pedidos))
	}
}

// ==================== 快照仓库 ====================

func TestSnapshotRepositoryUpsertIdempotente(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	dia := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	err := repo.Upsert(ctx, &model.MetricSnapshot{
		Dia: dia, Faturados: 2, Pendentes: 1, Perdidos: 0, Faturamento: 300,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// 同一天再跑：覆盖计数，不能新增行
	err = repo.Upsert(ctx, &model.MetricSnapshot{
		Dia: dia, Faturados: 5, Pendentes: 2, Perdidos: 1, Faturamento: 750,
	})
	if err != nil {
		t.Fatalf("Upsert 2x: %v", err)
	}

	var count int64
	db.Model(&model.MetricSnapshot{}).Count(&count)
	if count != 1 {
		t.Fatalf("linhas = %d, want 1", count)
	}

	var snap model.MetricSnapshot
	db.Where("dia = ?", dia).First(&snap)
	if snap.Faturados != 5 || snap.Faturamento != 750 {
		t.Errorf("snapshot nao foi sobrescrito: %+v", snap)
	}
}

func TestSnapshotRepositoryListUltimos(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		repo.Upsert(ctx, &model.MetricSnapshot{Dia: base.AddDate(0, 0, i), Faturados: i})
	}

	snaps, err := repo.ListUltimos(ctx, 7)
	if err != nil {
		t.Fatalf("ListUltimos: %v", err)
	}
	if len(snaps) != 7 {
		t.Fatalf("len = %d, want 7", len(snaps))
	}

	// 最近 7 天，按日期升序返回
	if snaps[0].Faturados != 3 || snaps[6].Faturados != 9 {
		t.Errorf("janela errada: primeiro=%d ultimo=%d", snaps[0].Faturados, snaps[6].Faturados)
	}
	for i := 1; i < len(snaps); i++ {
		if !snaps[i].Dia.After(snaps[i-1].Dia) {
			t.Fatalf("ordem nao ascendente na posicao %d", i)
		}
	}
}
