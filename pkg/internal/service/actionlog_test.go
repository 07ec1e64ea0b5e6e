package service_test

import (
	"testing"
	"time"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

func TestActionLogListFilters(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewActionLogService(ctx)

	chems := service.NewChemicalService(ctx)

	chem, err := chems.Create(ctx, testUser, &types.ChemicalRequest{Name: "Ethanol", Label: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := chems.Update(ctx, testUser, chem.ID, &types.ChemicalRequest{Name: "Ethanol 95%", Label: "A"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := service.NewPrimerService(ctx).Create(ctx, "other@example.com", &types.PrimerRequest{Sequence: "ATCG", Tm: 60}); err != nil {
		t.Fatalf("primer: %v", err)
	}

	res, err := svc.List(ctx, &types.ActionLogQuery{EntityType: model.EntityChemical, EntityID: chem.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if res.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Total)
	}

	// 新的在前
	if res.Items[0].Action != model.ActionUpdate || res.Items[1].Action != model.ActionCreate {
		t.Errorf("order = %s, %s", res.Items[0].Action, res.Items[1].Action)
	}

	byUser, err := svc.List(ctx, &types.ActionLogQuery{User: "other@example.com"})
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}

	if byUser.Total != 1 || byUser.Items[0].EntityType != model.EntityPrimer {
		t.Errorf("by user = %+v", byUser.Items)
	}
}

func TestActionLogPrune(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewActionLogService(ctx)
	db := testDB(t, ctx)

	old := &model.ActionLog{
		User: testUser, Action: model.ActionCreate,
		EntityType: model.EntityChemical, EntityID: 1,
		CreatedAt: time.Now().AddDate(0, 0, -120),
	}
	recent := &model.ActionLog{
		User: testUser, Action: model.ActionUpdate,
		EntityType: model.EntityChemical, EntityID: 1,
		CreatedAt: time.Now().AddDate(0, 0, -3),
	}

	for _, entry := range []*model.ActionLog{old, recent} {
		if err := db.Create(entry).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	pruned, err := svc.Prune(ctx, 90)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}

	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}

	if n := countRows(t, ctx, &model.ActionLog{}); n != 1 {
		t.Errorf("rows left = %d, want 1", n)
	}
}

func TestActionLogPruneDisabled(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewActionLogService(ctx)

	entry := &model.ActionLog{
		User: testUser, Action: model.ActionCreate,
		EntityType: model.EntityChemical, EntityID: 1,
		CreatedAt: time.Now().AddDate(0, 0, -400),
	}
	if err := testDB(t, ctx).Create(entry).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// 保留期不为正时什么都不删
	pruned, err := svc.Prune(ctx, 0)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}

	if pruned != 0 {
		t.Errorf("pruned = %d, want 0", pruned)
	}

	if n := countRows(t, ctx, &model.ActionLog{}); n != 1 {
		t.Errorf("rows left = %d, want 1", n)
	}
}
