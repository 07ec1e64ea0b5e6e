package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

func seedChemical(t *testing.T, ctx context.Context) *model.Chemical {
	t.Helper()

	chem, err := service.NewChemicalService(ctx).Create(ctx, testUser, &types.ChemicalRequest{
		Name: "Agarose", Label: "A",
	})
	if err != nil {
		t.Fatalf("seed chemical: %v", err)
	}

	return chem
}

func TestBookmarkDuplicatesAllowed(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)
	chem := seedChemical(t, ctx)

	req := &types.BookmarkRequest{EntityType: model.EntityChemical, EntityID: chem.ID}

	// 重复收藏不去重，每次都是新行
	for i := 0; i < 3; i++ {
		if _, err := svc.Add(ctx, testUser, req); err != nil {
			t.Fatalf("add #%d: %v", i+1, err)
		}
	}

	if n := countRows(t, ctx, &model.Bookmark{}); n != 3 {
		t.Errorf("bookmark rows = %d, want 3", n)
	}

	// 移除一次清掉该用户对该实体的全部收藏行
	if err := svc.Remove(ctx, testUser, req); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if n := countRows(t, ctx, &model.Bookmark{}); n != 0 {
		t.Errorf("bookmark rows after remove = %d, want 0", n)
	}
}

func TestBookmarkRemoveScopedToUser(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)
	chem := seedChemical(t, ctx)

	req := &types.BookmarkRequest{EntityType: model.EntityChemical, EntityID: chem.ID}

	if _, err := svc.Add(ctx, testUser, req); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := svc.Add(ctx, "other@example.com", req); err != nil {
		t.Fatalf("add other: %v", err)
	}

	if err := svc.Remove(ctx, testUser, req); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if n := countRows(t, ctx, &model.Bookmark{}); n != 1 {
		t.Errorf("bookmark rows = %d, want 1 (other user's kept)", n)
	}
}

func TestBookmarkUnknownEntityType(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)

	_, err := svc.Add(ctx, testUser, &types.BookmarkRequest{EntityType: "spaceship", EntityID: 1})
	if !errors.Is(err, service.ErrUnknownEntityType) {
		t.Errorf("err = %v, want ErrUnknownEntityType", err)
	}
}

func TestBookmarkMissingEntityRejected(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)

	_, err := svc.Add(ctx, testUser, &types.BookmarkRequest{EntityType: model.EntityChemical, EntityID: 42})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBookmarkOverview(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)
	chem := seedChemical(t, ctx)

	primer, err := service.NewPrimerService(ctx).Create(ctx, testUser, &types.PrimerRequest{Sequence: "ATCG", Tm: 60})
	if err != nil {
		t.Fatalf("seed primer: %v", err)
	}

	for _, req := range []*types.BookmarkRequest{
		{EntityType: model.EntityChemical, EntityID: chem.ID},
		{EntityType: model.EntityPrimer, EntityID: primer.ID},
	} {
		if _, err := svc.Add(ctx, testUser, req); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	// 直接插一条已下线类型的收藏行，聚合时应静默跳过
	stale := &model.Bookmark{User: testUser, EntityType: "retired_widget", EntityID: 1}
	if err := testDB(t, ctx).Create(stale).Error; err != nil {
		t.Fatalf("seed stale bookmark: %v", err)
	}

	ov, err := svc.Overview(ctx, testUser)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(ov.Chemicals) != 1 || ov.Chemicals[0].Display != "A1 Agarose" {
		t.Errorf("chemicals bucket = %+v", ov.Chemicals)
	}

	if len(ov.Primers) != 1 || ov.Primers[0].Display != "ATCG" {
		t.Errorf("primers bucket = %+v", ov.Primers)
	}

	if len(ov.Strains) != 0 {
		t.Errorf("strains bucket = %+v, want empty", ov.Strains)
	}
}

func TestBookmarkOverviewSkipsDanglingTarget(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewBookmarkService(ctx)
	chem := seedChemical(t, ctx)

	if _, err := svc.Add(ctx, testUser, &types.BookmarkRequest{EntityType: model.EntityChemical, EntityID: chem.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// 绕过服务直接删掉目标实体，留下悬空收藏行
	if err := testDB(t, ctx).Delete(&model.Chemical{}, chem.ID).Error; err != nil {
		t.Fatalf("delete chemical: %v", err)
	}

	ov, err := svc.Overview(ctx, testUser)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(ov.Chemicals) != 0 {
		t.Errorf("chemicals bucket = %+v, want empty", ov.Chemicals)
	}
}
