package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

func newStrainService(ctx context.Context) *service.CatalogService[model.Strain] {
	return service.NewCatalogService[model.Strain](ctx, model.EntityStrain, []string{"name", "species"}, "name")
}

func TestCatalogCRUD(t *testing.T) {
	ctx := newTestContext(t)
	svc := newStrainService(ctx)

	created, err := svc.Create(ctx, testUser, &model.Strain{
		Name: "DH5a", Species: "E. coli", Genotype: "recA1 endA1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Creator != testUser {
		t.Errorf("creator = %q, want %q", created.Creator, testUser)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Name != "DH5a" {
		t.Errorf("name = %q", got.Name)
	}

	updated, err := svc.Update(ctx, testUser, created.ID, &model.Strain{
		Name: "DH5a", Species: "E. coli", Genotype: "",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// 全量更新：零值字段照常覆盖
	if updated.Genotype != "" {
		t.Errorf("genotype = %q, want cleared", updated.Genotype)
	}

	if updated.Creator != testUser {
		t.Errorf("creator lost on update: %q", updated.Creator)
	}

	if err := svc.Delete(ctx, testUser, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
}

func TestCatalogSlugNameRejected(t *testing.T) {
	ctx := newTestContext(t)
	svc := newStrainService(ctx)

	for _, name := range []string{"bad name", "bad/name", ""} {
		_, err := svc.Create(ctx, testUser, &model.Strain{Name: name, Species: "E. coli"})
		if err == nil {
			t.Errorf("name %q accepted, want validation error", name)
		}
	}

	if n := countRows(t, ctx, &model.Strain{}); n != 0 {
		t.Errorf("strains persisted = %d, want 0", n)
	}
}

func TestCatalogListSearch(t *testing.T) {
	ctx := newTestContext(t)
	svc := newStrainService(ctx)

	for _, s := range []*model.Strain{
		{Name: "DH5a", Species: "E. coli"},
		{Name: "BL21", Species: "E. coli"},
		{Name: "W303", Species: "S. cerevisiae"},
	} {
		if _, err := svc.Create(ctx, testUser, s); err != nil {
			t.Fatalf("seed %s: %v", s.Name, err)
		}
	}

	res, err := svc.List(ctx, &types.ListQuery{Search: "cerevisiae"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if res.Total != 1 || len(res.Items) != 1 || res.Items[0].Name != "W303" {
		t.Errorf("search result = %+v", res)
	}

	all, err := svc.List(ctx, &types.ListQuery{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	if all.Total != 3 {
		t.Errorf("total = %d, want 3", all.Total)
	}
}

func TestCatalogDeleteCascadesBookmarks(t *testing.T) {
	ctx := newTestContext(t)
	svc := newStrainService(ctx)

	strain, err := svc.Create(ctx, testUser, &model.Strain{Name: "DH5a", Species: "E. coli"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bms := service.NewBookmarkService(ctx)
	if _, err := bms.Add(ctx, testUser, &types.BookmarkRequest{EntityType: model.EntityStrain, EntityID: strain.ID}); err != nil {
		t.Fatalf("bookmark: %v", err)
	}

	if err := svc.Delete(ctx, testUser, strain.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := countRows(t, ctx, &model.Bookmark{}); n != 0 {
		t.Errorf("bookmark rows = %d, want 0", n)
	}
}

func TestCatalogWritesActionLog(t *testing.T) {
	ctx := newTestContext(t)
	svc := newStrainService(ctx)

	strain, err := svc.Create(ctx, testUser, &model.Strain{Name: "DH5a", Species: "E. coli"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var logs []model.ActionLog
	if err := testDB(t, ctx).Where("entity_type = ? AND entity_id = ?", model.EntityStrain, strain.ID).Find(&logs).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}

	if len(logs) != 1 || logs[0].Action != model.ActionCreate || logs[0].User != testUser {
		t.Errorf("logs = %+v", logs)
	}
}
