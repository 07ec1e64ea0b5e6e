package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
)

func TestAttachmentUploadValidatesTarget(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAttachmentService(ctx)
	body := strings.NewReader("content")

	_, err := svc.Upload(ctx, testUser, "spaceship", 1, "notes.txt", body, 7, "text/plain")
	if !errors.Is(err, service.ErrUnknownEntityType) {
		t.Errorf("err = %v, want ErrUnknownEntityType", err)
	}

	// 目标实体必须存在，校验在写对象存储之前
	_, err = svc.Upload(ctx, testUser, model.EntityChemical, 42, "notes.txt", body, 7, "text/plain")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if n := countRows(t, ctx, &model.File{}); n != 0 {
		t.Errorf("file rows = %d, want 0", n)
	}
}

func TestAttachmentList(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAttachmentService(ctx)
	chem := seedChemical(t, ctx)

	for _, name := range []string{"msds.pdf", "spectrum.png"} {
		file := &model.File{
			EntityType: model.EntityChemical,
			EntityID:   chem.ID,
			FileName:   name,
			ObjectKey:  model.AttachmentObjectKey(model.EntityChemical, chem.ID, name),
			Creator:    testUser,
		}
		if err := testDB(t, ctx).Create(file).Error; err != nil {
			t.Fatalf("seed file: %v", err)
		}
	}

	files, err := svc.List(ctx, model.EntityChemical, chem.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}

	if files[0].ObjectKey != model.AttachmentObjectKey(model.EntityChemical, chem.ID, "msds.pdf") {
		t.Errorf("object key = %q", files[0].ObjectKey)
	}

	if _, err := svc.List(ctx, "spaceship", 1); !errors.Is(err, service.ErrUnknownEntityType) {
		t.Errorf("err = %v, want ErrUnknownEntityType", err)
	}
}

func TestAttachmentDeleteClearsPlasmidMap(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAttachmentService(ctx)
	gdb := testDB(t, ctx)

	stock := &model.LibStock{StockID: "KO-1", Plate: 1, Letter: "A", Number: 1, Species: "E. coli"}
	if err := gdb.Create(stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	key := model.AttachmentObjectKey(model.EntityLibStock, stock.ID, "map.gb")

	file := &model.File{
		EntityType: model.EntityLibStock,
		EntityID:   stock.ID,
		FileName:   "map.gb",
		ObjectKey:  key,
		Creator:    testUser,
	}
	if err := gdb.Create(file).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := gdb.Model(stock).Update("plasmid_map_key", key).Error; err != nil {
		t.Fatalf("seed pointer: %v", err)
	}

	// S3 未配置时元数据删除照常进行，不会卡在对象清理上
	if err := svc.Delete(ctx, testUser, file.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := countRows(t, ctx, &model.File{}); n != 0 {
		t.Errorf("file rows = %d, want 0", n)
	}

	var reloaded model.LibStock
	if err := gdb.First(&reloaded, stock.ID).Error; err != nil {
		t.Fatalf("reload stock: %v", err)
	}

	if reloaded.PlasmidMapKey != "" {
		t.Errorf("plasmid map key = %q, want cleared", reloaded.PlasmidMapKey)
	}
}
