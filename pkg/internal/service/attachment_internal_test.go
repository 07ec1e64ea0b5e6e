package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yeisme/labvault/pkg/internal/model"
)

func TestPlasmidMapPointerFollowsAttachments(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	stock := &model.LibStock{StockID: "KO-1", Plate: 1, Letter: "A", Number: 1, Species: "E. coli"}
	if err := gdb.Create(stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	mapFile := &model.File{
		EntityType: model.EntityLibStock,
		EntityID:   stock.ID,
		FileName:   "map.gb",
		ObjectKey:  model.AttachmentObjectKey(model.EntityLibStock, stock.ID, "map.gb"),
	}

	if err := assignPlasmidMap(gdb, mapFile); err != nil {
		t.Fatalf("assign: %v", err)
	}

	var reloaded model.LibStock
	if err := gdb.First(&reloaded, stock.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if reloaded.PlasmidMapKey != mapFile.ObjectKey {
		t.Errorf("plasmid map key = %q, want %q", reloaded.PlasmidMapKey, mapFile.ObjectKey)
	}

	// 删别的附件不动指针
	other := &model.File{
		EntityType: model.EntityLibStock,
		EntityID:   stock.ID,
		ObjectKey:  model.AttachmentObjectKey(model.EntityLibStock, stock.ID, "notes.txt"),
	}
	if err := releasePlasmidMap(gdb, other); err != nil {
		t.Fatalf("release other: %v", err)
	}

	if err := gdb.First(&reloaded, stock.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if reloaded.PlasmidMapKey != mapFile.ObjectKey {
		t.Errorf("plasmid map key cleared by unrelated attachment: %q", reloaded.PlasmidMapKey)
	}

	// 删图谱本体清掉指针
	if err := releasePlasmidMap(gdb, mapFile); err != nil {
		t.Fatalf("release: %v", err)
	}

	if err := gdb.First(&reloaded, stock.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if reloaded.PlasmidMapKey != "" {
		t.Errorf("plasmid map key = %q, want cleared", reloaded.PlasmidMapKey)
	}

	// 非样本附件不碰 libstocks
	chemFile := &model.File{EntityType: model.EntityChemical, EntityID: 1, ObjectKey: "chemical/1/msds.pdf"}
	if err := assignPlasmidMap(gdb, chemFile); err != nil {
		t.Fatalf("assign chemical: %v", err)
	}
}
