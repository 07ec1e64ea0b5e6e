package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/configs"
	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/storage/db"
)

// 生产路径建立的连接必须把驱动各自的唯一约束错误翻译成 gorm.ErrDuplicatedKey，
// 编码分配撞号的 409 映射依赖这一点.
func TestNewTranslatesDuplicateKeyErrors(t *testing.T) {
	cfg := &configs.DBConfig{
		Type:         configs.SQLite,
		Database:     filepath.Join(t.TempDir(), "labvault_test"),
		MaxIdleConns: 1,
	}

	client, err := db.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := model.AutoMigrate(client.GetDB()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := client.Create(&model.Chemical{Name: "X", Label: "A", Number: 1}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	err = client.Create(&model.Chemical{Name: "Y", Label: "A", Number: 1}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate (label, number) err = %v, want gorm.ErrDuplicatedKey", err)
	}
}
