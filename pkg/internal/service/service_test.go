package service_test

import (
	contextPkg "context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	ctxPkg "github.com/yeisme/labvault/pkg/context"
	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/storage"
	"github.com/yeisme/labvault/pkg/internal/storage/db"
)

const testUser = "tester@example.com"

// newTestContext 建一个带内存数据库的上下文，services 从上下文解析存储.
func newTestContext(t *testing.T) contextPkg.Context {
	t.Helper()

	// 与 db.New 的生产配置保持一致：PrepareStmt + TranslateError
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		PrepareStmt:    true,
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

	// 内存库每个连接各自独立，限制为单连接
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mgr := &storage.Manager{DB: &db.Client{DB: gdb}}

	return ctxPkg.WithStorageManager(contextPkg.Background(), mgr)
}

// testDB 从测试上下文取底层 gorm 连接，用于直接断言数据库状态.
func testDB(t *testing.T, ctx contextPkg.Context) *gorm.DB {
	t.Helper()

	client := ctxPkg.GetDBClient(ctx)
	if client == nil {
		t.Fatal("db client missing from context")
	}

	return client.DB
}

func countRows(t *testing.T, ctx contextPkg.Context, m any) int64 {
	t.Helper()

	var n int64
	if err := testDB(t, ctx).Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	return n
}
