package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

func seedLibrary(t *testing.T, ctx context.Context) (*model.Library, []model.LibStock) {
	t.Helper()

	blob := buildWorkbook(t, [][]any{
		libraryHeader,
		{"KO-1", "1", "A", "1", "E. coli", "lacZ", "", "Kan", ""},
		{"KO-2", "2", "B", "3", "E. coli", "recA", "", "Amp", ""},
	})

	if _, err := service.NewIngestService(ctx).ImportLibrary(ctx, testUser, "seeded", blob); err != nil {
		t.Fatalf("seed library: %v", err)
	}

	lib, stocks, err := func() (*model.Library, []model.LibStock, error) {
		var l model.Library
		if err := testDB(t, ctx).Where("name = ?", "seeded").First(&l).Error; err != nil {
			return nil, nil, err
		}

		svc := service.NewLibraryService(ctx)

		return svc.GetWithStocks(ctx, l.ID)
	}()
	if err != nil {
		t.Fatalf("load seeded library: %v", err)
	}

	return lib, stocks
}

func TestLibraryGetWithStocksOrdered(t *testing.T) {
	ctx := newTestContext(t)
	lib, stocks := seedLibrary(t, ctx)

	if lib.Name != "seeded" {
		t.Errorf("name = %q", lib.Name)
	}

	if len(stocks) != 2 {
		t.Fatalf("stocks = %d, want 2", len(stocks))
	}

	if stocks[0].Plate != 1 || stocks[1].Plate != 2 {
		t.Errorf("stocks not ordered by plate: %+v", stocks)
	}

	if got := stocks[0].Location(); got != "Plate 1, well A1" {
		t.Errorf("location = %q, want %q", got, "Plate 1, well A1")
	}
}

func TestLibraryDeleteRemovesStocks(t *testing.T) {
	ctx := newTestContext(t)
	lib, stocks := seedLibrary(t, ctx)
	svc := service.NewLibraryService(ctx)

	// 样本上的收藏也要跟着清掉
	bms := service.NewBookmarkService(ctx)
	if _, err := bms.Add(ctx, testUser, &types.BookmarkRequest{EntityType: model.EntityLibStock, EntityID: stocks[0].ID}); err != nil {
		t.Fatalf("bookmark: %v", err)
	}

	if err := svc.Delete(ctx, testUser, lib.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := countRows(t, ctx, &model.Library{}); n != 0 {
		t.Errorf("libraries = %d, want 0", n)
	}

	if n := countRows(t, ctx, &model.LibStock{}); n != 0 {
		t.Errorf("stocks = %d, want 0", n)
	}

	if n := countRows(t, ctx, &model.Bookmark{}); n != 0 {
		t.Errorf("bookmarks = %d, want 0", n)
	}
}

func TestLibraryDeleteMissing(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewLibraryService(ctx)

	if err := svc.Delete(ctx, testUser, 42); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
