package service_test

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

// buildWorkbook 在内存里拼一个单 sheet 的 xlsx.
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}

		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	return buf.Bytes()
}

var primerHeader = []any{"sequence", "tm", "template", "location", "restriction_sites", "notes"}

var libraryHeader = []any{"stock_id", "plate", "letter", "number", "species", "gene_target", "forward_primer", "resistance", "notes"}

func TestImportPrimersSuccess(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		primerHeader,
		{"atcg", "58.5", "pUC19", "box 3", "EcoRI", "fwd"},
		{"GATTACA", "61", "", "", "", ""},
	})

	res, err := svc.ImportPrimers(ctx, testUser, blob)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Imported != 2 {
		t.Errorf("imported = %d, want 2", res.Imported)
	}

	if n := countRows(t, ctx, &model.Primer{}); n != 2 {
		t.Errorf("primers persisted = %d, want 2", n)
	}

	// 序列入库前已归一化
	var p model.Primer
	if err := testDB(t, ctx).Where("sequence = ?", "ATCG").First(&p).Error; err != nil {
		t.Errorf("normalized sequence not found: %v", err)
	}
}

func TestImportPrimersAllOrNothing(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		primerHeader,
		{"ATCG", "58.5", "", "", "", ""},
		{"GATTACA", "not-a-number", "", "", "", ""},
		{"XXXX", "60", "", "", "", ""},
	})

	_, err := svc.ImportPrimers(ctx, testUser, blob)

	var rowErrs *service.RowErrors
	if !errors.As(err, &rowErrs) {
		t.Fatalf("err = %v, want RowErrors", err)
	}

	// 表头是第 1 行，坏的是数据第 2、3 行
	want := []int{3, 4}
	if len(rowErrs.Rows) != len(want) || rowErrs.Rows[0] != want[0] || rowErrs.Rows[1] != want[1] {
		t.Errorf("rows = %v, want %v", rowErrs.Rows, want)
	}

	if n := countRows(t, ctx, &model.Primer{}); n != 0 {
		t.Errorf("primers persisted = %d, want 0", n)
	}
}

func TestImportPrimersColumnCount(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		{"sequence", "tm", "template", "location", "restriction_sites"},
		{"ATCG", "60", "", "", ""},
	})

	_, err := svc.ImportPrimers(ctx, testUser, blob)

	var colErr *service.ColumnCountError
	if !errors.As(err, &colErr) {
		t.Fatalf("err = %v, want ColumnCountError", err)
	}

	if colErr.Want != 6 || colErr.Got != 5 {
		t.Errorf("ColumnCountError = %+v, want {Want:6 Got:5}", colErr)
	}
}

func TestImportPrimersUnreadableBlob(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	_, err := svc.ImportPrimers(ctx, testUser, []byte("definitely not a workbook"))
	if !errors.Is(err, service.ErrUnreadableWorkbook) {
		t.Errorf("err = %v, want ErrUnreadableWorkbook", err)
	}
}

func TestImportPrimersHeaderOnly(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{primerHeader})

	_, err := svc.ImportPrimers(ctx, testUser, blob)
	if !errors.Is(err, service.ErrEmptyWorkbook) {
		t.Errorf("err = %v, want ErrEmptyWorkbook", err)
	}
}

func TestImportLibrarySuccess(t *testing.T) {
	ctx := newTestContext(t)

	primer, err := service.NewPrimerService(ctx).Create(ctx, testUser, &types.PrimerRequest{Sequence: "ATCG", Tm: 60})
	if err != nil {
		t.Fatalf("seed primer: %v", err)
	}

	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		libraryHeader,
		{"KO-1", "1", "A", "1", "E. coli", "lacZ", primer.ID, "Kan", "first"},
		{"KO-2", "1", "B", "2", "E. coli", "recA", "", "Amp", ""},
	})

	res, err := svc.ImportLibrary(ctx, testUser, "knockouts-2026", blob)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Imported != 2 || res.Library != "knockouts-2026" {
		t.Errorf("result = %+v", res)
	}

	var lib model.Library
	if err := testDB(t, ctx).Where("name = ?", "knockouts-2026").First(&lib).Error; err != nil {
		t.Fatalf("library row: %v", err)
	}

	var stocks []model.LibStock
	if err := testDB(t, ctx).Where("library_id = ?", lib.ID).Order("number").Find(&stocks).Error; err != nil {
		t.Fatalf("stocks: %v", err)
	}

	if len(stocks) != 2 {
		t.Fatalf("stocks = %d, want 2", len(stocks))
	}

	if stocks[0].ForwardPrimerID == nil || *stocks[0].ForwardPrimerID != primer.ID {
		t.Errorf("stock 1 forward primer = %v, want %d", stocks[0].ForwardPrimerID, primer.ID)
	}

	// 空单元格表示无引物
	if stocks[1].ForwardPrimerID != nil {
		t.Errorf("stock 2 forward primer = %v, want nil", *stocks[1].ForwardPrimerID)
	}
}

func TestImportLibraryAllOrNothing(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		libraryHeader,
		{"KO-1", "1", "A", "1", "E. coli", "lacZ", "", "Kan", ""},
		{"KO-2", "1", "B", "2", "E. coli", "recA", "", "Amp", ""},
		{"KO-3", "not-a-plate", "C", "3", "E. coli", "gyrA", "", "Amp", ""},
		{"KO-4", "2", "D", "4", "E. coli", "rpoB", "", "Kan", ""},
		{"KO-5", "2", "E", "5", "E. coli", "ftsZ", "", "Kan", ""},
	})

	_, err := svc.ImportLibrary(ctx, testUser, "broken-batch", blob)

	var rowErrs *service.RowErrors
	if !errors.As(err, &rowErrs) {
		t.Fatalf("err = %v, want RowErrors", err)
	}

	if len(rowErrs.Rows) != 1 || rowErrs.Rows[0] != 4 {
		t.Errorf("rows = %v, want [4]", rowErrs.Rows)
	}

	// 父记录也不落库
	if n := countRows(t, ctx, &model.Library{}); n != 0 {
		t.Errorf("libraries persisted = %d, want 0", n)
	}

	if n := countRows(t, ctx, &model.LibStock{}); n != 0 {
		t.Errorf("stocks persisted = %d, want 0", n)
	}
}

func TestImportLibraryMissingPrimerRejected(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		libraryHeader,
		{"KO-1", "1", "A", "1", "E. coli", "lacZ", "9999", "Kan", ""},
	})

	_, err := svc.ImportLibrary(ctx, testUser, "dangling-primer", blob)

	var rowErrs *service.RowErrors
	if !errors.As(err, &rowErrs) {
		t.Fatalf("err = %v, want RowErrors", err)
	}

	if len(rowErrs.Rows) != 1 || rowErrs.Rows[0] != 2 {
		t.Errorf("rows = %v, want [2]", rowErrs.Rows)
	}
}

func TestImportLibraryColumnCount(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{
		{"stock_id", "plate", "letter", "number", "species", "gene_target", "forward_primer"},
		{"KO-1", "1", "A", "1", "E. coli", "lacZ", ""},
	})

	_, err := svc.ImportLibrary(ctx, testUser, "short-sheet", blob)

	var colErr *service.ColumnCountError
	if !errors.As(err, &colErr) {
		t.Fatalf("err = %v, want ColumnCountError", err)
	}

	if colErr.Want != 9 || colErr.Got != 7 {
		t.Errorf("ColumnCountError = %+v, want {Want:9 Got:7}", colErr)
	}
}

func TestImportLibraryNameRequired(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewIngestService(ctx)

	blob := buildWorkbook(t, [][]any{libraryHeader})

	if _, err := svc.ImportLibrary(ctx, testUser, "", blob); err == nil {
		t.Error("empty library name accepted")
	}
}
