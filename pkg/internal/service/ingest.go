package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	nlog "github.com/yeisme/labvault/pkg/log"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/queue"
	"github.com/yeisme/labvault/pkg/rule"
)

// 批量导入的固定列数.
const (
	primerImportColumns  = 6
	libraryImportColumns = 9
)

// IngestService 表格批量导入. 核心约定：整批校验通过才落库，
// 任何一行有错就一行都不写，并把全部坏行号报给调用方.
type IngestService struct {
	baseService
}

func NewIngestService(c context.Context) *IngestService {
	return &IngestService{baseService: newBaseService(c)}
}

// readSheet 解析工作簿第一张表. 返回全部行与表格宽度（最宽行的列数，
// 尾部空单元被裁掉的短行后续按空串补齐）.
func readSheet(blob []byte) ([][]string, int, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, ErrUnreadableWorkbook
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	return rows, width, nil
}

// cell 取第 i 列单元格，短行按空串处理.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// ImportPrimers 批量导入引物. 列序：sequence, tm, template, location, restriction_sites, notes.
func (is *IngestService) ImportPrimers(ctx context.Context, user string, blob []byte) (*types.ImportResult, error) {
	rows, width, err := readSheet(blob)
	if err != nil {
		metrics.ImportCounter.WithLabelValues("primer", "unreadable").Inc()

		return nil, err
	}

	if width != primerImportColumns {
		metrics.ImportCounter.WithLabelValues("primer", "bad_shape").Inc()

		return nil, &ColumnCountError{Want: primerImportColumns, Got: width}
	}

	if len(rows) < 2 {
		metrics.ImportCounter.WithLabelValues("primer", "empty").Inc()

		return nil, ErrEmptyWorkbook
	}

	primers := make([]*model.Primer, 0, len(rows)-1)
	rowErrs := &RowErrors{}

	// 第 0 行是表头，数据行的表格行号 = 下标 + 1
	for i := 1; i < len(rows); i++ {
		primer, err := is.primerFromRow(rows[i], user)
		if err != nil {
			rowErrs.addRow(i + 1)

			continue
		}

		primers = append(primers, primer)
	}

	if rowErrs.hasErrors() {
		metrics.ImportCounter.WithLabelValues("primer", "rejected").Inc()
		metrics.ImportRejectedRows.WithLabelValues("primer").Add(float64(len(rowErrs.Rows)))

		return nil, rowErrs
	}

	err = is.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, primer := range primers {
			if err := tx.Create(primer).Error; err != nil {
				return err
			}

			if err := appendActionLog(tx, user, model.ActionImport, model.EntityPrimer, primer.ID,
				fmt.Sprintf("added %s via batch import", primer.Sequence)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ImportCounter.WithLabelValues("primer", "success").Inc()
	is.publishBatchImported("primer", "", len(primers), user)

	nlog.Logger().Info().Int("rows", len(primers)).Str("user", user).Msg("primer batch imported")

	return &types.ImportResult{Imported: len(primers)}, nil
}

func (is *IngestService) primerFromRow(row []string, user string) (*model.Primer, error) {
	tm := 0.0

	if raw := cell(row, 1); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}

		tm = parsed
	} else {
		return nil, fmt.Errorf("empty tm cell")
	}

	primer := &model.Primer{
		Sequence:         NormalizeSequence(cell(row, 0)),
		Tm:               tm,
		Template:         cell(row, 2),
		Location:         cell(row, 3),
		RestrictionSites: cell(row, 4),
		Notes:            cell(row, 5),
	}
	primer.SetCreator(user)

	if err := rule.ValidateStruct(primer); err != nil {
		return nil, err
	}

	return primer, nil
}

// ImportLibrary 批量导入菌株库. 列序：stock_id, plate, letter, number, species,
// gene_target, forward_primer(外键，可空), resistance, notes.
// 父 Library 行推迟到整批校验通过后才插入，避免读者看到半成品库.
func (is *IngestService) ImportLibrary(ctx context.Context, user, libraryName string, blob []byte) (*types.ImportResult, error) {
	if err := rule.ValidateVar(libraryName, "required,max=255"); err != nil {
		return nil, err
	}

	rows, width, err := readSheet(blob)
	if err != nil {
		metrics.ImportCounter.WithLabelValues("library", "unreadable").Inc()

		return nil, err
	}

	if width != libraryImportColumns {
		metrics.ImportCounter.WithLabelValues("library", "bad_shape").Inc()

		return nil, &ColumnCountError{Want: libraryImportColumns, Got: width}
	}

	if len(rows) < 2 {
		metrics.ImportCounter.WithLabelValues("library", "empty").Inc()

		return nil, ErrEmptyWorkbook
	}

	stocks := make([]*model.LibStock, 0, len(rows)-1)
	rowErrs := &RowErrors{}

	for i := 1; i < len(rows); i++ {
		stock, err := is.libStockFromRow(ctx, rows[i])
		if err != nil {
			rowErrs.addRow(i + 1)

			continue
		}

		stocks = append(stocks, stock)
	}

	if rowErrs.hasErrors() {
		metrics.ImportCounter.WithLabelValues("library", "rejected").Inc()
		metrics.ImportRejectedRows.WithLabelValues("library").Add(float64(len(rowErrs.Rows)))

		return nil, rowErrs
	}

	err = is.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		library := &model.Library{Name: libraryName}
		if err := tx.Create(library).Error; err != nil {
			return err
		}

		if err := appendActionLog(tx, user, model.ActionImport, model.EntityLibrary, library.ID,
			fmt.Sprintf("created library %s via batch import", library.Name)); err != nil {
			return err
		}

		for _, stock := range stocks {
			stock.LibraryID = library.ID

			if err := tx.Create(stock).Error; err != nil {
				return err
			}

			if err := appendActionLog(tx, user, model.ActionImport, model.EntityLibStock, stock.ID,
				fmt.Sprintf("added %s (%s)", stock.StockID, stock.Location())); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ImportCounter.WithLabelValues("library", "success").Inc()
	is.publishBatchImported("library", libraryName, len(stocks), user)

	nlog.Logger().Info().Int("rows", len(stocks)).Str("library", libraryName).Str("user", user).Msg("library batch imported")

	return &types.ImportResult{Imported: len(stocks), Library: libraryName}, nil
}

func (is *IngestService) libStockFromRow(ctx context.Context, row []string) (*model.LibStock, error) {
	plate, err := strconv.Atoi(cell(row, 1))
	if err != nil {
		return nil, err
	}

	number, err := strconv.Atoi(cell(row, 3))
	if err != nil {
		return nil, err
	}

	// forward_primer 空单元格表示无引物，非空必须指向存在的主键
	var primerID *uint

	if raw := cell(row, 6); raw != "" {
		pk, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}

		var primer model.Primer
		if err := is.dbClient.WithContext(ctx).First(&primer, uint(pk)).Error; err != nil {
			return nil, err
		}

		primerID = &primer.ID
	}

	stock := &model.LibStock{
		StockID:         cell(row, 0),
		Plate:           plate,
		Letter:          cell(row, 2),
		Number:          number,
		Species:         cell(row, 4),
		GeneTarget:      cell(row, 5),
		ForwardPrimerID: primerID,
		Resistance:      cell(row, 7),
		Notes:           cell(row, 8),
	}

	if err := rule.ValidateStruct(stock); err != nil {
		return nil, err
	}

	return stock, nil
}

func (is *IngestService) publishBatchImported(target, library string, imported int, actor string) {
	if is.mqClient == nil {
		return
	}

	payload := queue.BatchImportedPayload{
		Target:   target,
		Library:  library,
		Imported: imported,
		Actor:    actor,
	}

	msg, err := queue.NewWatermillMessage(queue.TopicBatchImported, payload, queue.WithProducer(producerName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Msg("encode batch imported event failed")

		return
	}

	if err := is.mqClient.Publish(context.Background(), queue.TopicBatchImported, msg); err != nil {
		nlog.Logger().Warn().Err(err).Msg("publish batch imported event failed")
	}
}
