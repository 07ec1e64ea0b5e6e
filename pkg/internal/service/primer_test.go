package service_test

import (
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

func TestPrimerSequenceNormalized(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewPrimerService(ctx)

	primer, err := svc.Create(ctx, testUser, &types.PrimerRequest{Sequence: " atcgnry ", Tm: 58.5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if primer.Sequence != "ATCGNRY" {
		t.Errorf("sequence = %q, want ATCGNRY", primer.Sequence)
	}

	// 落库的也是归一化后的
	var stored model.Primer
	if err := testDB(t, ctx).First(&stored, primer.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if stored.Sequence != "ATCGNRY" {
		t.Errorf("stored sequence = %q, want ATCGNRY", stored.Sequence)
	}
}

func TestPrimerBadAlphabetRejected(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewPrimerService(ctx)

	for _, seq := range []string{"ATXG", "AT CG", "", "ATCG-"} {
		_, err := svc.Create(ctx, testUser, &types.PrimerRequest{Sequence: seq, Tm: 60})
		if err == nil {
			t.Errorf("sequence %q accepted, want validation error", seq)
		}
	}

	if n := countRows(t, ctx, &model.Primer{}); n != 0 {
		t.Errorf("primers persisted = %d, want 0", n)
	}
}

func TestPrimerUpdateRevalidates(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewPrimerService(ctx)

	primer, err := svc.Create(ctx, testUser, &types.PrimerRequest{Sequence: "ATCG", Tm: 60})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, testUser, primer.ID, &types.PrimerRequest{Sequence: "QQQQ", Tm: 60}); err == nil {
		t.Fatal("invalid sequence accepted on update")
	}

	updated, err := svc.Update(ctx, testUser, primer.ID, &types.PrimerRequest{Sequence: "ttaa", Tm: 55})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Sequence != "TTAA" {
		t.Errorf("sequence = %q, want TTAA", updated.Sequence)
	}
}
