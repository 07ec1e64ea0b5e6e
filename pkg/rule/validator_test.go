package rule_test

import (
	"testing"

	"github.com/yeisme/labvault/pkg/rule"
)

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestDNASeqRule 测试 dnaseq 规则：合法字母表与非法字符.
func TestDNASeqRule(t *testing.T) {
	valid := []string{"ATCG", "NNNN", "ATCGNRY", "A"}
	for _, s := range valid {
		if err := rule.ValidateVar(s, "dnaseq"); err != nil {
			t.Errorf("Expected no error for sequence %q, got %v", s, err)
		}
	}

	invalid := []string{"atcg", "ATXG", "AT CG", "", "ATCG1"}
	for _, s := range invalid {
		if err := rule.ValidateVar(s, "dnaseq"); err == nil {
			t.Errorf("Expected error for sequence %q, got nil", s)
		}
	}
}

// TestChemLabelRule 测试 chemlabel 规则：单个大写字母.
func TestChemLabelRule(t *testing.T) {
	for _, s := range []string{"A", "Z"} {
		if err := rule.ValidateVar(s, "chemlabel"); err != nil {
			t.Errorf("Expected no error for label %q, got %v", s, err)
		}
	}

	for _, s := range []string{"a", "AB", "1", "", " "} {
		if err := rule.ValidateVar(s, "chemlabel"); err == nil {
			t.Errorf("Expected error for label %q, got nil", s)
		}
	}
}

// TestWellLetterRule 测试 wellletter 规则.
func TestWellLetterRule(t *testing.T) {
	for _, s := range []string{"A", "h"} {
		if err := rule.ValidateVar(s, "wellletter"); err != nil {
			t.Errorf("Expected no error for well letter %q, got %v", s, err)
		}
	}

	for _, s := range []string{"AA", "3", ""} {
		if err := rule.ValidateVar(s, "wellletter"); err == nil {
			t.Errorf("Expected error for well letter %q, got nil", s)
		}
	}
}

// TestSlugRule 测试 slug 规则.
func TestSlugRule(t *testing.T) {
	if err := rule.ValidateVar("pUC19-amp_v2", "slug"); err != nil {
		t.Errorf("Expected no error for slug name, got %v", err)
	}

	if err := rule.ValidateVar("bad name!", "slug"); err == nil {
		t.Error("Expected error for non-slug name, got nil")
	}
}

// TestValidateStruct 测试结构体级校验.
func TestValidateStruct(t *testing.T) {
	type primerLike struct {
		Sequence string `rule:"required,dnaseq"`
	}

	if err := rule.ValidateStruct(primerLike{Sequence: "ATCGN"}); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	if err := rule.ValidateStruct(primerLike{Sequence: "ATQG"}); err == nil {
		t.Error("Expected error for invalid sequence, got nil")
	}
}
