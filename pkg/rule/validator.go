// Package rule 提供结构体和字段验证功能的封装，基于 go-playground/validator 实现.
// 除通用规则外，注册了实验室领域的自定义规则：dnaseq、chemlabel、wellletter、slug.
package rule

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

var (
	// dnaseqRe DNA 序列字母表，与引物的约束一致（含简并碱基 N/R/Y）.
	dnaseqRe = regexp.MustCompile(`^[ATCGNRY]+$`)
	// chemlabelRe 化学品标签：单个大写字母.
	chemlabelRe = regexp.MustCompile(`^[A-Z]$`)
	// wellletterRe 板孔字母：单个字母.
	wellletterRe = regexp.MustCompile(`^[A-Za-z]$`)
	// slugRe 名称限定为 slug 安全字符.
	slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// initValidator 尝试复用 gin 的 validator 引擎；若不可用则新建并注册 tag name 函数.
func initValidator() {
	if engine := binding.Validator.Engine(); engine != nil {
		if v, ok := engine.(*validator.Validate); ok {
			inst = v
			inst.SetTagName("rule")
			registerDomainRules(inst)

			return
		}
	}

	inst = validator.New()
	inst.SetTagName("rule")
	registerDomainRules(inst)
}

// registerDomainRules 注册领域自定义规则.
func registerDomainRules(v *validator.Validate) {
	_ = v.RegisterValidation("dnaseq", regexpRule(dnaseqRe))
	_ = v.RegisterValidation("chemlabel", regexpRule(chemlabelRe))
	_ = v.RegisterValidation("wellletter", regexpRule(wellletterRe))
	_ = v.RegisterValidation("slug", regexpRule(slugRe))
}

func regexpRule(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return re.MatchString(s)
	}
}

// lazyInit 初始化全局 validator（幂等）.
func lazyInit() {
	once.Do(initValidator)
}

// Engine 返回全局 *validator.Validate，若未初始化则先初始化.
func Engine() *validator.Validate {
	lazyInit()

	return inst
}

// RegisterValidation 代理 RegisterValidation，确保已初始化.
func RegisterValidation(tag string, fn validator.Func, opts ...bool) error {
	lazyInit()

	return inst.RegisterValidation(tag, fn, opts...)
}

// ValidateStruct 对结构体执行完整校验，返回原始 error（可用 validator.ValidationErrors 解析）.
func ValidateStruct(s any) error {
	lazyInit()

	return inst.Struct(s)
}

// ValidateVar 按规则对单个变量校验，例如: ValidateVar("abc", "required,email").
func ValidateVar(field any, tag string) error {
	lazyInit()

	return inst.Var(field, tag)
}

// RegisterAlias 包装 RegisterAlias，便于注册别名规则.
func RegisterAlias(alias, rules string) {
	lazyInit()

	inst.RegisterAlias(alias, rules)
}
