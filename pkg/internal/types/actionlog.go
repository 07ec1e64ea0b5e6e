package types

// ActionLogQuery 操作历史查询参数.
type ActionLogQuery struct {
	ListQuery
	EntityType string `form:"entity_type" json:"entity_type" rule:"omitempty,max=64"`
	EntityID   uint   `form:"entity_id"   json:"entity_id"`
	User       string `form:"user"        json:"user"        rule:"omitempty,max=255"`
	Action     string `form:"action"      json:"action"      rule:"omitempty,oneof=create update delete import"`
}
