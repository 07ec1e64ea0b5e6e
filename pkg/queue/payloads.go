package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// EntityRef 标识一条库存记录.
type EntityRef struct {
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	Display    string `json:"display,omitempty"` // 人类可读标识，如化学品编码 "A12"
}

// EntityEventPayload 记录创建/更新/删除事件.
type EntityEventPayload struct {
	Entity EntityRef `json:"entity"`
	Actor  string    `json:"actor,omitempty"`
}

// BatchImportedPayload 批量导入完成事件.
type BatchImportedPayload struct {
	Target   string `json:"target"`            // primer / library
	Library  string `json:"library,omitempty"` // 菌株库导入时的库名
	Imported int    `json:"imported"`          // 写入行数
	Actor    string `json:"actor,omitempty"`
}

// AttachmentEventPayload 附件写入/删除事件.
type AttachmentEventPayload struct {
	Entity    EntityRef `json:"entity"`
	ObjectKey string    `json:"object_key"`
	FileName  string    `json:"file_name,omitempty"`
	Size      int64     `json:"size,omitempty"`
	Actor     string    `json:"actor,omitempty"`
}
