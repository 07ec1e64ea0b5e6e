// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：lv.<域>.<动作>，域按业务划分，动作用过去式表示已发生的事实.
const (
	// 实体记录领域.
	TopicEntityCreated = "lv.entity.created" // 记录创建完成
	TopicEntityUpdated = "lv.entity.updated" // 记录更新完成
	TopicEntityDeleted = "lv.entity.deleted" // 记录删除完成（含级联清理）

	// 批量导入领域.
	TopicBatchImported = "lv.batch.imported" // 表格批量导入全部写入

	// 附件领域.
	TopicAttachmentStored  = "lv.attachment.stored"  // 附件写入对象存储并登记元数据
	TopicAttachmentDeleted = "lv.attachment.deleted" // 附件删除（对象与元数据均清理）
)

// EntityTopics 实体记录相关主题集合.
var EntityTopics = []string{
	TopicEntityCreated, TopicEntityUpdated, TopicEntityDeleted,
}
