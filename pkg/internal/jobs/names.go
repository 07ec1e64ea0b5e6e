package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobActionLogPrune     = "actionlog.prune"
	JobAttachmentOrphanGC = "attachment.orphan_gc"
)

// Cron 表达式常量（可选，但推荐一并集中管理）.
const (
	CronActionLogPrune     = "30 3 * * *"
	CronAttachmentOrphanGC = "0 4 * * 0"
)
