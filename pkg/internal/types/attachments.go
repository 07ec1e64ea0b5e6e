package types

import "time"

// AttachmentResponse 附件元数据响应.
type AttachmentResponse struct {
	ID         uint      `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	FileName   string    `json:"file_name"`
	ObjectKey  string    `json:"object_key"`
	Size       int64     `json:"size"`
	Creator    string    `json:"creator"`
	Created    time.Time `json:"created"`
}

// BookmarkRequest 添加/移除收藏.
type BookmarkRequest struct {
	EntityType string `json:"entity_type" rule:"required"`
	EntityID   uint   `json:"entity_id"   rule:"required,min=1"`
}

// BookmarkBucket 收藏聚合里的一个桶.
type BookmarkBucket struct {
	Items []BookmarkedItem `json:"items"`
}

// BookmarkedItem 聚合视图中的单条收藏.
type BookmarkedItem struct {
	EntityID uint   `json:"entity_id"`
	Display  string `json:"display"`
}

// BookmarkOverview 按实体类型分桶的收藏聚合视图.
// 桶集合固定，未知类型的残留收藏不会出现在任何桶里.
type BookmarkOverview struct {
	Chemicals     []BookmarkedItem `json:"chemicals"`
	Manufacturers []BookmarkedItem `json:"manufacturers"`
	Locations     []BookmarkedItem `json:"locations"`
	Primers       []BookmarkedItem `json:"primers"`
	Plasmids      []BookmarkedItem `json:"plasmids"`
	Strains       []BookmarkedItem `json:"strains"`
	Stocks        []BookmarkedItem `json:"stocks"`
	LibStocks     []BookmarkedItem `json:"libstocks"`
	Genomes       []BookmarkedItem `json:"genomes"`
	Protocols     []BookmarkedItem `json:"protocols"`
	Tags          []BookmarkedItem `json:"tags"`
}
