package vo

import "github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"

// FeedItemFromProjection 根据投影记录构造 FeedItem。
func FeedItemFromProjection(record *po.PostProjection) FeedItem {
	if record == nil {
		return FeedItem{}
	}
	item := FeedItem{
		PostID:        record.PostID,
		AuthorID:      record.AuthorID,
		CreatedAt:     record.CreatedAt,
		LikesCount:    record.LikesCount,
		CommentsCount: record.CommentsCount,
		SharesCount:   record.SharesCount,
		GeoCell:       derefString(record.GeoCell),
	}
	if len(record.Embedding) > 0 {
		item.Embedding = append([]float32(nil), record.Embedding...)
	}
	if len(record.Tags) > 0 {
		item.Tags = append([]string(nil), record.Tags...)
	}
	return item
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
