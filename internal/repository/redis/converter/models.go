package converter

// RecommendationRedisModel — элемент закэшированного списка рекомендаций.
type RecommendationRedisModel struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
}
