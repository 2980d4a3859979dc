package usecase

import (
	"time"

	"github.com/google/uuid"
)

// RECOMMENDATION USECASE

// GetRecommendationsReq — запрос рекомендаций для клиента.
type GetRecommendationsReq struct {
	CustomerID string
}

// GetRecommendationsRes — ответ с рекомендациями и объяснением.
type GetRecommendationsRes struct {
	CustomerID      string
	Recommendations []Recommendation
	Explanation     string
}

// Recommendation — один рекомендованный продукт в порядке близости.
type Recommendation struct {
	ProductID   string
	Description string
}

// CustomerProfile — срез профиля клиента для построения объяснения.
type CustomerProfile struct {
	TransactionHistory []string
	Preferences        string
}

// CATALOG USECASE

// RegisterProductReq — запрос на регистрацию продукта каталога.
type RegisterProductReq struct {
	ID          string
	Description string
	AnnualRate  int64
}

// SIMULATE USECASE

// SimulateUsageReq — параметры генерации синтетических событий.
// Пустой список Customers означает выбор клиентов по умолчанию.
type SimulateUsageReq struct {
	Customers []string
	NumEvents int // событий на клиента
	Delay     time.Duration
}

// SimulateUsageRes — фактически охваченные клиенты и число событий.
type SimulateUsageRes struct {
	Customers []string
	Events    int
}

// INFRASTRUCTURE

// PublishUsageEventReq — обработанное событие для публикации в Kafka.
type PublishUsageEventReq struct {
	EventID    string
	CustomerID string
	Action     string
	Timestamp  time.Time
}

// MAPPERS

func NewGetRecommendationsReq(customerID string) *GetRecommendationsReq {
	return &GetRecommendationsReq{CustomerID: customerID}
}

func NewGetRecommendationsRes(customerID string, recs []Recommendation, explanation string) *GetRecommendationsRes {
	return &GetRecommendationsRes{
		CustomerID:      customerID,
		Recommendations: recs,
		Explanation:     explanation,
	}
}

func NewRecommendation(productID string, description string) Recommendation {
	return Recommendation{
		ProductID:   productID,
		Description: description,
	}
}

func NewCustomerProfile(history []string, preferences string) *CustomerProfile {
	return &CustomerProfile{
		TransactionHistory: history,
		Preferences:        preferences,
	}
}

func NewRegisterProductReq(id string, description string, annualRate int64) *RegisterProductReq {
	return &RegisterProductReq{
		ID:          id,
		Description: description,
		AnnualRate:  annualRate,
	}
}

func NewSimulateUsageReq(customers []string, numEvents int, delay time.Duration) *SimulateUsageReq {
	return &SimulateUsageReq{
		Customers: customers,
		NumEvents: numEvents,
		Delay:     delay,
	}
}

func NewSimulateUsageRes(customers []string, events int) *SimulateUsageRes {
	return &SimulateUsageRes{
		Customers: customers,
		Events:    events,
	}
}

func NewPublishUsageEventReq(customerID string, action string, timestamp time.Time) *PublishUsageEventReq {
	return &PublishUsageEventReq{
		EventID:    uuid.NewString(),
		CustomerID: customerID,
		Action:     action,
		Timestamp:  timestamp,
	}
}
