package models

import "time"

type RecommendationCategory string

const (
	CategoryPerformance    RecommendationCategory = "performance"
	CategoryResource       RecommendationCategory = "resource"
	CategoryUserExperience RecommendationCategory = "user_experience"
	CategoryError          RecommendationCategory = "error"
	CategoryBusiness       RecommendationCategory = "business"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

type RecommendationStatus string

const (
	RecommendationStatusPending     RecommendationStatus = "pending"
	RecommendationStatusAccepted    RecommendationStatus = "accepted"
	RecommendationStatusRejected    RecommendationStatus = "rejected"
	RecommendationStatusImplemented RecommendationStatus = "implemented"
)

type RecommendationMetric struct {
	Metric      string  `json:"metric"`
	Current     float64 `json:"current"`
	Target      float64 `json:"target"`
	Improvement float64 `json:"improvement"`
}

type OptimizationRecommendation struct {
	ID             string                 `json:"id"`
	Category       RecommendationCategory `json:"category"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Impact         Level                  `json:"impact"`
	Effort         Level                  `json:"effort"`
	Metrics        []RecommendationMetric `json:"metrics"`
	Implementation []string               `json:"implementation"`
	CreatedAt      time.Time              `json:"createdAt"`
	Status         RecommendationStatus   `json:"status"`
}
