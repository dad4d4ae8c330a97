package models

import "time"

// EnhancementSuggestion is one improvement proposed by the photo analysis
type EnhancementSuggestion struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// PhotoEnhancementAnalysis is the AI analysis of a single photo
type PhotoEnhancementAnalysis struct {
	ID             int64                   `json:"id"`
	PhotoID        int64                   `json:"photoId"`
	OverallScore   float64                 `json:"overallScore"`
	Suggestions    []EnhancementSuggestion `json:"suggestions"`
	Strengths      []string                `json:"strengths"`
	WeddingContext string                  `json:"weddingContext,omitempty"`
	IsVisible      bool                    `json:"isVisible"`
	CreatedAt      time.Time               `json:"createdAt"`
}
