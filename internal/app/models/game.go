package models

import (
	"encoding/json"
	"time"
)

// Participant is the gamification profile of the current guest
type Participant struct {
	ID               int64      `json:"id"`
	DisplayName      string     `json:"displayName"`
	TotalPoints      int        `json:"totalPoints"`
	Level            int        `json:"level"`
	ExperiencePoints int        `json:"experiencePoints"`
	Streak           int        `json:"streak"`
	LastActivity     *time.Time `json:"lastActivity,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Challenge is an entry of the static challenge catalog
type Challenge struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	DifficultyLevel  int    `json:"difficultyLevel"`
	PointsReward     int    `json:"pointsReward"`
	IsActive         bool   `json:"isActive"`
	RequiresApproval bool   `json:"requiresApproval"`
	MaxCompletions   *int   `json:"maxCompletions,omitempty"`
	TimeLimit        *int   `json:"timeLimit,omitempty"` // minutes
}

// ActivityType names what a guest did to earn points
type ActivityType string

const (
	ActivityPhotoUpload        ActivityType = "photo_upload"
	ActivitySongRequest        ActivityType = "song_request"
	ActivitySongLike           ActivityType = "song_like"
	ActivityChallengeCompleted ActivityType = "challenge_completed"
	ActivityEventJoined        ActivityType = "event_joined"
)

// Activity is an append-only log entry of points earned
type Activity struct {
	ID            int64           `json:"id"`
	ParticipantID int64           `json:"participantId"`
	ActivityType  ActivityType    `json:"activityType"`
	ReferenceID   *int64          `json:"referenceId,omitempty"`
	PointsEarned  int             `json:"pointsEarned"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// LeaderboardCategory selects which ranking to read
type LeaderboardCategory string

const (
	LeaderboardOverall LeaderboardCategory = "overall"
	LeaderboardPhotos  LeaderboardCategory = "photos"
	LeaderboardSocial  LeaderboardCategory = "social"
	LeaderboardDaily   LeaderboardCategory = "daily"
)

// LeaderboardEntry is a ranked row computed by the API
type LeaderboardEntry struct {
	ID            int64               `json:"id"`
	ParticipantID int64               `json:"participantId"`
	DisplayName   string              `json:"displayName,omitempty"`
	Category      LeaderboardCategory `json:"category"`
	Points        int                 `json:"points"`
	Rank          int                 `json:"rank"`
	PeriodStart   *time.Time          `json:"periodStart,omitempty"`
	PeriodEnd     *time.Time          `json:"periodEnd,omitempty"`
}

// EarnedAchievement links a participant to an achievement they unlocked
type EarnedAchievement struct {
	ID            int64     `json:"id"`
	ParticipantID int64     `json:"participantId"`
	AchievementID int64     `json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`
	Progress      int       `json:"progress"`
}

// ChallengeCompletion is returned when a challenge is completed
type ChallengeCompletion struct {
	Activity     *Activity           `json:"activity,omitempty"`
	PointsEarned int                 `json:"pointsEarned"`
	Pending      bool                `json:"pending"` // awaiting host approval
	Achievements []EarnedAchievement `json:"achievements,omitempty"`
}
