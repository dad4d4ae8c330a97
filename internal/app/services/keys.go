package services

import (
	"strconv"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// Resource key roots. Invalidating a root drops every key below it.
var (
	participantKey  = querycache.NewKey("/api/game/participant")
	challengesKey   = querycache.NewKey("/api/game/challenges")
	leaderboardKey  = querycache.NewKey("/api/game/leaderboard")
	activitiesKey   = querycache.NewKey("/api/game/activities")
	achievementsKey = querycache.NewKey("/api/game/achievements")
	metadataKey     = querycache.NewKey("/api/metadata")
	playlistKey     = querycache.NewKey("/api/playlist")
	scheduleKey     = querycache.NewKey("/api/schedule")
)

func challengesFilterKey(activeOnly *bool) querycache.Key {
	if activeOnly == nil {
		return challengesKey
	}
	return querycache.NewKey(challengesKey[0], "active="+strconv.FormatBool(*activeOnly))
}

func leaderboardFilterKey(category models.LeaderboardCategory, limit int) querycache.Key {
	return querycache.NewKey(leaderboardKey[0], category, limit)
}

func activitiesFilterKey(userOnly bool, limit int) querycache.Key {
	return querycache.NewKey(activitiesKey[0], userOnly, limit)
}

func metadataItemKey(metaKey string) querycache.Key {
	return querycache.NewKey(metadataKey[0], metaKey)
}

func enhancementKey(photoID int64) querycache.Key {
	return querycache.NewKey("/api/photos", photoID, "enhancement")
}
