package controllers

import (
	"context"
	"fmt"

	"Bracketpool/cache"
)

func summaryCacheKey(participantID uint) string {
	return fmt.Sprintf("bracket_summary:%d", participantID)
}

func invalidateSummaryCache(participantID uint) {
	if participantID == 0 {
		return
	}
	_ = cache.Delete(context.Background(), summaryCacheKey(participantID))
}
