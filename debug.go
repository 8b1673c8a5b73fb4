package gamebase

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and counts.
// Only populated when Map.debug is true.
type debugStats struct {
	stageTime     time.Duration
	updateTime    time.Duration
	sortTime      time.Duration
	drawTime      time.Duration
	added         int
	removed       int
	entityCount   int
	viewportCount int
}

// SetDebugMode enables or disables per-frame timing logs. The logs go to the
// map's logger at debug level, so a logger must be set to see them.
func (m *Map) SetDebugMode(enabled bool) {
	m.debug = enabled
}

func (m *Map) debugLogUpdate(stats debugStats) {
	m.log.Debug("map update",
		zap.Uint64("tick", m.tick),
		zap.Duration("stage", stats.stageTime),
		zap.Duration("update", stats.updateTime),
		zap.Int("added", stats.added),
		zap.Int("removed", stats.removed),
		zap.Int("entities", stats.entityCount),
	)
}

func (m *Map) debugLogDraw(stats debugStats) {
	m.log.Debug("map draw",
		zap.Uint64("tick", m.tick),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("draw", stats.drawTime),
		zap.Duration("total", stats.sortTime+stats.drawTime),
		zap.Int("entities", stats.entityCount),
		zap.Int("viewports", stats.viewportCount),
	)
}

// debugMaxEntityCount is the live-set size above which admissions warn.
const debugMaxEntityCount = 10000

func debugCheckEntityCount(m *Map) {
	if len(m.entities) == debugMaxEntityCount+1 {
		m.log.Warn("entity count exceeds threshold",
			zap.Int("entities", len(m.entities)),
			zap.Int("threshold", debugMaxEntityCount),
		)
	}
}
