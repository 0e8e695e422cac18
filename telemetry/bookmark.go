package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkRingAdvance    BookmarkType = "ring_advance"
	BookmarkFrontierHalfway BookmarkType = "frontier_halfway"
	BookmarkStall          BookmarkType = "stall"
	BookmarkStopImminent   BookmarkType = "stop_imminent"
)

// Bookmark represents an automatically triggered growth-milestone
// notification.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark via log/slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// GrowthStats is one tick's growth snapshot fed to BookmarkDetector.
type GrowthStats struct {
	Tick          int32
	RNew          int
	AttachedCount int
	StopRadius    int // 2L/3, the stop threshold from spec.md §4.6
}

// BookmarkDetector watches the frontier radius and attachment count for
// growth milestones: ring advances, crossing the halfway mark to the
// stop radius, crossing the 90% mark, and stalls (no new attachments
// over a rolling window). Grounded on the teacher's rolling-window
// BookmarkDetector (telemetry/bookmark.go in the reference stack),
// re-targeted from predator/prey population stats to crystal growth.
type BookmarkDetector struct {
	stallWindow int

	lastRNew          int
	lastAttachedCount int
	ticksSinceGrowth  int
	halfwayFired      bool
	imminentFired     bool
	stallFired        bool
}

// NewBookmarkDetector creates a detector; stallWindow is the number of
// consecutive ticks with no new attachments before a stall bookmark
// fires.
func NewBookmarkDetector(stallWindow int) *BookmarkDetector {
	if stallWindow < 1 {
		stallWindow = 50
	}
	return &BookmarkDetector{stallWindow: stallWindow}
}

// Check analyzes the latest stats and returns any newly triggered
// bookmarks.
func (bd *BookmarkDetector) Check(stats GrowthStats) []Bookmark {
	var bookmarks []Bookmark

	if stats.AttachedCount > bd.lastAttachedCount {
		bd.ticksSinceGrowth = 0
		bd.stallFired = false
	} else {
		bd.ticksSinceGrowth++
	}

	if stats.RNew > bd.lastRNew {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkRingAdvance,
			Tick:        stats.Tick,
			Description: fmt.Sprintf("frontier radius advanced to %d", stats.RNew),
		})
	}

	if !bd.halfwayFired && stats.StopRadius > 0 && stats.RNew*2 >= stats.StopRadius {
		bd.halfwayFired = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkFrontierHalfway,
			Tick:        stats.Tick,
			Description: fmt.Sprintf("frontier radius %d reached half of the stop radius %d", stats.RNew, stats.StopRadius),
		})
	}

	if !bd.imminentFired && stats.StopRadius > 0 && stats.RNew*10 >= stats.StopRadius*9 {
		bd.imminentFired = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkStopImminent,
			Tick:        stats.Tick,
			Description: fmt.Sprintf("frontier radius %d within 10%% of the stop radius %d", stats.RNew, stats.StopRadius),
		})
	}

	if !bd.stallFired && bd.ticksSinceGrowth >= bd.stallWindow {
		bd.stallFired = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkStall,
			Tick:        stats.Tick,
			Description: fmt.Sprintf("no new attachments in %d ticks", bd.ticksSinceGrowth),
		})
	}

	bd.lastRNew = stats.RNew
	bd.lastAttachedCount = stats.AttachedCount

	return bookmarks
}
