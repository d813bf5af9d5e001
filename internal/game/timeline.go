package game

import (
	"time"

	"winey/internal/models"
)

// Timeline is the append-only record of every applied transition. Step
// summaries are recomputed from the resulting game state, never carried over
// from the request payload, so the log stays self-consistent even when a
// caller supplied a partial payload. Steps are never mutated, truncated or
// reordered; an undo adds a new forward step.
type Timeline struct {
	steps []models.TimelineStep
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Append derives a step from the action kind and the game state that
// resulted from applying it.
func (t *Timeline) Append(kind models.ActionKind, g *models.Game, at time.Time) {
	step := models.TimelineStep{
		Seq:       len(t.steps),
		Timestamp: at,
		Action:    kind,
		Phase:     g.Status,
		Scores:    g.Scores(),
	}
	switch g.Status {
	case models.StatusInRound, models.StatusCountdown, models.StatusReveal:
		step.RoundIndex = g.CurrentRound
	}
	t.steps = append(t.steps, step)
}

// Steps returns a copy of the recorded steps.
func (t *Timeline) Steps() []models.TimelineStep {
	return append([]models.TimelineStep(nil), t.steps...)
}

// Len returns the number of recorded steps.
func (t *Timeline) Len() int {
	return len(t.steps)
}
