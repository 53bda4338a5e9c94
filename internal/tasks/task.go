// Package tasks implements the resumable behaviors villagers run: each
// agent carries a scheduler that picks the highest priority task whose
// start conditions hold and ticks it until it completes or fails.
package tasks

import (
	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/config"
	"github.com/emersonsg01/villagersim/internal/world"
)

// Shared movement and sensing bounds for field tasks.
const (
	// scanRadius and scanVertical bound target searches around the agent.
	scanRadius   = 16
	scanVertical = 3

	// actReach is how close the agent must stand to work on a block.
	actReach = 2.0

	walkSpeed = 0.2
)

// Status is the result of one tick of work on a task.
type Status int

const (
	// StatusRunning means the task made progress and wants another tick.
	StatusRunning Status = iota
	// StatusCompleted means the task finished its goal.
	StatusCompleted
	// StatusFailed means the task cannot proceed and should be dropped.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Env bundles the shared state tasks operate against.
type Env struct {
	World *world.World
	Cfg   *config.Config
}

// Task is one resumable behavior. Instances are per-agent and keep
// their own progress between ticks.
type Task interface {
	// Name identifies the task in logs and the API.
	Name() string
	// Priority orders candidate tasks; higher runs first.
	Priority() int
	// PrimarySkill is the skill this task trains.
	PrimarySkill() agents.SkillKind
	// CanStart reports whether the agent qualifies to begin this task.
	CanStart(a *agents.Agent, env *Env) bool
	// Tick advances the task by one step of work.
	Tick(a *agents.Agent, env *Env) Status
	// Reset clears progress so the task can start fresh.
	Reset()
}
