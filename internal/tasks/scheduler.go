package tasks

import (
	"log/slog"

	"github.com/emersonsg01/villagersim/internal/agents"
)

// Scheduler drives one agent's behavior. It holds that agent's task
// instances and at most one active task at a time; when the active task
// completes or fails, the next eligible task is selected on a later tick.
type Scheduler struct {
	tasks  []Task
	active Task
}

// NewScheduler builds a scheduler with a fresh task set from the catalog.
func NewScheduler(catalog *Catalog) *Scheduler {
	return &Scheduler{tasks: catalog.Instantiate()}
}

// Active returns the currently running task, nil when idle.
func (s *Scheduler) Active() Task {
	return s.active
}

// ActiveName returns the running task's name, "idle" when none.
func (s *Scheduler) ActiveName() string {
	if s.active == nil {
		return "idle"
	}
	return s.active.Name()
}

// Update runs one tick of behavior: pick a task if idle, then advance
// the active task. Completed and failed tasks are cleared so selection
// happens again next tick.
func (s *Scheduler) Update(a *agents.Agent, env *Env) {
	if s.active == nil {
		s.active = s.selectTask(a, env)
		if s.active == nil {
			return
		}
		s.active.Reset()
	}

	switch s.active.Tick(a, env) {
	case StatusCompleted:
		s.active = nil
	case StatusFailed:
		slog.Debug("task failed", "agent", a.Name, "task", s.active.Name())
		s.active = nil
	}
}

// selectTask returns the startable task with the highest priority.
// Earlier registration wins ties.
func (s *Scheduler) selectTask(a *agents.Agent, env *Env) Task {
	var best Task
	for _, t := range s.tasks {
		if !t.CanStart(a, env) {
			continue
		}
		if best == nil || t.Priority() > best.Priority() {
			best = t
		}
	}
	return best
}
