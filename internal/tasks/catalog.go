package tasks

// Factory builds a fresh task instance for one agent.
type Factory func() Task

// Catalog holds the registered task factories in registration order.
// Registration order is the tiebreak when two tasks share a priority.
type Catalog struct {
	factories []Factory
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register appends a task factory to the catalog.
func (c *Catalog) Register(f Factory) {
	c.factories = append(c.factories, f)
}

// Instantiate builds one instance of every registered task, in
// registration order. Each agent gets its own set.
func (c *Catalog) Instantiate() []Task {
	out := make([]Task, 0, len(c.factories))
	for _, f := range c.factories {
		out = append(out, f())
	}
	return out
}

// Len returns the number of registered factories.
func (c *Catalog) Len() int {
	return len(c.factories)
}

// DefaultCatalog registers the standard villager behaviors.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register(func() Task { return NewMiningTask() })
	c.Register(func() Task { return NewFarmingTask() })
	return c
}
