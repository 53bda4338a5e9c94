// Package persistence provides SQLite-based village state storage.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/economy"
	"github.com/emersonsg01/villagersim/internal/engine"
	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

// DB wraps a SQLite connection for village state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		born_tick INTEGER NOT NULL,
		alive INTEGER NOT NULL,
		role INTEGER NOT NULL,
		last_repro_tick INTEGER NOT NULL,
		nav_json TEXT NOT NULL,
		skills_json TEXT NOT NULL,
		inventory_json TEXT NOT NULL,
		equipment_json TEXT NOT NULL,
		relationships_json TEXT NOT NULL,
		ledger_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS market (
		item INTEGER PRIMARY KEY,
		demand REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_tick ON events(tick);
	CREATE INDEX IF NOT EXISTS idx_agents_alive ON agents(alive);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveAgents writes all agents and their trade ledgers to the database
// (full replace). The ledgers callback maps an agent id to its ledger;
// a nil result stores an empty one.
func (db *DB) SaveAgents(list []*agents.Agent, ledgers func(uuid.UUID) *economy.Ledger) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM agents"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO agents
		(id, name, born_tick, alive, role, last_repro_tick,
		 nav_json, skills_json, inventory_json, equipment_json,
		 relationships_json, ledger_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range list {
		navJSON, _ := json.Marshal(a.Nav)
		skillsJSON, _ := json.Marshal(a.Skills)
		invJSON, _ := json.Marshal(a.Inventory)
		equipJSON, _ := json.Marshal(a.Equipment)
		relJSON, _ := json.Marshal(a.Relationships)

		ledger := ledgers(a.ID)
		if ledger == nil {
			ledger = economy.NewLedger()
		}
		ledgerJSON, _ := json.Marshal(ledger)

		alive := 0
		if a.Alive {
			alive = 1
		}

		_, err := stmt.Exec(
			a.ID.String(), a.Name, a.BornTick, alive, a.Role, a.LastReproTick,
			string(navJSON), string(skillsJSON), string(invJSON),
			string(equipJSON), string(relJSON), string(ledgerJSON),
		)
		if err != nil {
			return fmt.Errorf("insert agent %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

type agentRow struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	BornTick      uint64 `db:"born_tick"`
	Alive         int    `db:"alive"`
	Role          int    `db:"role"`
	LastReproTick uint64 `db:"last_repro_tick"`
	NavJSON       string `db:"nav_json"`
	SkillsJSON    string `db:"skills_json"`
	InventoryJSON string `db:"inventory_json"`
	EquipmentJSON string `db:"equipment_json"`
	RelJSON       string `db:"relationships_json"`
	LedgerJSON    string `db:"ledger_json"`
}

// LoadAgents restores all saved agents and their trade ledgers.
func (db *DB) LoadAgents() ([]*agents.Agent, map[uuid.UUID]*economy.Ledger, error) {
	var rows []agentRow
	if err := db.conn.Select(&rows, "SELECT * FROM agents"); err != nil {
		return nil, nil, fmt.Errorf("select agents: %w", err)
	}

	list := make([]*agents.Agent, 0, len(rows))
	ledgers := make(map[uuid.UUID]*economy.Ledger, len(rows))

	for _, r := range rows {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("agent id %q: %w", r.ID, err)
		}

		a := &agents.Agent{
			ID:            id,
			Name:          r.Name,
			BornTick:      r.BornTick,
			Alive:         r.Alive != 0,
			Role:          agents.Role(r.Role),
			LastReproTick: r.LastReproTick,
			Nav:           &world.Navigator{},
			Skills:        agents.NewSkillSet(),
			Inventory:     items.NewInventory(),
			Equipment:     items.NewEquipment(),
			Relationships: make(map[uuid.UUID]float64),
		}
		ledger := economy.NewLedger()

		cols := []struct {
			raw string
			dst any
		}{
			{r.NavJSON, a.Nav},
			{r.SkillsJSON, a.Skills},
			{r.InventoryJSON, a.Inventory},
			{r.EquipmentJSON, a.Equipment},
			{r.RelJSON, &a.Relationships},
			{r.LedgerJSON, ledger},
		}
		for _, c := range cols {
			if err := json.Unmarshal([]byte(c.raw), c.dst); err != nil {
				return nil, nil, fmt.Errorf("decode agent %s: %w", r.ID, err)
			}
		}

		list = append(list, a)
		ledgers[id] = ledger
	}

	return list, ledgers, nil
}

// SaveMarket persists the exchange's demand modifiers (full replace).
func (db *DB) SaveMarket(ex *economy.Exchange) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM market"); err != nil {
		return err
	}
	for _, t := range ex.TradedItems() {
		_, err := tx.Exec("INSERT INTO market (item, demand) VALUES (?, ?)",
			int(t), ex.DemandModifier(t))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadMarket restores saved demand modifiers into the exchange.
func (db *DB) LoadMarket(ex *economy.Exchange) error {
	var rows []struct {
		Item   int     `db:"item"`
		Demand float64 `db:"demand"`
	}
	if err := db.conn.Select(&rows, "SELECT item, demand FROM market"); err != nil {
		return fmt.Errorf("select market: %w", err)
	}
	for _, r := range rows {
		ex.SetDemandModifier(items.ItemType(r.Item), r.Demand)
	}
	return nil
}

// SaveEvents appends events to the database.
func (db *DB) SaveEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (tick, description, category) VALUES (?, ?, ?)",
			e.Tick, e.Description, e.Category,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// SaveWorldState performs a full save of all village state.
func (db *DB) SaveWorldState(sim *engine.Simulation) error {
	all := sim.Registry.All()
	slog.Info("saving village state", "agents", len(all))

	if err := db.SaveAgents(all, sim.Ledger); err != nil {
		return fmt.Errorf("save agents: %w", err)
	}
	if err := db.SaveMarket(sim.Exchange); err != nil {
		return fmt.Errorf("save market: %w", err)
	}
	if err := db.SaveEvents(sim.Events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := db.SaveMeta("last_tick", fmt.Sprintf("%d", sim.CurrentTick())); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	slog.Info("village state saved")
	return nil
}

// RecentEvents returns the most recent N events.
func (db *DB) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT tick, description, category FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}
