package main

import (
	"database/sql"
	"log"
	"sync"
	"time"
)

// Event types written to the event log
const (
	EvtConnect    = "connect"
	EvtDisconnect = "disconnect"
	EvtGoal       = "goal" // credited goal
	EvtExit       = "exit" // ball left through a mouth without attacker credit
)

const (
	eventQueueSize     = 1024
	eventBatchSize     = 50
	eventFlushInterval = 5 * time.Second
)

// LoggedEvent is one row of the event log
type LoggedEvent struct {
	Type      string
	Role      Role
	ConnID    string
	Data      string // JSON metadata (optional)
	Timestamp time.Time
}

// EventLog records connection and goal events with batched background
// writes. It never feeds anything back into the game.
type EventLog struct {
	db     *DB
	events chan LoggedEvent
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	mu    sync.RWMutex
	peers int
}

// NewEventLog starts the background writer. With a nil db events are
// accepted and discarded.
func NewEventLog(db *DB) *EventLog {
	l := &EventLog{
		db:     db,
		events: make(chan LoggedEvent, eventQueueSize),
		stop:   make(chan struct{}),
	}
	l.wg.Add(1)
	go l.writer()
	return l
}

// Track enqueues an event without blocking the caller
func (l *EventLog) Track(evtType string, role Role, connID string, data string) {
	evt := LoggedEvent{
		Type:      evtType,
		Role:      role,
		ConnID:    connID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	select {
	case l.events <- evt:
	default:
		// queue full, drop rather than stall the tick
	}
}

// SetConcurrentPeers updates the live connection gauge
func (l *EventLog) SetConcurrentPeers(n int) {
	l.mu.Lock()
	l.peers = n
	l.mu.Unlock()
}

// ConcurrentPeers returns the live connection gauge
func (l *EventLog) ConcurrentPeers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.peers
}

// Stop flushes pending events and shuts down the writer
func (l *EventLog) Stop() {
	l.once.Do(func() {
		close(l.stop)
		l.wg.Wait()
	})
}

func (l *EventLog) writer() {
	defer l.wg.Done()

	batch := make([]LoggedEvent, 0, eventBatchSize)
	ticker := time.NewTicker(eventFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case evt := <-l.events:
			batch = append(batch, evt)
			if len(batch) >= eventBatchSize {
				l.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			l.flush(batch)
			batch = batch[:0]
		case <-l.stop:
			// Drain whatever is already queued; late Track calls are dropped
		drain:
			for {
				select {
				case evt := <-l.events:
					batch = append(batch, evt)
				default:
					break drain
				}
			}
			l.flush(batch)
			return
		}
	}
}

// flush writes a batch in one transaction
func (l *EventLog) flush(batch []LoggedEvent) {
	if l.db == nil || len(batch) == 0 {
		return
	}
	tx, err := l.db.conn.Begin()
	if err != nil {
		log.Printf("eventlog: begin tx: %v", err)
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO game_events (event_type, role, conn_id, data, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		log.Printf("eventlog: prepare: %v", err)
		return
	}
	defer stmt.Close()

	for _, evt := range batch {
		_, err := stmt.Exec(
			evt.Type,
			nullString(evt.Role.String(), evt.Role != RoleNone),
			nullString(evt.ConnID, evt.ConnID != ""),
			nullString(evt.Data, evt.Data != ""),
			evt.Timestamp.Format(time.RFC3339),
		)
		if err != nil {
			log.Printf("eventlog: insert %s: %v", evt.Type, err)
		}
	}
	if err := tx.Commit(); err != nil {
		log.Printf("eventlog: commit: %v", err)
	}
}

func nullString(s string, valid bool) sql.NullString {
	return sql.NullString{String: s, Valid: valid}
}

// EventCounts returns counts of each event type for the last N days
func (l *EventLog) EventCounts(days int) (map[string]int, error) {
	if l.db == nil {
		return nil, nil
	}
	rows, err := l.db.conn.Query(`
		SELECT event_type, COUNT(*) FROM game_events
		WHERE created_at >= date('now', '-' || ? || ' days')
		GROUP BY event_type
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var evtType string
		var count int
		if err := rows.Scan(&evtType, &count); err != nil {
			return nil, err
		}
		result[evtType] = count
	}
	return result, rows.Err()
}

// GoalRecord is one credited goal from the event log
type GoalRecord struct {
	Scorer  string `json:"scorer"`
	Player1 int    `json:"player1"`
	Player2 int    `json:"player2"`
	Tick    int64  `json:"tick"`
	At      string `json:"at"`
}

// RecentGoals returns the latest credited goals, newest first
func (l *EventLog) RecentGoals(limit int) ([]GoalRecord, error) {
	if l.db == nil {
		return nil, nil
	}
	rows, err := l.db.conn.Query(`
		SELECT COALESCE(role, ''),
			COALESCE(json_extract(data, '$.p1'), 0),
			COALESCE(json_extract(data, '$.p2'), 0),
			COALESCE(json_extract(data, '$.tick'), 0),
			created_at
		FROM game_events
		WHERE event_type = ? AND json_valid(data)
		ORDER BY id DESC LIMIT ?
	`, EvtGoal, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GoalRecord
	for rows.Next() {
		var g GoalRecord
		if err := rows.Scan(&g.Scorer, &g.Player1, &g.Player2, &g.Tick, &g.At); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}
