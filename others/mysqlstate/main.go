package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/ruuid"
)

// SQLStore persists V1 generator state in MySQL, one row per host. RFC
// 4122 recommends keeping the clock sequence in stable storage so that
// successive process runs on the same node cannot collide inside one
// clock tick; for a fleet of stateless hosts a shared database is the
// natural stable storage.
type SQLStore struct {
	db   *sql.DB
	host string
}

// NewSQLStore opens the database, applies connection tuning and makes
// sure the state table exists.
func NewSQLStore(dsn, host string) (*SQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLStore{db: db, host: host}
	if err := s.ensureTable(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) ensureTable() error {
	_, err := s.db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS ruuid_state (
			host           VARCHAR(255)      NOT NULL PRIMARY KEY,
			node_id        BINARY(6)         NOT NULL,
			clock_sequence SMALLINT UNSIGNED NOT NULL,
			last_ticks     BIGINT UNSIGNED   NOT NULL
		)`)
	return err
}

// Load implements ruuid.StateStore.
func (s *SQLStore) Load() (ruuid.State, bool, error) {
	var st ruuid.State
	var nodeID []byte

	err := s.db.QueryRowContext(context.Background(),
		"SELECT node_id, clock_sequence, last_ticks FROM ruuid_state WHERE host = ?",
		s.host).Scan(&nodeID, &st.ClockSequence, &st.LastTicks)
	if err == sql.ErrNoRows {
		return st, false, nil
	}
	if err != nil {
		return st, false, err
	}
	copy(st.NodeID[:], nodeID)
	return st, true, nil
}

// Save implements ruuid.StateStore with an atomic upsert.
func (s *SQLStore) Save(st ruuid.State) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO ruuid_state (host, node_id, clock_sequence, last_ticks)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			node_id = VALUES(node_id),
			clock_sequence = VALUES(clock_sequence),
			last_ticks = VALUES(last_ticks)`,
		s.host, st.NodeID[:], st.ClockSequence, st.LastTicks)
	return err
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	host, err := os.Hostname()
	if err != nil {
		log.Fatal(err)
	}

	store, err := NewSQLStore(dsn, host)
	if err != nil {
		log.Fatal(err)
	}

	gen, err := ruuid.NewGeneratorWithStore(store)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("generator started for host %s", host)

	var wg sync.WaitGroup
	start := time.Now()

	// Simulate 10 concurrent goroutines, each generating 500 V1 UUIDs
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if _, err := gen.NewV1(); err != nil {
					log.Printf("Error: %v", err)
				}
			}
		}()
	}

	wg.Wait()

	// Checkpoint the last issued timestamp for the next run.
	if err := gen.SaveState(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Total time: %s, finished generating 5000 V1 UUIDs", time.Since(start))
}
