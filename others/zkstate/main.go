package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/Lzww0608/ruuid"
)

// ZKRootPath is the root znode under which per-host generator state lives.
const ZKRootPath = "/ruuid_state"

// ZKStore persists V1 generator state in ZooKeeper, keyed by hostname,
// with a local JSON cache file as fallback for when ZooKeeper is briefly
// unavailable. It stores only this host's own state; node ids themselves
// stay locally generated.
type ZKStore struct {
	conn      *zk.Conn
	nodeKey   string
	cacheFile string
}

// NewZKStore connects to ZooKeeper and prepares the znode path for host.
func NewZKStore(servers []string, host string) (*ZKStore, error) {
	c, _, err := zk.Connect(servers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}

	s := &ZKStore{
		conn:      c,
		nodeKey:   fmt.Sprintf("%s/%s", ZKRootPath, host),
		cacheFile: fmt.Sprintf(".ruuid_state_%s", host),
	}
	s.ensurePath(ZKRootPath)
	return s, nil
}

// ensurePath creates a znode if it does not exist yet.
func (s *ZKStore) ensurePath(path string) {
	exists, _, _ := s.conn.Exists(path)
	if !exists {
		s.conn.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

// Load implements ruuid.StateStore. ZooKeeper is authoritative; the local
// cache file is consulted only when ZooKeeper cannot be read.
func (s *ZKStore) Load() (ruuid.State, bool, error) {
	var st ruuid.State

	exists, _, err := s.conn.Exists(s.nodeKey)
	if err != nil {
		return s.loadLocalCache()
	}
	if !exists {
		return s.loadLocalCache()
	}

	data, _, err := s.conn.Get(s.nodeKey)
	if err != nil {
		return s.loadLocalCache()
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, false, err
	}
	return st, true, nil
}

// Save implements ruuid.StateStore, writing both ZooKeeper and the local
// cache file.
func (s *ZKStore) Save(st ruuid.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	exists, _, err := s.conn.Exists(s.nodeKey)
	if err != nil {
		return fmt.Errorf("check state znode failed: %v", err)
	}
	if exists {
		_, err = s.conn.Set(s.nodeKey, data, -1)
	} else {
		_, err = s.conn.Create(s.nodeKey, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return fmt.Errorf("save state znode failed: %v", err)
	}

	// Best effort: the cache only matters when ZooKeeper is down later.
	os.WriteFile(s.cacheFile, data, 0644)
	return nil
}

func (s *ZKStore) loadLocalCache() (ruuid.State, bool, error) {
	var st ruuid.State
	data, err := os.ReadFile(s.cacheFile)
	if os.IsNotExist(err) {
		return st, false, nil
	}
	if err != nil {
		return st, false, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, false, err
	}
	log.Printf("recovered generator state from local cache %s", s.cacheFile)
	return st, true, nil
}

func main() {
	// NOTE: This code requires a local Zookeeper at localhost:2181 to run.
	// You can use Docker to start Zookeeper for local testing:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper

	zkServers := []string{"127.0.0.1:2181"}

	host, err := os.Hostname()
	if err != nil {
		log.Fatal(err)
	}

	store, err := NewZKStore(zkServers, host)
	if err != nil {
		log.Fatalf("Failed to init zk store: %v", err)
	}

	gen, err := ruuid.NewGeneratorWithStore(store)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Start generating IDs...")
	for i := 0; i < 10; i++ {
		id, err := gen.NewV1()
		if err != nil {
			log.Println(err)
			continue
		}
		fmt.Println(id)
	}

	if err := gen.SaveState(); err != nil {
		log.Fatal(err)
	}
	log.Println("Done.")
}
