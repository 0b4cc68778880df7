package store

import (
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Persisted keys. The schema is flat: three well-known keys in one bucket.
const (
	KeyEvents      = "events"
	KeyActiveIndex = "activeIndex"
	KeyHasLaunched = "hasLaunched"
)

// KV is the typed key-value contract the store persists through. Get
// distinguishes a missing key from an empty value; Set overwrites.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Pathed is implemented by KV backends rooted at a filesystem path; the
// store's watcher uses it to observe external changes.
type Pathed interface {
	BasePath() string
}

// Open returns a diskv-backed KV using the provided config, falling back to
// LoadConfig when cfg is nil.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type diskvKV struct {
	d        *diskv.Diskv
	basePath string
}

func (k *diskvKV) Get(key string) (string, bool, error) {
	if !k.d.Has(key) {
		return "", false, nil
	}
	val, err := k.d.Read(key)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (k *diskvKV) Set(key, value string) error {
	return k.d.Write(key, []byte(value))
}

func (k *diskvKV) BasePath() string {
	return k.basePath
}

// Memory is an in-memory KV for tests and dry runs.
type Memory struct {
	mu     sync.Mutex
	data   map[string]string
	writes int

	// FailWrites makes every Set return this error when non-nil.
	FailWrites error
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = value
	m.writes++
	return nil
}

// Writes reports how many successful Sets have been applied.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
