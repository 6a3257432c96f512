package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"requirement-monitor/core/snapshot"
)

// fakeTree is an in-memory Enumerator.
type fakeTree struct {
	mu       sync.Mutex
	files    []string
	children map[string][]string
	inodes   map[string]uint64

	listErr  error
	dirErrs  map[string]error
	onList   func()
	listings int
}

func (f *fakeTree) ListFiles(ctx context.Context, root string) ([]string, error) {
	f.mu.Lock()
	f.listings++
	hook := f.onList
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.files...), nil
}

func (f *fakeTree) ListDirectories(ctx context.Context, dir string) ([]string, error) {
	if err, ok := f.dirErrs[dir]; ok {
		return nil, err
	}
	return append([]string(nil), f.children[dir]...), nil
}

func (f *fakeTree) Inode(path string) (uint64, error) {
	ino, ok := f.inodes[path]
	if !ok {
		return 0, fmt.Errorf("stat %s: no such file or directory", path)
	}
	return ino, nil
}

func (f *fakeTree) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listings
}

// fakeRecords is an in-memory RecordStore.
type fakeRecords struct {
	mu   sync.Mutex
	rows map[uint]FileRecord

	inodeErrs   map[uint64]error
	pathErrs    map[string]error
	relocateErr map[uint]error
	deleteErr   map[uint]error
	mutations   int
}

func newFakeRecords(rows ...FileRecord) *fakeRecords {
	f := &fakeRecords{rows: make(map[uint]FileRecord)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeRecords) FindByInode(ctx context.Context, inode uint64) (*FileRecord, error) {
	if err, ok := f.inodeErrs[inode]; ok {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.ids() {
		if r := f.rows[id]; r.Inode == inode {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecords) FindByPath(ctx context.Context, path string) (*FileRecord, error) {
	if err, ok := f.pathErrs[path]; ok {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.ids() {
		if r := f.rows[id]; r.Path == path {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecords) Relocate(ctx context.Context, record FileRecord, path, filename string) error {
	if err, ok := f.relocateErr[record.ID]; ok {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.rows[record.ID]
	r.Path = path
	r.Filename = filename
	f.rows[record.ID] = r
	f.mutations++
	return nil
}

func (f *fakeRecords) Delete(ctx context.Context, record FileRecord) error {
	if err, ok := f.deleteErr[record.ID]; ok {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, record.ID)
	f.mutations++
	return nil
}

func (f *fakeRecords) get(id uint) (FileRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	return r, ok
}

func (f *fakeRecords) ids() []uint {
	ids := make([]uint, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// memSnapshots is an in-memory snapshot.Store.
type memSnapshots struct {
	mu      sync.Mutex
	data    snapshot.Snapshot
	loadErr error
	saveErr error
	saves   int
}

func (m *memSnapshots) Load(ctx context.Context) (snapshot.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append(snapshot.Snapshot{}, m.data...), nil
}

func (m *memSnapshots) Save(ctx context.Context, s snapshot.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append(snapshot.Snapshot{}, s...)
	m.saves++
	return nil
}

func (m *memSnapshots) Location() string {
	return "memory://previous_files.json"
}

func (m *memSnapshots) saved() snapshot.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(snapshot.Snapshot{}, m.data...)
}

func testConfig() Config {
	return Config{BaseDir: "storage/app", Root: "public", SnapshotKey: snapshot.DefaultKey}
}
