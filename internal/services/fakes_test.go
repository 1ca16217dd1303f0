package services

import (
	"context"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"service-tasks/internal/cache"
	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/eventbus"
	"service-tasks/pkg/utils"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ctxAs(role, login, region string) context.Context {
	return utils.WithClaims(context.Background(), &dto.UserClaims{
		UserID: 1,
		Login:  login,
		Name:   login,
		Role:   role,
		Region: region,
	})
}

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	tasks  map[int64]entities.Task
	nextID int64
	lists  int
}

func newFakeTaskRepo(tasks ...entities.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: map[int64]entities.Task{}, nextID: 100}
	for _, t := range tasks {
		if t.Version == 0 {
			t.Version = 1
		}
		r.tasks[t.ID] = t
	}
	return r
}

func (r *fakeTaskRepo) List(_ context.Context, f repositories.TaskFilter) ([]entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	var out []entities.Task
	for _, t := range r.tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Region != "" && f.Region != "Україна" && t.Region != f.Region {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id int64) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) FindForUpdate(ctx context.Context, _ pgx.Tx, id int64) (*entities.Task, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeTaskRepo) Create(_ context.Context, _ pgx.Tx, t *entities.Task) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *t
	created.ID = r.nextID
	created.Version = 1
	r.tasks[created.ID] = created
	return &created, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, _ pgx.Tx, t *entities.Task) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.tasks[t.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if current.Version != t.Version {
		return nil, apperrors.ErrConflict
	}
	updated := *t
	updated.Version++
	r.tasks[t.ID] = updated
	return &updated, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, _ pgx.Tx, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeHistoryRepo struct {
	items []entities.TaskHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, _ pgx.Tx, items ...entities.TaskHistory) error {
	for _, it := range items {
		it.ID = uint64(len(r.items) + 1)
		r.items = append(r.items, it)
	}
	return nil
}

func (r *fakeHistoryRepo) FindByTaskID(_ context.Context, taskID int64) ([]entities.TaskHistory, error) {
	var out []entities.TaskHistory
	for _, it := range r.items {
		if it.TaskID == taskID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) eventTypes() []string {
	out := make([]string, len(r.items))
	for i, it := range r.items {
		out[i] = it.EventType
	}
	return out
}

type fakeAttachRepo struct {
	items map[uint64]entities.Attachment
}

func newFakeAttachRepo(items ...entities.Attachment) *fakeAttachRepo {
	r := &fakeAttachRepo{items: map[uint64]entities.Attachment{}}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAttachRepo) Create(_ context.Context, _ pgx.Tx, a *entities.Attachment) (uint64, error) {
	id := uint64(len(r.items) + 1)
	stored := *a
	stored.ID = id
	stored.CreatedAt = fixedNow
	r.items[id] = stored
	return id, nil
}

func (r *fakeAttachRepo) FindAllByTaskID(_ context.Context, taskID int64) ([]entities.Attachment, error) {
	var out []entities.Attachment
	for _, a := range r.items {
		if a.TaskID == taskID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttachRepo) FindByID(_ context.Context, id uint64) (*entities.Attachment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAttachRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	delete(r.items, id)
	return nil
}

type fakeStorage struct {
	saved   map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage { return &fakeStorage{saved: map[string]string{}} }

func (s *fakeStorage) Save(file io.Reader, name, prefix string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	path := prefix + "/" + name
	s.saved[path] = string(data)
	return path, nil
}

func (s *fakeStorage) Delete(path string) error {
	s.deleted = append(s.deleted, path)
	delete(s.saved, path)
	return nil
}

type fakeListCache struct {
	data map[string][]entities.Task
}

func newFakeListCache() *fakeListCache { return &fakeListCache{data: map[string][]entities.Task{}} }

func (c *fakeListCache) KeyFor(_ context.Context, status, region string) string {
	return cache.ListKey(status, region)
}

func (c *fakeListCache) GetList(_ context.Context, key string) ([]entities.Task, bool) {
	t, ok := c.data[key]
	return t, ok
}

func (c *fakeListCache) SetList(_ context.Context, key string, tasks []entities.Task) {
	c.data[key] = tasks
}

type fakePublisher struct {
	events []eventbus.Event
}

func (p *fakePublisher) Publish(_ context.Context, e eventbus.Event) {
	p.events = append(p.events, e)
}

type memoryCache struct {
	data map[string]string
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) DelByPattern(context.Context, string) (int, error) { return 0, nil }

func (m *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *memoryCache) Expire(context.Context, string, time.Duration) (bool, error) { return true, nil }

func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}
