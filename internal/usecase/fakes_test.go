package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// nopLogger глушит вывод в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeProductRepo — потокобезопасное хранилище в памяти.
type fakeProductRepo struct {
	mu        sync.Mutex
	nextID    int64
	records   map[int64]domain.Product
	lastOrder Order
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{records: make(map[int64]domain.Product)}
}

func (f *fakeProductRepo) FindActive(ctx context.Context, category *domain.Category, page PageReq, order Order) (*RecordPage, error) {
	return f.find(category, page, order, false)
}

func (f *fakeProductRepo) FindDeleted(ctx context.Context, category *domain.Category, page PageReq, order Order) (*RecordPage, error) {
	return f.find(category, page, order, true)
}

func (f *fakeProductRepo) find(category *domain.Category, page PageReq, order Order, deleted bool) (*RecordPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastOrder = order

	var items []domain.Product
	for _, p := range f.records {
		if p.IsDeleted() != deleted {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	total := int64(len(items))
	from := page.Page * page.Size
	if from > len(items) {
		from = len(items)
	}
	to := from + page.Size
	if to > len(items) {
		to = len(items)
	}

	return NewRecordPage(items[from:to], total, page), nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.records[id]
	if !ok {
		return nil, nil
	}

	return &p, nil
}

func (f *fakeProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	saved := *product
	if saved.ID == 0 {
		f.nextID++
		saved.ID = f.nextID
	}
	f.records[saved.ID] = saved

	return &saved, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context, category *domain.Category) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var items []domain.Product
	for _, p := range f.records {
		if p.IsDeleted() {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

// fakeOutboxRepo накапливает созданные события.
type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{}
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	saved := *event
	saved.ID = int64(len(f.events) + 1)
	f.events = append(f.events, &saved)

	return &saved, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*OutboxEvent
	for _, ev := range f.events {
		if ev.Status != Pending {
			continue
		}
		ev.Status = Processing
		out = append(out, ev)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ev := range f.events {
		if ev.ID == id && ev.Status == Processing {
			ev.Status = Processed
		}
	}

	return nil
}

func (f *fakeOutboxRepo) types() []OutboxEventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]OutboxEventType, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.EventType)
	}

	return out
}

// fakeCacheRepo — кэш в памяти; GetByID пишет в него из фоновой горутины,
// поэтому доступ под мьютексом.
type fakeCacheRepo struct {
	mu    sync.Mutex
	views map[int64]ProductView
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{views: make(map[int64]ProductView)}
}

func (f *fakeCacheRepo) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.views[id]
	if !ok {
		return nil, nil
	}

	return &v, nil
}

func (f *fakeCacheRepo) SetProduct(ctx context.Context, view ProductView) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.views[view.ID] = view
	return nil
}

func (f *fakeCacheRepo) DeleteProduct(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.views, id)
	return nil
}

// fakeTransactor выполняет функцию без настоящей транзакции.
type fakeTransactor struct{}

func (fakeTransactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestProductUC() (*ProductUseCase, *fakeProductRepo, *fakeOutboxRepo, *fakeCacheRepo) {
	productRepo := newFakeProductRepo()
	outboxRepo := newFakeOutboxRepo()
	cacheRepo := newFakeCacheRepo()

	uc := NewProductUC(productRepo, outboxRepo, cacheRepo, fakeTransactor{}, nopLogger{})

	return uc, productRepo, outboxRepo, cacheRepo
}
