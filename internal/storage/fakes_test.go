package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

// memStore backs the fake repositories with plain maps behind one mutex, so
// every repository call is atomic and concurrent claims race for real.
type memStore struct {
	mu sync.Mutex

	items      map[string]repository.Item
	users      map[string]repository.User
	carts      map[string]map[string]int
	orders     map[int64]*repository.Order
	orderItems map[int64][]*repository.OrderItem
	timelines  map[int64][]*repository.TimelineStep
	outbox     []*repository.OutboxTask
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		items:      make(map[string]repository.Item),
		users:      make(map[string]repository.User),
		carts:      make(map[string]map[string]int),
		orders:     make(map[int64]*repository.Order),
		orderItems: make(map[int64][]*repository.OrderItem),
		timelines:  make(map[int64][]*repository.TimelineStep),
		nextID:     1,
	}
}

type memTx struct{}

func (memTx) Commit(context.Context) error   { return nil }
func (memTx) Rollback(context.Context) error { return nil }
func (memTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errors.New("not implemented")
}
func (memTx) Get(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("not implemented")
}
func (memTx) Select(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("not implemented")
}

type memDB struct{}

func (memDB) Get(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("not implemented")
}
func (memDB) Select(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("not implemented")
}
func (memDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errors.New("not implemented")
}
func (memDB) ExecQueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }
func (memDB) BeginTx(context.Context) (db.Tx, error)                       { return memTx{}, nil }

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) GetByID(_ context.Context, id string) (*repository.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item, ok := r.store.items[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return &item, nil
}

func (r *memItemRepo) List(context.Context) ([]*repository.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*repository.Item, 0, len(r.store.items))
	for id := range r.store.items {
		item := r.store.items[id]
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*repository.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[username]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return &user, nil
}

func (r *memUserRepo) CreateUser(_ context.Context, username, password, displayName string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[username] = repository.User{Username: username, Password: password, DisplayName: displayName}
	return nil
}

func (r *memUserRepo) ValidateUser(_ context.Context, username, password string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[username]
	return ok && user.Password == password, nil
}

type memCartRepo struct{ store *memStore }

func (r *memCartRepo) entries(userID string) []*repository.CartItem {
	cart := r.store.carts[userID]
	out := make([]*repository.CartItem, 0, len(cart))
	for itemID, qty := range cart {
		out = append(out, &repository.CartItem{UserID: userID, ItemID: itemID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (r *memCartRepo) GetByUser(_ context.Context, userID string) ([]*repository.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.entries(userID), nil
}

func (r *memCartRepo) GetByUserTx(ctx context.Context, _ db.Tx, userID string) ([]*repository.CartItem, error) {
	return r.GetByUser(ctx, userID)
}

func (r *memCartRepo) AddOne(_ context.Context, userID, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.carts[userID] == nil {
		r.store.carts[userID] = make(map[string]int)
	}
	r.store.carts[userID][itemID]++
	return nil
}

func (r *memCartRepo) SetQuantity(_ context.Context, userID, itemID string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.carts[userID] == nil {
		r.store.carts[userID] = make(map[string]int)
	}
	r.store.carts[userID][itemID] = quantity
	return nil
}

func (r *memCartRepo) Remove(_ context.Context, userID, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.carts[userID], itemID)
	return nil
}

func (r *memCartRepo) ClearTx(_ context.Context, _ db.Tx, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.carts, userID)
	return nil
}

func (r *memCartRepo) ClearAll(context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.carts = make(map[string]map[string]int)
	return nil
}

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) CreateTx(_ context.Context, _ db.Tx, order *repository.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order.ID = r.store.nextID
	r.store.nextID++
	cp := *order
	r.store.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) AddItemsTx(_ context.Context, _ db.Tx, items []*repository.OrderItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, it := range items {
		cp := *it
		r.store.orderItems[it.OrderID] = append(r.store.orderItems[it.OrderID], &cp)
	}
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*repository.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *memOrderRepo) GetByIDTx(ctx context.Context, _ db.Tx, id int64) (*repository.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memOrderRepo) GetItems(_ context.Context, orderID int64) ([]*repository.OrderItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	items := r.store.orderItems[orderID]
	out := make([]*repository.OrderItem, 0, len(items))
	for _, it := range items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memOrderRepo) listWhere(match func(*repository.Order) bool) []*repository.Order {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*repository.Order
	for _, order := range r.store.orders {
		if match(order) {
			cp := *order
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memOrderRepo) GetByStatus(_ context.Context, status string) ([]*repository.Order, error) {
	return r.listWhere(func(o *repository.Order) bool { return o.Status == status }), nil
}

func (r *memOrderRepo) GetByUserID(_ context.Context, userID string) ([]*repository.Order, error) {
	return r.listWhere(func(o *repository.Order) bool { return o.UserID == userID }), nil
}

func (r *memOrderRepo) GetByClaimant(_ context.Context, deliverer string) ([]*repository.Order, error) {
	return r.listWhere(func(o *repository.Order) bool {
		return o.ClaimedBy != nil && *o.ClaimedBy == deliverer
	}), nil
}

func (r *memOrderRepo) ClaimTx(_ context.Context, _ db.Tx, orderID int64, deliverer string, at time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok || order.Status != "placed" {
		return false, nil
	}
	order.Status = "claimed"
	order.ClaimedBy = &deliverer
	order.UpdatedAt = at
	return true, nil
}

func (r *memOrderRepo) UpdateStatusTx(_ context.Context, _ db.Tx, orderID int64, status string, claimedBy *string, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return repository.ErrObjectNotFound
	}
	order.Status = status
	order.ClaimedBy = claimedBy
	order.UpdatedAt = at
	return nil
}

func (r *memOrderRepo) DeleteAll(context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders = make(map[int64]*repository.Order)
	r.store.orderItems = make(map[int64][]*repository.OrderItem)
	r.store.timelines = make(map[int64][]*repository.TimelineStep)
	return nil
}

type memTimelineRepo struct{ store *memStore }

func (r *memTimelineRepo) InitTx(_ context.Context, _ db.Tx, orderID int64, steps []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rows := make([]*repository.TimelineStep, 0, len(steps))
	for i, name := range steps {
		rows = append(rows, &repository.TimelineStep{OrderID: orderID, Position: i, Name: name})
	}
	r.store.timelines[orderID] = rows
	return nil
}

func (r *memTimelineRepo) DeleteTx(_ context.Context, _ db.Tx, orderID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.timelines, orderID)
	return nil
}

func (r *memTimelineRepo) GetByOrderID(_ context.Context, orderID int64) ([]*repository.TimelineStep, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	steps := r.store.timelines[orderID]
	out := make([]*repository.TimelineStep, 0, len(steps))
	for _, st := range steps {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTimelineRepo) GetByOrderIDTx(ctx context.Context, _ db.Tx, orderID int64) ([]*repository.TimelineStep, error) {
	return r.GetByOrderID(ctx, orderID)
}

func (r *memTimelineRepo) SetCheckedTx(_ context.Context, _ db.Tx, orderID int64, position int, checked bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, st := range r.store.timelines[orderID] {
		if st.Position == position {
			st.Checked = checked
			return nil
		}
	}
	return repository.ErrObjectNotFound
}

type memOutboxRepo struct{ store *memStore }

func (r *memOutboxRepo) CreateTx(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	cp := *task
	r.store.outbox = append(r.store.outbox, &cp)
	return nil
}

func (r *memOutboxRepo) GetProcessableTasks(context.Context, db.DB, int) ([]*repository.OutboxTask, error) {
	return nil, nil
}

func (r *memOutboxRepo) UpdateTaskStatusTx(context.Context, db.Tx, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}

func (r *memOutboxRepo) UpdateTaskStatus(context.Context, db.DB, uuid.UUID, repository.TaskStatus, int, *string, *time.Time) error {
	return nil
}

// newTestStorage wires PostgresStorage over the in-memory fakes with the
// campus sample catalog preloaded.
func newTestStorage() (*PostgresStorage, *memStore) {
	store := newMemStore()
	for _, item := range []repository.Item{
		{ID: "1", Name: "Coke", PriceCents: 109, Category: "drinks"},
		{ID: "2", Name: "Diet Coke", PriceCents: 129, Category: "drinks"},
		{ID: "3", Name: "Tropicana Orange Juice", PriceCents: 89, Category: "drinks"},
		{ID: "4", Name: "Lay's Potato Chips", PriceCents: 159, Category: "food"},
		{ID: "5", Name: "Snickers Bar", PriceCents: 99, Category: "food"},
		{ID: "6", Name: "Notebook", PriceCents: 249, Category: "other"},
	} {
		store.items[item.ID] = item
	}
	store.users["connor"] = repository.User{Username: "connor", Password: "secret", DisplayName: "Connor"}
	store.users["jacob"] = repository.User{Username: "jacob", Password: "secret", DisplayName: "Jacob"}

	stg := NewPostgresStorage(
		memDB{},
		&memItemRepo{store: store},
		&memUserRepo{store: store},
		&memCartRepo{store: store},
		&memOrderRepo{store: store},
		&memTimelineRepo{store: store},
		&memOutboxRepo{store: store},
		zap.NewNop(),
	)
	return stg, store
}
