package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"jaja-bff/model"
)

const OrderNotificationsKey = "order-notifications"

type orderNotificationSnapshot struct {
	PendingOrders []model.PendingOrder `json:"pendingOrders"`
	UnreadCount   int                  `json:"unreadCount"`
}

// OrderNotificationStore tracks orders awaiting payment. UnreadCount always
// equals the number of entries whose status is pending.
type OrderNotificationStore struct {
	mu      sync.Mutex
	orders  []model.PendingOrder
	unread  int
	storage Storage
	subs    []func()
	nowFunc func() time.Time
}

func NewOrderNotificationStore(ctx context.Context, storage Storage) *OrderNotificationStore {
	s := &OrderNotificationStore{
		storage: storage,
		nowFunc: time.Now,
	}

	blob, err := storage.Load(ctx, OrderNotificationsKey)
	if err != nil {
		log.Printf("order-notifications: load failed, starting empty: %v", err)
		return s
	}
	if blob == nil {
		return s
	}

	var snap orderNotificationSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("order-notifications: corrupt snapshot, starting empty: %v", err)
		return s
	}
	s.orders = snap.PendingOrders
	s.unread = snap.UnreadCount
	return s
}

func (s *OrderNotificationStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddPendingOrder upserts by id_data. An existing order is replaced in place;
// only genuinely new orders are prepended.
func (s *OrderNotificationStore) AddPendingOrder(ctx context.Context, order model.PendingOrder) {
	s.mu.Lock()

	replaced := false
	for i, o := range s.orders {
		if o.IDData == order.IDData {
			s.orders[i] = order
			replaced = true
			break
		}
	}
	if !replaced {
		s.orders = append([]model.PendingOrder{order}, s.orders...)
	}
	s.recountUnread()

	s.persistAndNotify(ctx)
}

func (s *OrderNotificationStore) RemovePendingOrder(ctx context.Context, idData string) {
	s.mu.Lock()

	kept := s.orders[:0:0]
	for _, o := range s.orders {
		if o.IDData != idData {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.recountUnread()

	s.persistAndNotify(ctx)
}

func (s *OrderNotificationStore) MarkOrderAsPaid(ctx context.Context, idData string) {
	s.mu.Lock()

	for i, o := range s.orders {
		if o.IDData == idData {
			s.orders[i].Status = model.OrderStatusPaid
			break
		}
	}
	s.recountUnread()

	s.persistAndNotify(ctx)
}

// ClearExpiredOrders drops every order whose payment deadline is strictly
// before now and whose status is not already expired. Orders with an
// unparseable deadline are left alone.
func (s *OrderNotificationStore) ClearExpiredOrders(ctx context.Context) {
	s.mu.Lock()

	now := s.nowFunc()
	kept := s.orders[:0:0]
	for _, o := range s.orders {
		deadline, ok := parseDeadline(o.BatasPembayaran)
		if ok && deadline.Before(now) && o.Status != model.OrderStatusExpired {
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept
	s.recountUnread()

	s.persistAndNotify(ctx)
}

func (s *OrderNotificationStore) GetPendingOrderById(idData string) (model.PendingOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.IDData == idData {
			return o, true
		}
	}
	return model.PendingOrder{}, false
}

func (s *OrderNotificationStore) ClearAllOrders(ctx context.Context) {
	s.mu.Lock()
	s.orders = nil
	s.unread = 0
	s.persistAndNotify(ctx)
}

// UpdateUnreadCount resynchronizes the derived counter without touching the
// collection, e.g. after the snapshot was restored from another writer.
func (s *OrderNotificationStore) UpdateUnreadCount(ctx context.Context) {
	s.mu.Lock()
	s.recountUnread()
	s.persistAndNotify(ctx)
}

func (s *OrderNotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

func (s *OrderNotificationStore) PendingOrders() []model.PendingOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.PendingOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

// recountUnread must be called with s.mu held.
func (s *OrderNotificationStore) recountUnread() {
	n := 0
	for _, o := range s.orders {
		if o.Status == model.OrderStatusPending {
			n++
		}
	}
	s.unread = n
}

// persistAndNotify must be called with s.mu held; it releases the lock. The
// snapshot is marshaled and saved before the lock drops: s.orders is mutated
// in place by upserts, and an unlocked save could also land after a newer
// blob, leaving the older snapshot in storage.
func (s *OrderNotificationStore) persistAndNotify(ctx context.Context) {
	blob, err := json.Marshal(orderNotificationSnapshot{PendingOrders: s.orders, UnreadCount: s.unread})
	if err != nil {
		log.Printf("order-notifications: marshal snapshot: %v", err)
	} else if err := s.storage.Save(ctx, OrderNotificationsKey, blob); err != nil {
		log.Printf("order-notifications: persist failed: %v", err)
	}

	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseDeadline(s string) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
