package orders

import (
	"context"
	"sync"

	"stellar/internal/domain"
	"stellar/internal/logger"
)

// HistoryAPI источник заказов пользователя
type HistoryAPI interface {
	FetchUserOrders(ctx context.Context) ([]domain.Order, error)
}

// FeedAPI источник публичной ленты
type FeedAPI interface {
	FetchFeedOrders(ctx context.Context) (*domain.FeedData, error)
}

// History локальный кэш истории заказов пользователя. Кэш доверенный:
// поиск по номеру не перепроверяет данные на сервере.
type History struct {
	api HistoryAPI
	log *logger.Logger

	mu     sync.RWMutex
	orders []domain.Order
}

func NewHistory(api HistoryAPI, log *logger.Logger) *History {
	return &History{api: api, log: log}
}

// Refresh перечитывает историю; при ошибке кэш остаётся прежним
func (h *History) Refresh(ctx context.Context) error {
	list, err := h.api.FetchUserOrders(ctx)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.orders = list
	h.mu.Unlock()
	if h.log != nil {
		h.log.Debug("user_orders_refreshed", map[string]any{"count": len(list)})
	}
	return nil
}

func (h *History) Orders() []domain.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Order, len(h.orders))
	copy(out, h.orders)
	return out
}

// FindByNumber линейный поиск по человекочитаемому номеру
func (h *History) FindByNumber(number int64) (*domain.Order, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return findByNumber(h.orders, number)
}

// Feed локальный кэш публичной ленты с агрегатами total/totalToday
type Feed struct {
	api FeedAPI
	log *logger.Logger

	mu         sync.RWMutex
	orders     []domain.Order
	total      int64
	totalToday int64
}

func NewFeed(api FeedAPI, log *logger.Logger) *Feed {
	return &Feed{api: api, log: log}
}

func (f *Feed) Refresh(ctx context.Context) error {
	data, err := f.api.FetchFeedOrders(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.orders = data.Orders
	f.total = data.Total
	f.totalToday = data.TotalToday
	f.mu.Unlock()
	if f.log != nil {
		f.log.Debug("feed_refreshed", map[string]any{"count": len(data.Orders)})
	}
	return nil
}

func (f *Feed) Snapshot() domain.FeedData {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := domain.FeedData{Total: f.total, TotalToday: f.totalToday}
	out.Orders = make([]domain.Order, len(f.orders))
	copy(out.Orders, f.orders)
	return out
}

func (f *Feed) FindByNumber(number int64) (*domain.Order, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return findByNumber(f.orders, number)
}

func findByNumber(list []domain.Order, number int64) (*domain.Order, bool) {
	for _, o := range list {
		if o.Number == number {
			cp := o
			return &cp, true
		}
	}
	return nil, false
}
