package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stellar/internal/catalog"
	"stellar/internal/domain"
	"stellar/internal/logger"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderFetch    = errors.New("failed to fetch order")
)

// DetailContext чей список смотреть перед обращением к серверу
type DetailContext string

const (
	ContextProfile DetailContext = "profile"
	ContextFeed    DetailContext = "feed"
)

// ParseDetailContext пустое значение трактуется как лента
func ParseDetailContext(s string) (DetailContext, error) {
	switch s {
	case "", string(ContextFeed):
		return ContextFeed, nil
	case string(ContextProfile):
		return ContextProfile, nil
	}
	return "", ErrInvalidInput
}

// OrderSource локальный список заказов
type OrderSource interface {
	FindByNumber(number int64) (*domain.Order, bool)
}

// OrderFetcher запрос заказа по номеру у удалённого сервиса
type OrderFetcher interface {
	FetchOrderByNumber(ctx context.Context, number int64) ([]domain.Order, error)
}

// Resolver строит проекцию заказа: сперва локальные кэши, затем один
// удалённый запрос. Повторные запросы одного номера, пока первый в полёте,
// ждут его результат вместо параллельного обращения к серверу.
type Resolver struct {
	catalog *catalog.Catalog
	history OrderSource
	feed    OrderSource
	api     OrderFetcher
	log     *logger.Logger

	mu       sync.Mutex
	inflight map[inflightKey]*inflightCall
}

type inflightKey struct {
	number int64
	where  DetailContext
}

type inflightCall struct {
	done  chan struct{}
	order *domain.Order
	err   error
}

func NewResolver(cat *catalog.Catalog, history, feed OrderSource, api OrderFetcher, log *logger.Logger) *Resolver {
	return &Resolver{
		catalog:  cat,
		history:  history,
		feed:     feed,
		api:      api,
		log:      log,
		inflight: make(map[inflightKey]*inflightCall),
	}
}

// Resolve возвращает проекцию заказа или типизированную ошибку
func (r *Resolver) Resolve(ctx context.Context, number int64, where DetailContext) (*domain.OrderDetail, error) {
	if number <= 0 {
		return nil, ErrInvalidInput
	}
	var src OrderSource
	switch where {
	case ContextProfile:
		src = r.history
	case ContextFeed:
		src = r.feed
	default:
		return nil, ErrInvalidInput
	}

	order, ok := src.FindByNumber(number)
	if !ok {
		var err error
		order, err = r.fetchShared(ctx, number, where)
		if err != nil {
			return nil, err
		}
	}

	// проекция ждёт каталог: "ещё не загружен" — ожидание, а не отказ
	select {
	case <-r.catalog.Ready():
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return r.project(*order), nil
}

// fetchShared один сетевой запрос на (номер, контекст); опоздавшие ждут его
func (r *Resolver) fetchShared(ctx context.Context, number int64, where DetailContext) (*domain.Order, error) {
	key := inflightKey{number: number, where: where}
	r.mu.Lock()
	if call, ok := r.inflight[key]; ok {
		r.mu.Unlock()
		select {
		case <-call.done:
			if call.err != nil {
				return nil, call.err
			}
			cp := *call.order
			return &cp, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	r.inflight[key] = call
	r.mu.Unlock()

	call.order, call.err = r.fetch(ctx, number)
	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()
	close(call.done)

	if call.err != nil {
		return nil, call.err
	}
	cp := *call.order
	return &cp, nil
}

func (r *Resolver) fetch(ctx context.Context, number int64) (*domain.Order, error) {
	list, err := r.api.FetchOrderByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFetch, err)
	}
	if len(list) == 0 {
		return nil, ErrOrderNotFound
	}
	o := list[0]
	return &o, nil
}

// project считает количество по каждому id и итоговую цену. Id без записи
// в каталоге пропускается: рассинхрон данных не делает заказ нечитаемым.
func (r *Resolver) project(o domain.Order) *domain.OrderDetail {
	info := make(map[string]domain.IngredientCount, len(o.Ingredients))
	for _, id := range o.Ingredients {
		if ic, ok := info[id]; ok {
			ic.Count++
			info[id] = ic
			continue
		}
		ing, ok := r.catalog.Get(id)
		if !ok {
			if r.log != nil {
				r.log.Debug("order_detail_unknown_ingredient", map[string]any{
					"order": o.Number, "ingredient": id,
				})
			}
			continue
		}
		info[id] = domain.IngredientCount{Ingredient: ing, Count: 1}
	}
	var total int64
	for _, ic := range info {
		total += ic.Count * ic.Price
	}
	return &domain.OrderDetail{
		Order:           o,
		IngredientsInfo: info,
		Total:           total,
		Date:            o.CreatedAt,
	}
}
