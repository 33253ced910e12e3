package catalog

import (
	"context"
	"fmt"
	"sync"

	"stellar/internal/domain"
	"stellar/internal/logger"
)

// Loader источник каталога
type Loader interface {
	FetchIngredients(ctx context.Context) ([]domain.Ingredient, error)
}

// Catalog одноразово загружаемый справочник ингредиентов. Пока загрузка не
// завершилась, зависимые компоненты ждут Ready(), а не получают ошибку.
type Catalog struct {
	api Loader
	log *logger.Logger

	loadMu sync.Mutex
	mu     sync.RWMutex
	byID   map[string]domain.Ingredient
	list   []domain.Ingredient
	loaded bool
	ready  chan struct{}
}

func New(api Loader, log *logger.Logger) *Catalog {
	return &Catalog{
		api:   api,
		log:   log,
		byID:  make(map[string]domain.Ingredient),
		ready: make(chan struct{}),
	}
}

// Load загружает каталог; повторный вызов после успеха ничего не делает.
// Сетевой запрос идёт вне основного лока, чтобы чтения не ждали загрузку.
func (c *Catalog) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if c.Loaded() {
		return nil
	}
	list, err := c.api.FetchIngredients(ctx)
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}
	byID := make(map[string]domain.Ingredient, len(list))
	for _, ing := range list {
		byID[ing.ID] = ing
	}
	c.mu.Lock()
	c.list = list
	c.byID = byID
	c.loaded = true
	c.mu.Unlock()
	close(c.ready)
	if c.log != nil {
		c.log.Info("catalog_loaded", map[string]any{"count": len(list)})
	}
	return nil
}

// Ready канал закрывается после первой успешной загрузки
func (c *Catalog) Ready() <-chan struct{} { return c.ready }

func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Catalog) Get(id string) (domain.Ingredient, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ing, ok := c.byID[id]
	return ing, ok
}

func (c *Catalog) All() []domain.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Ingredient, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Catalog) Buns() []domain.Ingredient     { return c.byType(domain.IngredientTypeBun) }
func (c *Catalog) Sauces() []domain.Ingredient   { return c.byType(domain.IngredientTypeSauce) }
func (c *Catalog) Fillings() []domain.Ingredient { return c.byType(domain.IngredientTypeFilling) }

func (c *Catalog) byType(t domain.IngredientType) []domain.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Ingredient, 0)
	for _, ing := range c.list {
		if ing.Type == t {
			out = append(out, ing)
		}
	}
	return out
}
