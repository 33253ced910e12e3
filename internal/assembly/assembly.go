package assembly

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"stellar/internal/domain"
)

var (
	// ErrWrongCategory ингредиент не подходит для операции (булка вместо
	// начинки или наоборот)
	ErrWrongCategory = errors.New("wrong ingredient category")
	// ErrInvalidIndex индекс перемещения вне диапазона — ошибка вызывающего
	ErrInvalidIndex = errors.New("index out of range")
)

// State конструктор бургера: не более одной булки и упорядоченный список
// начинок. Булка хранится один раз, но считается за две половины.
type State struct {
	mu    sync.Mutex
	bun   *domain.Ingredient
	items []domain.AssemblyItem
	newID func() string
}

func New() *State {
	return &State{newID: uuid.NewString}
}

// SetBun заменяет текущую булку; последняя установка побеждает
func (s *State) SetBun(ing domain.Ingredient) error {
	if ing.Type != domain.IngredientTypeBun {
		return ErrWrongCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := ing
	s.bun = &b
	return nil
}

// AddItem добавляет начинку в конец и возвращает её instance id. Id никогда
// не переиспользуется, даже если позицию удалили.
func (s *State) AddItem(ing domain.Ingredient) (string, error) {
	if ing.Type != domain.IngredientTypeSauce && ing.Type != domain.IngredientTypeFilling {
		return "", ErrWrongCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.items = append(s.items, domain.AssemblyItem{InstanceID: id, Ingredient: ing})
	return id, nil
}

// RemoveItem удаляет позицию по instance id; отсутствие позиции не ошибка
func (s *State) RemoveItem(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.InstanceID == instanceID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// MoveItem вынимает позицию из from и вставляет в to, сдвигая остальные.
// Проверка диапазона идёт до любых изменений.
func (s *State) MoveItem(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrInvalidIndex
	}
	if from == to {
		return nil
	}
	it := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	rest := s.items[to:]
	s.items = append(s.items[:to:to], append([]domain.AssemblyItem{it}, rest...)...)
	return nil
}

// Clear сбрасывает конструктор в пустое состояние
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bun = nil
	s.items = nil
}

// Total цена: булка дважды плюс все начинки
func (s *State) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

func (s *State) total() int64 {
	var sum int64
	if s.bun != nil {
		sum += 2 * s.bun.Price
	}
	for _, it := range s.items {
		sum += it.Ingredient.Price
	}
	return sum
}

// Snapshot копия состояния для слоя представления
func (s *State) Snapshot() domain.AssemblySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := domain.AssemblySnapshot{Total: s.total()}
	if s.bun != nil {
		b := *s.bun
		snap.Bun = &b
	}
	snap.Items = make([]domain.AssemblyItem, len(s.items))
	copy(snap.Items, s.items)
	return snap
}

// IngredientIDs плоский список id для отправки заказа: булка первой и
// последней, начинки между ними в текущем порядке. Снимок атомарен
// относительно параллельных мутаций. false — булка ещё не выбрана.
func (s *State) IngredientIDs() ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bun == nil {
		return nil, false
	}
	ids := make([]string, 0, len(s.items)+2)
	ids = append(ids, s.bun.ID)
	for _, it := range s.items {
		ids = append(ids, it.Ingredient.ID)
	}
	ids = append(ids, s.bun.ID)
	return ids, true
}
