package domain

import "time"

// IngredientType категория ингредиента в каталоге
type IngredientType string

const (
	IngredientTypeBun     IngredientType = "bun"
	IngredientTypeSauce   IngredientType = "sauce"
	IngredientTypeFilling IngredientType = "main"
)

// Ingredient позиция каталога; после загрузки не изменяется
type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      float64        `json:"proteins"`
	Fat           float64        `json:"fat"`
	Carbohydrates float64        `json:"carbohydrates"`
	Calories      float64        `json:"calories"`
	Price         int64          `json:"price"`
	Image         string         `json:"image"`
	ImageLarge    string         `json:"image_large"`
	ImageMobile   string         `json:"image_mobile"`
}

// OrderStatus статус заказа на стороне сервера
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

// Order подтверждённый сервером заказ; локально только кэшируется
type Order struct {
	ID          string      `json:"_id"`
	Number      int64       `json:"number"`
	Name        string      `json:"name"`
	Status      OrderStatus `json:"status"`
	Ingredients []string    `json:"ingredients"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// AssemblyItem начинка в конструкторе; InstanceID уникален на каждую вставку,
// поэтому один и тот же ингредиент может встречаться несколько раз
type AssemblyItem struct {
	InstanceID string     `json:"id"`
	Ingredient Ingredient `json:"ingredient"`
}

// AssemblySnapshot снимок конструктора для слоя представления
type AssemblySnapshot struct {
	Bun   *Ingredient    `json:"bun"`
	Items []AssemblyItem `json:"items"`
	Total int64          `json:"total"`
}

// FeedData публичная лента заказов с агрегатами
type FeedData struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	TotalToday int64   `json:"totalToday"`
}

// IngredientCount ингредиент с количеством вхождений в заказ
type IngredientCount struct {
	Ingredient
	Count int64 `json:"count"`
}

// OrderDetail проекция заказа: количества по ингредиентам и итоговая цена.
// Строится по требованию и нигде не сохраняется.
type OrderDetail struct {
	Order
	IngredientsInfo map[string]IngredientCount `json:"ingredientsInfo"`
	Total           int64                      `json:"total"`
	Date            time.Time                  `json:"date"`
}
