package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stellar/internal/assembly"
	"stellar/internal/auth"
	"stellar/internal/catalog"
	"stellar/internal/client"
	"stellar/internal/domain"
	"stellar/internal/orders"
	"stellar/internal/service"
)

type Server struct {
	engine   *gin.Engine
	catalog  *catalog.Catalog
	assembly *assembly.State
	submit   *service.Submission
	resolver *service.Resolver
	history  *orders.History
	feed     *orders.Feed
	auth     *auth.Store
}

func NewServer(cat *catalog.Catalog, asm *assembly.State, submit *service.Submission, resolver *service.Resolver, history *orders.History, feed *orders.Feed, authStore *auth.Store) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{
		engine:   r,
		catalog:  cat,
		assembly: asm,
		submit:   submit,
		resolver: resolver,
		history:  history,
		feed:     feed,
		auth:     authStore,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		ingredients := v1.Group("/ingredients")
		ingredients.GET("", s.listIngredients)
		ingredients.GET(":id", s.getIngredient)

		constructor := v1.Group("/constructor")
		constructor.GET("", s.getConstructor)
		constructor.PUT("/bun", s.setBun)
		constructor.POST("/items", s.addItem)
		constructor.DELETE("/items/:id", s.removeItem)
		constructor.POST("/items/move", s.moveItem)
		constructor.DELETE("", s.clearConstructor)

		order := v1.Group("/order")
		order.POST("", s.startOrder)
		order.GET("", s.orderStatus)
		order.DELETE("", s.dismissOrder)

		v1.GET("/orders/:number", s.orderDetail)

		feed := v1.Group("/feed")
		feed.GET("", s.getFeed)
		feed.POST("/refresh", s.refreshFeed)

		profile := v1.Group("/profile")
		profile.GET("/orders", s.getUserOrders)
		profile.POST("/orders/refresh", s.refreshUserOrders)

		session := v1.Group("/auth/session")
		session.PUT("", s.setSession)
		session.DELETE("", s.clearSession)
	}
}

// Ingredient handlers

// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Param type query string false "bun|sauce|main"
// @Success 200 {array} domain.Ingredient
// @Failure 503 {object} map[string]string
// @Router /ingredients [get]
func (s *Server) listIngredients(c *gin.Context) {
	if !s.catalog.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is not loaded yet"})
		return
	}
	switch domain.IngredientType(c.Query("type")) {
	case "":
		c.JSON(http.StatusOK, s.catalog.All())
	case domain.IngredientTypeBun:
		c.JSON(http.StatusOK, s.catalog.Buns())
	case domain.IngredientTypeSauce:
		c.JSON(http.StatusOK, s.catalog.Sauces())
	case domain.IngredientTypeFilling:
		c.JSON(http.StatusOK, s.catalog.Fillings())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown ingredient type"})
	}
}

// @Summary Get ingredient by id
// @Tags ingredients
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ingredients/{id} [get]
func (s *Server) getIngredient(c *gin.Context) {
	ing, ok := s.lookupIngredient(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ing)
}

// Constructor handlers

type ingredientRef struct {
	IngredientID string `json:"ingredient_id"`
}

// @Summary Constructor snapshot
// @Tags constructor
// @Produce json
// @Success 200 {object} domain.AssemblySnapshot
// @Router /constructor [get]
func (s *Server) getConstructor(c *gin.Context) {
	c.JSON(http.StatusOK, s.assembly.Snapshot())
}

// @Summary Set bun
// @Tags constructor
// @Accept json
// @Produce json
// @Param input body ingredientRef true "Bun"
// @Success 200 {object} domain.AssemblySnapshot
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /constructor/bun [put]
func (s *Server) setBun(c *gin.Context) {
	var req ingredientRef
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ing, ok := s.lookupIngredient(c, req.IngredientID)
	if !ok {
		return
	}
	if err := s.assembly.SetBun(ing); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.assembly.Snapshot())
}

// @Summary Add item
// @Tags constructor
// @Accept json
// @Produce json
// @Param input body ingredientRef true "Item"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /constructor/items [post]
func (s *Server) addItem(c *gin.Context) {
	var req ingredientRef
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ing, ok := s.lookupIngredient(c, req.IngredientID)
	if !ok {
		return
	}
	id, err := s.assembly.AddItem(ing)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"instance_id": id})
}

// @Summary Remove item by instance id
// @Tags constructor
// @Param id path string true "Instance ID"
// @Success 204
// @Router /constructor/items/{id} [delete]
func (s *Server) removeItem(c *gin.Context) {
	// отсутствие позиции не ошибка
	s.assembly.RemoveItem(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type moveItemReq struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// @Summary Move item
// @Tags constructor
// @Accept json
// @Produce json
// @Param input body moveItemReq true "Move"
// @Success 200 {object} domain.AssemblySnapshot
// @Failure 400 {object} map[string]string
// @Router /constructor/items/move [post]
func (s *Server) moveItem(c *gin.Context) {
	var req moveItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.assembly.MoveItem(req.FromIndex, req.ToIndex); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.assembly.Snapshot())
}

// @Summary Clear constructor
// @Tags constructor
// @Success 204
// @Router /constructor [delete]
func (s *Server) clearConstructor(c *gin.Context) {
	s.assembly.Clear()
	c.Status(http.StatusNoContent)
}

// Order handlers

// @Summary Submit assembled burger as order
// @Tags order
// @Produce json
// @Success 201 {object} service.SubmissionSnapshot
// @Success 200 {object} service.SubmissionSnapshot "no-op: no bun or already submitting"
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /order [post]
func (s *Server) startOrder(c *gin.Context) {
	outcome, err := s.submit.Start(c.Request.Context())
	switch outcome {
	case service.StartAuthRequired:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
	case service.StartSkipped:
		c.JSON(http.StatusOK, s.submit.Snapshot())
	default:
		if err != nil {
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s.submit.Snapshot())
	}
}

// @Summary Submission status
// @Tags order
// @Produce json
// @Success 200 {object} service.SubmissionSnapshot
// @Router /order [get]
func (s *Server) orderStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.submit.Snapshot())
}

// @Summary Dismiss submission result
// @Tags order
// @Produce json
// @Success 200 {object} service.SubmissionSnapshot
// @Router /order [delete]
func (s *Server) dismissOrder(c *gin.Context) {
	s.submit.Dismiss()
	c.JSON(http.StatusOK, s.submit.Snapshot())
}

// @Summary Order detail by number
// @Tags orders
// @Produce json
// @Param number path int true "Order number"
// @Param context query string false "profile|feed"
// @Success 200 {object} domain.OrderDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders/{number} [get]
func (s *Server) orderDetail(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}
	where, err := service.ParseDetailContext(c.Query("context"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid context"})
		return
	}
	detail, err := s.resolver.Resolve(c.Request.Context(), number, where)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Feed and history handlers

// @Summary Cached public feed
// @Tags feed
// @Produce json
// @Success 200 {object} domain.FeedData
// @Router /feed [get]
func (s *Server) getFeed(c *gin.Context) {
	c.JSON(http.StatusOK, s.feed.Snapshot())
}

// @Summary Refresh public feed from remote
// @Tags feed
// @Produce json
// @Success 200 {object} domain.FeedData
// @Failure 502 {object} map[string]string
// @Router /feed/refresh [post]
func (s *Server) refreshFeed(c *gin.Context) {
	if err := s.feed.Refresh(c.Request.Context()); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.feed.Snapshot())
}

// @Summary Cached user order history
// @Tags profile
// @Produce json
// @Success 200 {array} domain.Order
// @Router /profile/orders [get]
func (s *Server) getUserOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.history.Orders())
}

// @Summary Refresh user order history from remote
// @Tags profile
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 502 {object} map[string]string
// @Router /profile/orders/refresh [post]
func (s *Server) refreshUserOrders(c *gin.Context) {
	if err := s.history.Refresh(c.Request.Context()); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.history.Orders())
}

// Session handlers

type sessionReq struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// @Summary Set session tokens
// @Tags auth
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /auth/session [put]
func (s *Server) setSession(c *gin.Context) {
	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both tokens are required"})
		return
	}
	s.auth.SetTokens(req.AccessToken, req.RefreshToken)
	c.Status(http.StatusNoContent)
}

// @Summary Clear session tokens
// @Tags auth
// @Success 204
// @Router /auth/session [delete]
func (s *Server) clearSession(c *gin.Context) {
	s.auth.Clear()
	c.Status(http.StatusNoContent)
}

// lookupIngredient отвечает 503, пока каталог не загружен, и 404 при
// неизвестном id
func (s *Server) lookupIngredient(c *gin.Context, id string) (domain.Ingredient, bool) {
	if !s.catalog.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is not loaded yet"})
		return domain.Ingredient{}, false
	}
	ing, ok := s.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return domain.Ingredient{}, false
	}
	return ing, true
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, assembly.ErrWrongCategory),
		errors.Is(err, assembly.ErrInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrOrderFetch),
		errors.Is(err, service.ErrSubmitFailed),
		errors.Is(err, client.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
