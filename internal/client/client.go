package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"stellar/internal/domain"
)

// ErrRemote удалённый сервис ответил отказом или недоступен
var ErrRemote = errors.New("remote api error")

// TokenSource источник access-токена для авторизованных запросов
type TokenSource interface {
	AccessToken() string
}

// Client HTTP-клиент сервиса заказов
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient, tokens: tokens}
}

type ingredientsResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    []domain.Ingredient `json:"data"`
}

type orderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Name    string       `json:"name"`
	Order   domain.Order `json:"order"`
}

type ordersResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Orders     []domain.Order `json:"orders"`
	Total      int64          `json:"total"`
	TotalToday int64          `json:"totalToday"`
}

// FetchIngredients одноразовая загрузка каталога
func (c *Client) FetchIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	var resp ingredientsResponse
	if err := c.do(ctx, http.MethodGet, "/ingredients", nil, false, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	return resp.Data, nil
}

// SubmitOrder создаёт заказ из плоского списка id ингредиентов
func (c *Client) SubmitOrder(ctx context.Context, ingredientIDs []string) (*domain.Order, error) {
	body := map[string][]string{"ingredients": ingredientIDs}
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", body, true, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	o := resp.Order
	if o.Name == "" {
		o.Name = resp.Name
	}
	return &o, nil
}

// FetchOrderByNumber пустой список означает "заказ не найден"
func (c *Client) FetchOrderByNumber(ctx context.Context, number int64) ([]domain.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", number), nil, false, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	return resp.Orders, nil
}

// FetchUserOrders история заказов текущего пользователя
func (c *Client) FetchUserOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, true, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	return resp.Orders, nil
}

// FetchFeedOrders публичная лента
func (c *Client) FetchFeedOrders(ctx context.Context) (*domain.FeedData, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders/all", nil, false, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Message)
	}
	return &domain.FeedData{Orders: resp.Orders, Total: resp.Total, TotalToday: resp.TotalToday}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, authorized bool, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorized && c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrRemote, err)
	}
	return nil
}
