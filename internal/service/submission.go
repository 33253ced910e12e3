package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stellar/internal/assembly"
	"stellar/internal/domain"
	"stellar/internal/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSubmitFailed = errors.New("order submission failed")
)

// Status состояние машины отправки заказа
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// StartOutcome чем закончилась попытка запустить отправку
type StartOutcome int

const (
	// StartAccepted попытка состоялась; смотри статус и ошибку
	StartAccepted StartOutcome = iota
	// StartSkipped нет булки или отправка уже идёт; тихий no-op
	StartSkipped
	// StartAuthRequired пользователь не вошёл; переходов состояния не было
	StartAuthRequired
)

// AuthChecker текущий статус аутентификации (только чтение)
type AuthChecker interface {
	Authenticated() bool
}

// OrderSubmitter создание заказа на удалённом сервисе
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, ingredientIDs []string) (*domain.Order, error)
}

// HistoryRefresher отложенное перечитывание истории после закрытия окна заказа
type HistoryRefresher interface {
	Refresh(ctx context.Context) error
}

// SubmissionSnapshot статус отправки для слоя представления
type SubmissionSnapshot struct {
	Status Status        `json:"status"`
	Order  *domain.Order `json:"order,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Submission workflow отправки заказа: Idle -> Submitting -> Succeeded/Failed.
// Одновременно может идти не больше одной отправки; конструктор очищается
// ровно один раз и только при успехе.
type Submission struct {
	assembly *assembly.State
	auth     AuthChecker
	api      OrderSubmitter
	history  HistoryRefresher
	delay    time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	status  Status
	order   *domain.Order
	lastErr error
}

func NewSubmission(asm *assembly.State, auth AuthChecker, api OrderSubmitter, history HistoryRefresher, refreshDelay time.Duration, log *logger.Logger) *Submission {
	return &Submission{
		assembly: asm,
		auth:     auth,
		api:      api,
		history:  history,
		delay:    refreshDelay,
		log:      log,
		status:   StatusIdle,
	}
}

// Start запускает отправку текущего состояния конструктора. Список id
// снимается до обращения к сети, поэтому мутации конструктора во время
// запроса на отправленный заказ не влияют.
func (s *Submission) Start(ctx context.Context) (StartOutcome, error) {
	s.mu.Lock()
	if s.status == StatusSubmitting {
		s.mu.Unlock()
		return StartSkipped, nil
	}
	ids, ok := s.assembly.IngredientIDs()
	if !ok {
		s.mu.Unlock()
		return StartSkipped, nil
	}
	if !s.auth.Authenticated() {
		s.mu.Unlock()
		return StartAuthRequired, nil
	}
	s.status = StatusSubmitting
	s.order = nil
	s.lastErr = nil
	s.mu.Unlock()

	order, err := s.api.SubmitOrder(ctx, ids)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrSubmitFailed, err)
		s.mu.Lock()
		s.status = StatusFailed
		s.lastErr = wrapped
		s.mu.Unlock()
		if s.log != nil {
			s.log.Error("order_submit_failed", err, map[string]any{"ingredients": len(ids)})
		}
		// конструктор не трогаем: пользователь может повторить попытку
		return StartAccepted, wrapped
	}

	s.mu.Lock()
	s.status = StatusSucceeded
	s.order = order
	s.mu.Unlock()
	// очистка строго после ответа сервера и только при успехе
	s.assembly.Clear()
	if s.log != nil {
		s.log.Info("order_submitted", map[string]any{"number": order.Number})
	}
	return StartAccepted, nil
}

// Dismiss закрывает окно результата и возвращает машину в Idle. Если был
// успешный заказ, история перечитывается с задержкой, чтобы сервер успел
// его проиндексировать; сбой перечитывания на закрытие не влияет.
func (s *Submission) Dismiss() {
	s.mu.Lock()
	hadOrder := s.order != nil
	s.order = nil
	s.lastErr = nil
	s.status = StatusIdle
	s.mu.Unlock()

	if !hadOrder || s.history == nil {
		return
	}
	time.AfterFunc(s.delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.history.Refresh(ctx); err != nil && s.log != nil {
			s.log.Error("history_refresh_failed", err, nil)
		}
	})
}

func (s *Submission) Snapshot() SubmissionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SubmissionSnapshot{Status: s.status}
	if s.order != nil {
		cp := *s.order
		snap.Order = &cp
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}
