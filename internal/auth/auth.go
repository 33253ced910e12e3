package auth

import "sync"

// Store держит учётные токены сессии в памяти. Само хранение/обновление
// токенов (cookie, refresh-цикл) делает внешний модуль — здесь только
// признак "пользователь вошёл" и доступ к access-токену для запросов.
type Store struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewStore() *Store { return &Store{} }

func (s *Store) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
}

// Authenticated пользователь считается вошедшим при наличии обоих токенов
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != "" && s.refresh != ""
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}
