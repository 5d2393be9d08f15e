package console

import "sync"

// Session is the operator session of one console instance
type Session struct {
	mu           sync.RWMutex
	token        string
	operatorName string
}

func (s *Session) SetSession(token, operatorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.operatorName = operatorName
}

func (s *Session) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.operatorName = ""
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Token returns the session token and whether one is present
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Session) OperatorName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.operatorName
}
