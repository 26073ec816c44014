package test

import (
	"errors"
	"sync"

	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/notifier"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// TokenStrategyStub issues and verifies tokens via function overrides.
type TokenStrategyStub struct {
	IssueFn  func(int64, model.Role) (string, error)
	VerifyFn func(string) (*pkgAuth.Principal, error)
}

// Issue returns deterministic tokens for tests.
func (s TokenStrategyStub) Issue(userID int64, role model.Role) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, role)
	}
	return "token", nil
}

// Verify resolves previously issued token strings.
func (s TokenStrategyStub) Verify(token string) (*pkgAuth.Principal, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	return &pkgAuth.Principal{UserID: 1, Role: model.RoleCustomer}, nil
}

// NotifierStub records enqueued messages for assertions.
type NotifierStub struct {
	mu       sync.Mutex
	Messages []notifier.Message
}

// Enqueue appends the message to the recorded list.
func (n *NotifierStub) Enqueue(msg notifier.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Messages = append(n.Messages, msg)
}

// Sent returns a snapshot of recorded messages.
func (n *NotifierStub) Sent() []notifier.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notifier.Message, len(n.Messages))
	copy(out, n.Messages)
	return out
}
