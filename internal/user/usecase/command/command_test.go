package command

import (
	"errors"
	"sync"
	"testing"

	"github.com/tair/inventory-tracker/internal/user/domain"
)

// Mock UserRepository
type mockUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*domain.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	h := NewRegisterUserHandler(repo)

	user, err := h.Handle(RegisterUserCommand{Username: "alice", Email: "a@x.com", Password: "pw1234"})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected a user id to be assigned")
	}
	if user.Password == "pw1234" {
		t.Error("raw password must not be stored")
	}
}

func TestRegister_Validation(t *testing.T) {
	h := NewRegisterUserHandler(newMockUserRepo())

	cases := []RegisterUserCommand{
		{Email: "a@x.com", Password: "pw1234"},
		{Username: "alice", Password: "pw1234"},
		{Username: "alice", Email: "a@x.com"},
		{Username: "alice", Email: "a@x.com", Password: "pw"},
	}
	for i, cmd := range cases {
		if _, err := h.Handle(cmd); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got: %v", i, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	h := NewRegisterUserHandler(repo)

	if _, err := h.Handle(RegisterUserCommand{Username: "alice", Email: "a@x.com", Password: "pw1234"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := h.Handle(RegisterUserCommand{Username: "bob", Email: "a@x.com", Password: "pw1234"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got: %v", err)
	}

	_, err = h.Handle(RegisterUserCommand{Username: "alice", Email: "b@x.com", Password: "pw1234"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newMockUserRepo()
	if _, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{Username: "alice", Email: "a@x.com", Password: "pw1234"}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := NewLoginUserHandler(repo).Handle(LoginUserCommand{Email: "a@x.com", Password: "pw1234"})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Username != "alice" {
		t.Errorf("expected user alice, got %s", resp.User.Username)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	if _, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{Username: "alice", Email: "a@x.com", Password: "pw1234"}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	h := NewLoginUserHandler(repo)

	// Wrong password and unknown email fail identically
	if _, err := h.Handle(LoginUserCommand{Email: "a@x.com", Password: "nope"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, err := h.Handle(LoginUserCommand{Email: "ghost@x.com", Password: "pw1234"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
