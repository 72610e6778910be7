package repo

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is a Repository kept in process memory. It backs tests and servers
// started without DATABASE_URL.
type Memory struct {
	mu    sync.RWMutex
	users map[string]memUser
	books []memBook
}

type memUser struct {
	id              int
	email, password string
}

type memBook struct {
	info   BookInfo
	userID int
	data   []byte
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]memUser)}
}

func (m *Memory) CreateUser(_ context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[login]; ok {
		return 0, ErrUserExists
	}
	id := len(m.users) + 1
	m.users[login] = memUser{id: id, email: email, password: password}
	return id, nil
}

func (m *Memory) GetByLogin(_ context.Context, login string) (int, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[login]
	if !ok {
		return 0, "", ErrNotFound
	}
	return u.id, u.password, nil
}

func (m *Memory) SaveBook(_ context.Context, userID int, name string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := len(m.books) + 1
	m.books = append(m.books, memBook{
		info:   BookInfo{ID: id, Name: name, Created: time.Now().UTC()},
		userID: userID,
		data:   slices.Clone(data),
	})
	return id, nil
}

func (m *Memory) ListBooks(_ context.Context, userID int) ([]BookInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []BookInfo
	for _, b := range m.books {
		if b.userID == userID {
			out = append(out, b.info)
		}
	}
	return out, nil
}

func (m *Memory) GetBook(_ context.Context, userID, id int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 1 || id > len(m.books) || m.books[id-1].userID != userID {
		return nil, ErrNotFound
	}
	return slices.Clone(m.books[id-1].data), nil
}
