package service

import (
	"context"
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/repository/contract"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. They interpret the handful of
// specifications the services under test actually use.

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type relayCall struct {
	userID    uuid.UUID
	eventType string
	payload   interface{}
}

type fakeRelay struct {
	calls []relayCall
}

func (f *fakeRelay) Publish(userID uuid.UUID, eventType string, payload interface{}) {
	f.calls = append(f.calls, relayCall{userID: userID, eventType: eventType, payload: payload})
}

func (f *fakeRelay) callsFor(userID uuid.UUID) []relayCall {
	var out []relayCall
	for _, c := range f.calls {
		if c.userID == userID {
			out = append(out, c)
		}
	}
	return out
}

type fakeBlobStore struct {
	destroyed []string
}

func (f *fakeBlobStore) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakeUserRepository struct {
	users  map[uuid.UUID]*entity.User
	tokens map[uuid.UUID]*entity.UserRefreshToken
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[uuid.UUID]*entity.UserRefreshToken),
	}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			return r.users[s.ID], nil
		case specification.ByEmail:
			for _, u := range r.users {
				if u.Email == s.Email {
					return u, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepository) CreateProvider(ctx context.Context, provider *entity.UserProvider) error {
	return nil
}

func (r *fakeUserRepository) FindProvider(ctx context.Context, specs ...specification.Specification) (*entity.UserProvider, error) {
	return nil, nil
}

func (r *fakeUserRepository) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.tokens[token.Id] = token
	return nil
}

func (r *fakeUserRepository) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	var hash string
	activeOnly := false
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByTokenHash:
			hash = s.Hash
		case specification.ActiveToken:
			activeOnly = true
		}
	}

	for _, t := range r.tokens {
		if t.TokenHash != hash {
			continue
		}
		if activeOnly && (t.Revoked || time.Now().After(t.ExpiresAt)) {
			continue
		}
		return t, nil
	}
	return nil, nil
}

func (r *fakeUserRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	if t, ok := r.tokens[id]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *fakeUserRepository) RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error {
	for _, t := range r.tokens {
		if t.UserId == userId {
			t.Revoked = true
		}
	}
	return nil
}

type fakeMessageRepository struct {
	messages      []*entity.Message
	markReadCalls [][2]uuid.UUID
}

func (r *fakeMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *fakeMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, m := range r.messages {
		if m.Id == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeMessageRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			for _, m := range r.messages {
				if m.Id == s.ID {
					return m, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var conv *specification.Conversation
	for _, spec := range specs {
		if s, ok := spec.(specification.Conversation); ok {
			conv = &s
		}
	}

	out := make([]*entity.Message, 0, len(r.messages))
	for _, m := range r.messages {
		if conv != nil {
			between := (m.SenderId == conv.UserA && m.ReceiverId == conv.UserB) ||
				(m.SenderId == conv.UserB && m.ReceiverId == conv.UserA)
			if !between {
				continue
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *fakeMessageRepository) MarkConversationRead(ctx context.Context, readerId, otherId uuid.UUID) error {
	r.markReadCalls = append(r.markReadCalls, [2]uuid.UUID{readerId, otherId})
	for _, m := range r.messages {
		if m.SenderId == otherId && m.ReceiverId == readerId {
			m.IsRead = true
		}
	}
	return nil
}

type fakeUow struct {
	users    *fakeUserRepository
	messages *fakeMessageRepository
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) MessageRepository() contract.MessageRepository         { return u.messages }
func (u *fakeUow) CarRepository() contract.CarRepository                 { return nil }
func (u *fakeUow) TestDriveRepository() contract.TestDriveRepository     { return nil }
func (u *fakeUow) RoleRequestRepository() contract.RoleRequestRepository { return nil }
func (u *fakeUow) PromotionRepository() contract.PromotionRepository     { return nil }
func (u *fakeUow) CarEmbeddingRepository() contract.CarEmbeddingRepository {
	return nil
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
