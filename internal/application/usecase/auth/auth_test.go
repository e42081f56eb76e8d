package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeUserRepository stores users in memory keyed by email.
type fakeUserRepository struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// fakePasswordService hashes with a reversible prefix so tests can verify.
type fakePasswordService struct{}

func (s fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s fakePasswordService) VerifyPassword(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// fakeTokenService issues deterministic tokens and tracks revocations.
type fakeTokenService struct {
	pairsIssued int
	revoked     []string
	refreshErr  error
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string) (*adapter.TokenPair, error) {
	s.pairsIssued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s-%d", userID, s.pairsIssued),
		RefreshToken: fmt.Sprintf("refresh-%s-%d", userID, s.pairsIssued),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) RefreshTokenPair(_ context.Context, refreshToken string) (*adapter.TokenPair, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	s.pairsIssued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-rotated-%d", s.pairsIssued),
		RefreshToken: fmt.Sprintf("refresh-rotated-%d", s.pairsIssued),
	}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, refreshToken string) error {
	s.revoked = append(s.revoked, refreshToken)
	return nil
}

// fakeSeeder records seeding calls and can fail on demand.
type fakeSeeder struct {
	seeded  []string
	seedErr error
}

func (s *fakeSeeder) Seed(_ context.Context, userID string) error {
	if s.seedErr != nil {
		return s.seedErr
	}
	s.seeded = append(s.seeded, userID)
	return nil
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepository, *fakeTokenService, *fakeSeeder) {
		repo := newFakeUserRepository()
		tokens := &fakeTokenService{}
		seeder := &fakeSeeder{}
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, tokens, seeder)
		return uc, repo, tokens, seeder
	}

	t.Run("registers a user and seeds defaults", func(t *testing.T) {
		uc, repo, _, seeder := newUseCase()

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.Email != "alice@example.com" {
			t.Errorf("unexpected user email %q", output.User.Email)
		}

		stored, ok := repo.users["alice@example.com"]
		if !ok {
			t.Fatal("expected user to be persisted")
		}
		if !strings.HasPrefix(stored.PasswordHash, "hashed:") {
			t.Error("expected password to be hashed before persisting")
		}
		if len(seeder.seeded) != 1 || seeder.seeded[0] != stored.ID.String() {
			t.Errorf("expected defaults seeded for %s, got %v", stored.ID, seeder.seeded)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()

		for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
			_, err := uc.Execute(ctx, RegisterUserInput{Email: email, Name: "X", Password: "long enough pass"})
			if !errors.Is(err, domainerror.ErrInvalidEmail) {
				t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
			}
		}
		if len(repo.users) != 0 {
			t.Error("expected no user to be persisted")
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "bob@example.com", Name: "Bob", Password: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %T", err)
		}
		if authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		input := RegisterUserInput{Email: "carol@example.com", Name: "Carol", Password: "long enough pass"}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("seeding failure does not abort registration", func(t *testing.T) {
		uc, repo, _, seeder := newUseCase()
		seeder.seedErr = errors.New("seed storage down")

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "dave@example.com",
			Name:     "Dave",
			Password: "long enough pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected a token pair despite the seeding failure")
		}
		if _, ok := repo.users["dave@example.com"]; !ok {
			t.Error("expected user to be persisted despite the seeding failure")
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*LoginUserUseCase, *fakeUserRepository, *fakeSeeder) {
		repo := newFakeUserRepository()
		seeder := &fakeSeeder{}
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, &fakeTokenService{}, seeder)
		user := entity.NewUser("alice@example.com", "Alice", "hashed:long enough pass")
		repo.users[user.Email] = user
		return uc, repo, seeder
	}

	t.Run("logs in with valid credentials and re-seeds defaults", func(t *testing.T) {
		uc, repo, seeder := setup()

		output, err := uc.Execute(ctx, LoginUserInput{Email: "alice@example.com", Password: "long enough pass"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		wantID := repo.users["alice@example.com"].ID.String()
		if len(seeder.seeded) != 1 || seeder.seeded[0] != wantID {
			t.Errorf("expected defaults seeded for %s, got %v", wantID, seeder.seeded)
		}
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		uc, _, _ := setup()

		_, unknownErr := uc.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "whatever pass"})
		_, wrongErr := uc.Execute(ctx, LoginUserInput{Email: "alice@example.com", Password: "wrong pass"})

		if !errors.Is(unknownErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
		}
		if !errors.Is(wrongErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Error("expected indistinguishable errors for unknown email and wrong password")
		}
	})

	t.Run("seeding failure does not abort login", func(t *testing.T) {
		uc, _, seeder := setup()
		seeder.seedErr = errors.New("seed storage down")

		output, err := uc.Execute(ctx, LoginUserInput{Email: "alice@example.com", Password: "long enough pass"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected a token pair despite the seeding failure")
		}
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the token pair", func(t *testing.T) {
		tokens := &fakeTokenService{}
		uc := NewRefreshTokenUseCase(tokens)

		output, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-old"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a rotated token pair")
		}
	})

	t.Run("maps any token service failure to an invalid token error", func(t *testing.T) {
		tokens := &fakeTokenService{refreshErr: errors.New("token expired")}
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "refresh-stale"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	ctx := context.Background()

	tokens := &fakeTokenService{}
	uc := NewLogoutUserUseCase(tokens)

	output, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: "refresh-current"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Success {
		t.Error("expected logout to report success")
	}
	if len(tokens.revoked) != 1 || tokens.revoked[0] != "refresh-current" {
		t.Errorf("expected refresh-current revoked, got %v", tokens.revoked)
	}
}
