package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/password"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	password string
	scheme   password.Scheme
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("user_%s", uuid.New().String()[:8]),
		password: "testpassword123",
		scheme:   password.SchemeArgon2id,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.username = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithScheme sets the scheme used to hash the stored password
func (b *UserBuilder) WithScheme(scheme password.Scheme) *UserBuilder {
	b.scheme = scheme
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hasher, err := password.New(b.scheme, password.Options{})
	if err != nil {
		t.Fatalf("failed to create hasher: %v", err)
	}
	digest, err := hasher.Hash(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		PasswordHash: digest,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin registers the user through the HTTP API, logs in and returns
// a browser holding the session cookie
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) *http.Client {
	t.Helper()

	browser := NewBrowser(t)
	form := url.Values{"username": {b.username}, "password": {b.password}}

	resp := ts.PostForm(t, browser, "/register", form)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register: unexpected status code: %d", resp.StatusCode)
	}

	resp = ts.PostForm(t, browser, "/login", form)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login: unexpected status code: %d", resp.StatusCode)
	}

	return browser
}

// GameBuilder creates test games
type GameBuilder struct {
	owner  *domain.User
	title  string
	genre  string
	status string
}

// NewGameBuilder creates a new GameBuilder with default values
func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		title:  fmt.Sprintf("Game %s", uuid.New().String()[:6]),
		genre:  "RPG",
		status: "playing",
	}
}

// WithOwner sets the owning user
func (b *GameBuilder) WithOwner(user *domain.User) *GameBuilder {
	b.owner = user
	return b
}

// WithTitle sets the title
func (b *GameBuilder) WithTitle(title string) *GameBuilder {
	b.title = title
	return b
}

// Build creates the game in the database
func (b *GameBuilder) Build(t *testing.T, db *gorm.DB) *domain.Game {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	game := &domain.Game{
		UserID: b.owner.ID,
		Title:  b.title,
		Genre:  b.genre,
		Status: b.status,
	}

	if err := db.Create(game).Error; err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	return game
}
