package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username    string
	email       string
	password    string
	accountType domain.AccountType
	role        domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username:    fmt.Sprintf("testuser_%s", suffix),
		email:       fmt.Sprintf("testuser_%s@example.com", suffix),
		password:    "testpassword123",
		accountType: domain.AccountInfluencer,
		role:        domain.RoleUser,
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithAccountType(accountType domain.AccountType) *UserBuilder {
	b.accountType = accountType
	return b
}

func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		AccountType:  b.accountType,
		Role:         b.role,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates a user in the database and logs in via the API,
// returning the user and a bearer token.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"username": user.Username,
		"password": password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("login returned an empty token")
	}

	return user, envelope.Data.Token
}

// ProfileBuilder creates influencer profiles for tests
type ProfileBuilder struct {
	userID     uuid.UUID
	location   string
	followers  int
	categories []string
}

func NewProfileBuilder(userID uuid.UUID) *ProfileBuilder {
	return &ProfileBuilder{
		userID:     userID,
		location:   "Berlin",
		followers:  1000,
		categories: []string{"fashion"},
	}
}

func (b *ProfileBuilder) WithLocation(location string) *ProfileBuilder {
	b.location = location
	return b
}

func (b *ProfileBuilder) WithFollowers(followers int) *ProfileBuilder {
	b.followers = followers
	return b
}

func (b *ProfileBuilder) WithCategories(categories ...string) *ProfileBuilder {
	b.categories = categories
	return b
}

func (b *ProfileBuilder) Build(t *testing.T, db *gorm.DB) *domain.InfluencerProfile {
	t.Helper()

	profile := &domain.InfluencerProfile{
		ID:           uuid.New(),
		UserID:       b.userID,
		Age:          25,
		Gender:       domain.GenderOther,
		Location:     b.location,
		Followers:    b.followers,
		Languages:    datatypes.NewJSONSlice([]string{"en"}),
		Categories:   datatypes.NewJSONSlice(b.categories),
		ProfilePhoto: "https://example.com/photo.jpg",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile
}

// AuthedRequest builds an HTTP request with a bearer token attached.
func AuthedRequest(t *testing.T, method, url, token string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
