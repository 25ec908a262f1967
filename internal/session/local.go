package session

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ludo/internal/domain"
	"ludo/internal/store"
)

const bucketUsers = "users"

// account is the stored form of a local identity.
type account struct {
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalProvider keeps accounts in the local database with bcrypt
// password hashes.
type LocalProvider struct {
	db *store.DB
}

var _ Provider = (*LocalProvider)(nil)

// NewLocalProvider creates a provider backed by db.
func NewLocalProvider(db *store.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

func (p *LocalProvider) Authenticate(username, password string) (*domain.User, error) {
	key := accountKey(username)
	var acct account
	if !p.db.Get(bucketUsers, key, &acct) {
		return nil, domain.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}
	return &domain.User{
		Username:  acct.Username,
		Email:     acct.Email,
		CreatedAt: acct.CreatedAt,
	}, nil
}

func (p *LocalProvider) Register(username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}

	key := accountKey(username)
	var existing account
	if p.db.Get(bucketUsers, key, &existing) {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct := account{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := p.db.Put(bucketUsers, key, acct); err != nil {
		return nil, err
	}
	return &domain.User{
		Username:  acct.Username,
		Email:     acct.Email,
		CreatedAt: acct.CreatedAt,
	}, nil
}

// accountKey normalizes the username so lookups are case-insensitive.
func accountKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
