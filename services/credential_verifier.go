package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/wiliafri0-dotcom/sayursegar02/repository"
)

// CredentialVerifier checks an administrator's username and password. An
// error means the lookup itself failed, not that the pair was wrong.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// PlaintextVerifier matches both fields exactly against stored records.
type PlaintextVerifier struct {
	repo repository.AdminRepository
}

func NewPlaintextVerifier(repo repository.AdminRepository) *PlaintextVerifier {
	return &PlaintextVerifier{repo: repo}
}

func (v *PlaintextVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	admin, err := v.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		return false, err
	}
	return admin != nil, nil
}

// BcryptVerifier matches the username exactly and the password against a
// stored bcrypt hash.
type BcryptVerifier struct {
	repo repository.AdminRepository
}

func NewBcryptVerifier(repo repository.AdminRepository) *BcryptVerifier {
	return &BcryptVerifier{repo: repo}
}

func (v *BcryptVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	admin, err := v.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if admin == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil, nil
}

// NewCredentialVerifier picks the verifier matching how passwords are stored.
func NewCredentialVerifier(repo repository.AdminRepository, hashed bool) CredentialVerifier {
	if hashed {
		return NewBcryptVerifier(repo)
	}
	return NewPlaintextVerifier(repo)
}
