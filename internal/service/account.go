package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"debt-control/internal/log"
	"debt-control/internal/models"
	"debt-control/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountStore is the persistence the account service needs.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	Save(ctx context.Context, a *models.Account) error
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AccountService struct {
	store      AccountStore
	bcryptCost int
	logger     *log.Logger
}

func NewAccountService(store AccountStore, bcryptCost int, logger *log.Logger) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &AccountService{
		store:      store,
		bcryptCost: bcryptCost,
		logger:     logger.WithComponent(log.ComponentAccount),
	}
}

// Register creates an account after checking the email is not taken. Name
// and email are stored exactly as given; the password is kept only as a
// bcrypt hash.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	if err := s.ValidateEmail(ctx, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.Create(ctx, account); err != nil {
		// a concurrent registration can win between the check and the insert
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "account registered",
		log.FieldOperation, log.OpRegister,
		log.FieldAccountID, account.ID)
	return account, nil
}

// ValidateEmail fails with ErrDuplicateEmail when email already belongs to an account.
func (s *AccountService) ValidateEmail(ctx context.Context, email string) error {
	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}
	return nil
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFoundForEmail
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "authentication failed",
			log.FieldOperation, log.OpAuthenticate,
			log.FieldAccountID, account.ID)
		return nil, ErrInvalidPassword
	}
	return account, nil
}

// GetByID returns ErrAccountNotFound when no account has the id.
func (s *AccountService) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) UpdateName(ctx context.Context, id uint, name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ruleError(MsgInvalidName)
	}
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Name = name
	if err := s.store.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ChangePassword replaces the stored hash once the old password checks out.
func (s *AccountService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ruleError(MsgInvalidPassword)
	}
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = string(hash)
	return s.store.Save(ctx, account)
}
