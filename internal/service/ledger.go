package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"debt-control/internal/log"
	"debt-control/internal/models"
	"debt-control/internal/repository"

	"github.com/shopspring/decimal"
)

// EntryStore is the persistence the ledger service needs.
type EntryStore interface {
	Create(ctx context.Context, e *models.Entry) error
	Save(ctx context.Context, e *models.Entry) error
	Delete(ctx context.Context, e *models.Entry) error
	FindByID(ctx context.Context, id uint) (*models.Entry, error)
	FindAll(ctx context.Context, f models.EntryFilter) ([]models.Entry, error)
	SumByType(ctx context.Context, accountID uint, t models.EntryType) (decimal.Decimal, error)
}

type LedgerService struct {
	store  EntryStore
	logger *log.Logger
	now    func() time.Time
}

func NewLedgerService(store EntryStore, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.Nop()
	}
	return &LedgerService{
		store:  store,
		logger: logger.WithComponent(log.ComponentLedger),
		now:    time.Now,
	}
}

// Validate returns a *BusinessRuleError for the first field that is missing
// or out of range. Fields are checked in a fixed order so the message is
// deterministic: description, month, year, account, amount, type. Amounts
// must be positive with at most two decimals and 14 integer digits.
func (s *LedgerService) Validate(e *models.Entry) error {
	if strings.TrimSpace(e.Description) == "" {
		return ruleError(MsgInvalidDescription)
	}
	if e.Month < 1 || e.Month > 12 {
		return ruleError(MsgInvalidMonth)
	}
	if e.Year < 1000 || e.Year > 9999 {
		return ruleError(MsgInvalidYear)
	}
	if e.AccountID == 0 {
		return ruleError(MsgInvalidAccount)
	}
	if !e.Amount.IsPositive() || !e.Amount.Fits() {
		return ruleError(MsgInvalidAmount)
	}
	if !e.Type.Valid() {
		return ruleError(MsgInvalidType)
	}
	return nil
}

// Create validates e and stores it as a new PENDING entry.
func (s *LedgerService) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if err := s.Validate(e); err != nil {
		return nil, err
	}

	e.Status = models.StatusPending
	if e.RegisteredAt.IsZero() {
		e.RegisteredAt = s.now()
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "entry created",
		log.FieldOperation, log.OpCreate,
		log.FieldEntryID, e.ID,
		log.FieldAccountID, e.AccountID)
	return e, nil
}

func (s *LedgerService) Update(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if e.ID == 0 {
		return nil, ErrMissingID
	}
	if err := s.Validate(e); err != nil {
		return nil, err
	}
	if !e.Status.Valid() {
		return nil, ruleError(MsgInvalidStatus)
	}
	if err := s.store.Save(ctx, e); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "entry updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldEntryID, e.ID)
	return e, nil
}

func (s *LedgerService) Delete(ctx context.Context, e *models.Entry) error {
	if e.ID == 0 {
		return ErrMissingID
	}
	if err := s.store.Delete(ctx, e); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "entry deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldEntryID, e.ID)
	return nil
}

// Filter returns the entries matching the non-zero fields of f.
func (s *LedgerService) Filter(ctx context.Context, f models.EntryFilter) ([]models.Entry, error) {
	return s.store.FindAll(ctx, f)
}

// SetStatus moves e to status and persists it through Update.
// Every status is reachable from every other one.
func (s *LedgerService) SetStatus(ctx context.Context, e *models.Entry, status models.EntryStatus) (*models.Entry, error) {
	if !status.Valid() {
		return nil, ruleError(MsgInvalidStatus)
	}
	from := e.Status
	e.Status = status

	updated, err := s.Update(ctx, e)
	if err != nil {
		e.Status = from
		return nil, err
	}

	s.logger.InfoContext(ctx, "entry status changed",
		log.FieldOperation, log.OpSetStatus,
		log.FieldEntryID, e.ID,
		"from", from,
		log.FieldStatus, status)
	return updated, nil
}

// GetByID returns ErrEntryNotFound when no entry has the id.
func (s *LedgerService) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}

// Balance is the account's income total minus its expense total.
func (s *LedgerService) Balance(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	income, err := s.store.SumByType(ctx, accountID, models.EntryIncome)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := s.store.SumByType(ctx, accountID, models.EntryExpense)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense), nil
}
