package service

import (
	"context"
	"errors"

	"debt-control/internal/models"
	"debt-control/internal/repository"

	"github.com/shopspring/decimal"
)

type fakeAccountStore struct {
	byID    map[uint]*models.Account
	nextID  uint
	saves     int
	findErr   error
	createErr error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{byID: make(map[uint]*models.Account)}
}

func (f *fakeAccountStore) Create(_ context.Context, a *models.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAccountStore) Save(_ context.Context, a *models.Account) error {
	f.saves++
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAccountStore) FindByID(_ context.Context, id uint) (*models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeEntryStore struct {
	byID    map[uint]*models.Entry
	nextID  uint
	creates int
	saves   int
	deletes int
	sums    map[models.EntryType]decimal.Decimal
	saveErr error
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{
		byID: make(map[uint]*models.Entry),
		sums: make(map[models.EntryType]decimal.Decimal),
	}
}

func (f *fakeEntryStore) Create(_ context.Context, e *models.Entry) error {
	f.creates++
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEntryStore) Save(_ context.Context, e *models.Entry) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEntryStore) Delete(_ context.Context, e *models.Entry) error {
	f.deletes++
	delete(f.byID, e.ID)
	return nil
}

func (f *fakeEntryStore) FindByID(_ context.Context, id uint) (*models.Entry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEntryStore) FindAll(_ context.Context, filter models.EntryFilter) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range f.byID {
		if filter.AccountID != 0 && e.AccountID != filter.AccountID {
			continue
		}
		if filter.Description != "" && e.Description != filter.Description {
			continue
		}
		if filter.Month != 0 && e.Month != filter.Month {
			continue
		}
		if filter.Year != 0 && e.Year != filter.Year {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEntryStore) SumByType(_ context.Context, _ uint, t models.EntryType) (decimal.Decimal, error) {
	if v, ok := f.sums[t]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}
