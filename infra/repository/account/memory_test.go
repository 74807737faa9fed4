package account_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo *infraaccount.MemoryRepository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = infraaccount.NewMemory()
	s.ctx = context.Background()
}

func (s *MemoryRepositoryTestSuite) mustCreate(cpf, name string) *account.Account {
	acc, err := account.New().WithTaxID(cpf).WithName(name).Build()
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Create(s.ctx, acc))
	return acc
}

func (s *MemoryRepositoryTestSuite) TestCreateAndFind() {
	created := s.mustCreate("111", "Ana")

	got, err := s.repo.FindByTaxID(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal("Ana", got.Name)
	s.Empty(got.Statement)
}

func (s *MemoryRepositoryTestSuite) TestCreateDuplicate() {
	s.mustCreate("111", "Ana")
	dup, err := account.New().WithTaxID("111").WithName("Other").Build()
	s.Require().NoError(err)

	err = s.repo.Create(s.ctx, dup)
	s.ErrorIs(err, account.ErrCustomerAlreadyExists)

	got, err := s.repo.FindByTaxID(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Ana", got.Name, "duplicate create must not overwrite")
}

func (s *MemoryRepositoryTestSuite) TestCreateWithoutTaxID() {
	s.ErrorIs(s.repo.Create(s.ctx, &account.Account{}), account.ErrInvalidTaxID)
	s.ErrorIs(s.repo.Create(s.ctx, nil), account.ErrInvalidTaxID)
}

func (s *MemoryRepositoryTestSuite) TestFindIsCaseSensitive() {
	s.mustCreate("abc", "Ana")
	_, err := s.repo.FindByTaxID(s.ctx, "ABC")
	s.ErrorIs(err, account.ErrCustomerNotFound)
	_, err = s.repo.FindByTaxID(s.ctx, "")
	s.ErrorIs(err, account.ErrCustomerNotFound)
}

func (s *MemoryRepositoryTestSuite) TestSnapshotsAreIsolated() {
	s.mustCreate("111", "Ana")
	got, err := s.repo.FindByTaxID(s.ctx, "111")
	s.Require().NoError(err)

	got.Name = "changed"
	_, err = got.Credit(decimal.NewFromInt(10), "", time.Now())
	s.Require().NoError(err)

	again, err := s.repo.FindByTaxID(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Ana", again.Name)
	s.Empty(again.Statement)
}

func (s *MemoryRepositoryTestSuite) TestUpdate() {
	s.mustCreate("111", "Ana")

	updated, err := s.repo.Update(s.ctx, "111", func(acc *account.Account) error {
		acc.Name = "Ana Maria"
		acc.TaxID = "999"
		return nil
	})
	s.Require().NoError(err)
	s.Equal("Ana Maria", updated.Name)
	s.Equal("111", updated.TaxID, "key must not change")

	_, err = s.repo.FindByTaxID(s.ctx, "999")
	s.ErrorIs(err, account.ErrCustomerNotFound)
}

func (s *MemoryRepositoryTestSuite) TestUpdateErrorDiscardsChange() {
	s.mustCreate("111", "Ana")
	boom := errors.New("boom")

	_, err := s.repo.Update(s.ctx, "111", func(acc *account.Account) error {
		acc.Name = "half-done"
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.repo.FindByTaxID(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Ana", got.Name)
}

func (s *MemoryRepositoryTestSuite) TestUpdateUnknown() {
	_, err := s.repo.Update(s.ctx, "404", func(*account.Account) error { return nil })
	s.ErrorIs(err, account.ErrCustomerNotFound)
}

func (s *MemoryRepositoryTestSuite) TestDeleteOnlyTarget() {
	s.mustCreate("111", "Ana")
	s.mustCreate("222", "Bia")
	s.mustCreate("333", "Caio")

	s.Require().NoError(s.repo.Delete(s.ctx, "222"))

	_, err := s.repo.FindByTaxID(s.ctx, "222")
	s.ErrorIs(err, account.ErrCustomerNotFound)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("111", all[0].TaxID)
	s.Equal("333", all[1].TaxID)

	s.ErrorIs(s.repo.Delete(s.ctx, "222"), account.ErrCustomerNotFound)
}

func (s *MemoryRepositoryTestSuite) TestListKeepsCreationOrder() {
	for i := range 10 {
		s.mustCreate(fmt.Sprintf("%03d", 10-i), "n")
	}
	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 10)
	s.Equal("010", all[0].TaxID)
	s.Equal("001", all[9].TaxID)

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(10, n)
}

func (s *MemoryRepositoryTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.repo.FindByTaxID(ctx, "111")
	s.ErrorIs(err, context.Canceled)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	t.Parallel()
	repo := infraaccount.NewMemory()
	ctx := context.Background()

	acc, err := account.New().WithTaxID("111").Build()
	require.NoError(t, err)
	_, err = acc.Credit(decimal.NewFromInt(100), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, acc))

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "111", func(a *account.Account) error {
				_, err := a.Debit(decimal.NewFromInt(10), "", time.Now())
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, account.ErrInsufficientFunds)
		}()
	}
	wg.Wait()

	got, err := repo.FindByTaxID(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 10, accepted)
	assert.True(t, got.Balance().IsZero(), "balance=%s", got.Balance())
	assert.Len(t, got.Statement, 11)
}
