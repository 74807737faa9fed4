package account

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/account"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
)

// record pairs a stored account with the lock serialising its writers.
type record struct {
	mu  sync.Mutex
	acc *account.Account
	seq uint64
}

// MemoryRepository is the in-memory account store. The index lock guards the map,
// each record lock guards one account's fields and statement.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*record
	nextSeq uint64
}

// NewMemory creates an empty in-memory account store.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*record),
	}
}

// Create implements account.Repository.
func (r *MemoryRepository) Create(ctx context.Context, acc *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if acc == nil || acc.TaxID == "" {
		return account.ErrInvalidTaxID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[acc.TaxID]; exists {
		return account.ErrCustomerAlreadyExists
	}
	r.nextSeq++
	r.records[acc.TaxID] = &record{acc: acc.Clone(), seq: r.nextSeq}
	return nil
}

// FindByTaxID implements account.Repository.
func (r *MemoryRepository) FindByTaxID(ctx context.Context, cpf string) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(cpf)
	if !ok {
		return nil, account.ErrCustomerNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.acc == nil {
		return nil, account.ErrCustomerNotFound
	}
	return rec.acc.Clone(), nil
}

// Update implements account.Repository.
func (r *MemoryRepository) Update(ctx context.Context, cpf string, fn repo.MutateFunc) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(cpf)
	if !ok {
		return nil, account.ErrCustomerNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	// deleted between lookup and lock
	if rec.acc == nil {
		return nil, account.ErrCustomerNotFound
	}
	working := rec.acc.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	// the key is immutable
	working.TaxID = rec.acc.TaxID
	rec.acc = working
	return working.Clone(), nil
}

// Delete implements account.Repository.
func (r *MemoryRepository) Delete(ctx context.Context, cpf string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	rec, ok := r.records[cpf]
	if ok {
		delete(r.records, cpf)
	}
	r.mu.Unlock()
	if !ok {
		return account.ErrCustomerNotFound
	}
	rec.mu.Lock()
	rec.acc = nil
	rec.mu.Unlock()
	return nil
}

// List implements account.Repository.
func (r *MemoryRepository) List(ctx context.Context) ([]*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	recs := make([]*record, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	sortBySeq(recs)
	out := make([]*account.Account, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		if rec.acc != nil {
			out = append(out, rec.acc.Clone())
		}
		rec.mu.Unlock()
	}
	return out, nil
}

// Count implements account.Repository.
func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

func (r *MemoryRepository) lookup(cpf string) (*record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[cpf]
	return rec, ok
}

func sortBySeq(recs []*record) {
	slices.SortFunc(recs, func(a, b *record) int {
		return cmp.Compare(a.seq, b.seq)
	})
}

var _ repo.Repository = (*MemoryRepository)(nil)
