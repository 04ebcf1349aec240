package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"kupa/internal/core"
	"kupa/internal/log"
)

// Collection names in the persistence gateway.
const (
	collectionAccounts     = "accounts"
	collectionCards        = "creditCards"
	collectionTransactions = "transactions"
)

// ErrNotFound reports a delete or update against an id that is not in
// the collection. It is a no-op, not a failure: prior state is untouched.
var ErrNotFound = errors.New("transaction not found")

// Gateway is the durable key-value store the entity store loads from and
// flushes to.
type Gateway interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Put(ctx context.Context, name string, payload []byte) error
}

// Store owns the in-memory collections for the lifetime of the process.
// Accounts and cards are read-only after Load; transactions support full
// CRUD. Every mutation flushes all three collections and then notifies
// observers, whether or not the flush succeeded: a failed flush leaves
// memory ahead of disk, and that divergence is kept visible through
// FlushError until the next successful flush.
type Store struct {
	mu      sync.Mutex
	gateway Gateway
	logger  *log.Logger
	now     func() time.Time

	accounts     []core.Account
	cards        []core.CreditCard
	transactions []core.Transaction

	flushErr error
	onChange []func()
}

func New(gateway Gateway, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{
		gateway: gateway,
		logger:  logger.WithComponent(log.ComponentStore),
		now:     time.Now,
	}
}

// Load reads all three collections, replacing anything missing or
// structurally invalid with that entity's default. It never fails on bad
// payloads: recovery to defaults is logged, not fatal.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadCollection(ctx, collectionAccounts)
	if err != nil {
		return err
	}
	s.accounts = decodeAccounts(accounts, s.logger)

	cards, err := s.loadCollection(ctx, collectionCards)
	if err != nil {
		return err
	}
	s.cards = decodeCards(cards, s.logger)

	transactions, err := s.loadCollection(ctx, collectionTransactions)
	if err != nil {
		return err
	}
	s.transactions = decodeTransactions(transactions, s.logger)

	s.logger.InfoContext(ctx, "Collections loaded",
		log.FieldOperation, log.OpLoad,
		"accounts", len(s.accounts),
		"cards", len(s.cards),
		"transactions", len(s.transactions))
	return nil
}

// loadCollection fetches the raw payload, mapping "missing" to nil so the
// decoder falls back to the collection default. Gateway read errors are
// real failures: the process cannot know its own state without them.
func (s *Store) loadCollection(ctx context.Context, name string) ([]byte, error) {
	payload, found, err := s.gateway.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.InfoContext(ctx, "Collection missing, using defaults",
			log.FieldCollection, name, log.FieldOperation, log.OpLoad)
		return nil, nil
	}
	return payload, nil
}

// UpsertTransaction stores the (already validated) input. A non-zero ID
// matching an existing record replaces it in place; anything else gets a
// fresh unique id and is appended. The stored record is returned.
func (s *Store) UpsertTransaction(ctx context.Context, in core.TransactionInput) core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := core.Transaction{
		ID:            in.ID,
		Type:          in.Type,
		Amount:        in.Amount,
		Description:   in.Description,
		Category:      in.Category,
		Date:          in.Date,
		AccountID:     in.AccountID,
		PaymentMethod: in.PaymentMethod,
	}

	replaced := false
	if in.ID != 0 {
		for i := range s.transactions {
			if s.transactions[i].ID == in.ID {
				s.transactions[i] = tx
				replaced = true
				break
			}
		}
	}
	if !replaced {
		tx.ID = s.nextIDLocked()
		s.transactions = append(s.transactions, tx)
	}

	s.flushLocked(ctx)
	s.notifyLocked()

	op := log.OpUpsert
	s.logger.InfoContext(ctx, "Transaction stored",
		log.FieldOperation, op,
		log.FieldTransactionID, tx.ID,
		log.FieldAmountCents, tx.Amount.Cents,
		log.FieldAccountID, tx.AccountID,
		"replaced", replaced)
	return tx
}

// DeleteTransaction removes the record with the given id. An unknown id
// is reported as ErrNotFound and leaves state (and disk) untouched.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.flushLocked(ctx)
			s.notifyLocked()
			s.logger.InfoContext(ctx, "Transaction deleted",
				log.FieldOperation, log.OpDelete, log.FieldTransactionID, id)
			return nil
		}
	}
	s.logger.WarnContext(ctx, "Delete of unknown transaction",
		log.FieldOperation, log.OpDelete, log.FieldTransactionID, id)
	return ErrNotFound
}

// FindAccount looks up an account by id. Unknown ids are a normal
// outcome (dangling references degrade to an "unknown" display), so the
// miss is a boolean, never an error.
func (s *Store) FindAccount(id string) (core.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return core.Account{}, false
}

// FindCard looks up a credit card by id.
func (s *Store) FindCard(id string) (core.CreditCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return core.CreditCard{}, false
}

// Accounts returns a snapshot of the account collection in stored order.
func (s *Store) Accounts() []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...)
}

// Cards returns a snapshot of the card collection in stored order.
func (s *Store) Cards() []core.CreditCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.CreditCard(nil), s.cards...)
}

// Transactions returns a snapshot of the transaction collection in
// storage order. Display order is the projector's concern.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...)
}

// FlushError returns the error from the most recent flush, or nil when
// memory and disk agree. It stays set until a later flush succeeds.
func (s *Store) FlushError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushErr
}

// OnChange registers a callback fired after every applied mutation. The
// presentation layer uses it as its "derived state changed" signal and
// must re-read fresh state; no diff is carried. Callbacks run under the
// store lock and must not call back into the store.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// nextIDLocked assigns a fresh unique id: the current millisecond
// timestamp, bumped past any collision so rapid entries stay distinct.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	for s.idExistsLocked(id) {
		id++
	}
	return id
}

func (s *Store) idExistsLocked(id int64) bool {
	for _, t := range s.transactions {
		if t.ID == id {
			return true
		}
	}
	return false
}

// flushLocked persists all three collections. A failure keeps the
// in-memory mutation and records the divergence; there is no rollback
// and no retry loop; the next mutation's flush is the retry.
func (s *Store) flushLocked(ctx context.Context) {
	var errs []error
	for _, c := range []struct {
		name    string
		payload []byte
	}{
		{collectionAccounts, encodeAccounts(s.accounts)},
		{collectionCards, encodeCards(s.cards)},
		{collectionTransactions, encodeTransactions(s.transactions)},
	} {
		if err := s.gateway.Put(ctx, c.name, c.payload); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		s.flushErr = errors.Join(errs...)
		s.logger.ErrorContext(ctx, "Persistence flush failed, in-memory state kept",
			log.FieldOperation, log.OpFlush, log.FieldError, s.flushErr)
		return
	}
	if s.flushErr != nil {
		s.logger.InfoContext(ctx, "Persistence flush recovered",
			log.FieldOperation, log.OpFlush)
	}
	s.flushErr = nil
}

func (s *Store) notifyLocked() {
	for _, fn := range s.onChange {
		fn()
	}
}
