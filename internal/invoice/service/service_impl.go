// Package service implements the in-memory invoice editing session.
package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kishankathi24/SpeedyBill/internal/clock"
	"github.com/kishankathi24/SpeedyBill/internal/config"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store holds the single session invoice. Each patch replaces one nested
// sub-object; untouched siblings keep their prior value (and, for the items
// slice, their prior identity). Reads hand out snapshots, never internal
// references.
type Store struct {
	mu        sync.Mutex
	invoice   domain.Invoice
	rev       uint64
	watchers  map[int]chan uint64
	nextWatch int

	clk      clock.Clock
	currency string
	log      *zap.Logger
}

// NewSession creates the process-wide editing session. It is constructed
// once at startup and injected wherever read or mutate access is needed.
func NewSession(cfg config.Config, clk clock.Clock, log *zap.Logger) domain.Session {
	s := &Store{
		clk:      clk,
		currency: cfg.Currency,
		log:      log,
		watchers: make(map[int]chan uint64),
	}
	s.invoice = domain.DefaultInvoice(clk.Now(), cfg.Currency)
	return s
}

func (s *Store) Current() (domain.Invoice, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoice.Clone(), s.rev
}

// bump increments the revision and notifies watchers. Callers hold s.mu.
func (s *Store) bump() {
	s.rev++
	for _, ch := range s.watchers {
		select {
		case ch <- s.rev:
		default: // slow watcher, a later revision supersedes this one
		}
	}
}

func (s *Store) Watch() (<-chan uint64, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextWatch
	s.nextWatch++
	ch := make(chan uint64, 1)
	s.watchers[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}
}

func (s *Store) PatchMeta(patch domain.MetaPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta := s.invoice.Meta
	applyString(&meta.Currency, patch.Currency)
	applyString(&meta.Number, patch.Number)
	applyString(&meta.IssueDate, patch.IssueDate)
	applyString(&meta.DueDate, patch.DueDate)
	s.invoice.Meta = meta
	s.bump()
}

func (s *Store) PatchBusiness(patch domain.BusinessPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	business := s.invoice.Business
	applyString(&business.Name, patch.Name)
	applyString(&business.Phone, patch.Phone)
	applyString(&business.Email, patch.Email)
	applyString(&business.Logo, patch.Logo)
	s.invoice.Business = business
	s.bump()
}

func (s *Store) PatchBusinessAddress(patch domain.AddressPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice.Business.Address = patchedAddress(s.invoice.Business.Address, patch)
	s.bump()
}

func (s *Store) PatchClient(patch domain.PartyPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client := s.invoice.Client
	applyString(&client.Name, patch.Name)
	applyString(&client.Phone, patch.Phone)
	applyString(&client.Email, patch.Email)
	s.invoice.Client = client
	s.bump()
}

func (s *Store) PatchClientAddress(patch domain.AddressPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice.Client.Address = patchedAddress(s.invoice.Client.Address, patch)
	s.bump()
}

func (s *Store) PatchSettings(patch domain.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.invoice.Settings
	applyNumber(&settings.TaxRate, patch.TaxRate)
	applyNumber(&settings.Discount, patch.Discount)
	applyString(&settings.AccentColor, patch.AccentColor)
	if patch.Template != nil {
		settings.Template = *patch.Template
	}
	s.invoice.Settings = settings
	s.bump()
}

func (s *Store) PatchNotes(patch domain.NotesPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.invoice.Notes
	applyString(&notes.Notes, patch.Notes)
	applyString(&notes.Terms, patch.Terms)
	applyString(&notes.Footer, patch.Footer)
	s.invoice.Notes = notes
	s.bump()
}

func (s *Store) AddItem() domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := domain.LineItem{
		ID:        uuid.NewString(),
		Qty:       decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
	}
	items := make([]domain.LineItem, 0, len(s.invoice.Items)+1)
	items = append(items, s.invoice.Items...)
	items = append(items, item)
	s.invoice.Items = items
	s.bump()
	return item
}

func (s *Store) UpdateItem(id string, patch domain.ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, item := range s.invoice.Items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	items := make([]domain.LineItem, len(s.invoice.Items))
	copy(items, s.invoice.Items)
	applyString(&items[idx].Description, patch.Description)
	applyNumber(&items[idx].Qty, patch.Qty)
	applyNumber(&items[idx].UnitPrice, patch.UnitPrice)
	s.invoice.Items = items
	s.bump()
}

func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.LineItem, 0, len(s.invoice.Items))
	found := false
	for _, item := range s.invoice.Items {
		if item.ID == id {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return
	}
	s.invoice.Items = items
	s.bump()
}

func (s *Store) Reset() domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = domain.DefaultInvoice(s.clk.Now(), s.currency)
	s.bump()
	s.log.Info("invoice session reset")
	return s.invoice.Clone()
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyNumber(dst *decimal.Decimal, src *domain.Number) {
	if src != nil {
		*dst = src.Decimal
	}
}

func patchedAddress(addr domain.Address, patch domain.AddressPatch) domain.Address {
	applyString(&addr.Line1, patch.Line1)
	applyString(&addr.Line2, patch.Line2)
	applyString(&addr.State, patch.State)
	applyString(&addr.Country, patch.Country)
	return addr
}
