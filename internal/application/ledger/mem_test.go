package ledger_test

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido por todos los repos, más un
// memTxRunner con snapshot/restore para reproducir la semántica de
// commit-completo-o-rollback-completo del TxRunner real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items         map[string]*entity.StockItem
	users         map[string]*entity.User
	workers       map[string]*entity.Worker
	entryVouchers map[string]*entity.EntryVoucher
	entryDetails  map[string]*entity.EntryDetail
	exitVouchers  map[string]*entity.ExitVoucher
	exitDetails   map[string]*entity.ExitDetail
	audits        []*entity.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		items:         make(map[string]*entity.StockItem),
		users:         make(map[string]*entity.User),
		workers:       make(map[string]*entity.Worker),
		entryVouchers: make(map[string]*entity.EntryVoucher),
		entryDetails:  make(map[string]*entity.EntryDetail),
		exitVouchers:  make(map[string]*entity.ExitVoucher),
		exitDetails:   make(map[string]*entity.ExitDetail),
	}
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for k, v := range s.items {
		c := *v
		snap.items[k] = &c
	}
	for k, v := range s.users {
		c := *v
		snap.users[k] = &c
	}
	for k, v := range s.workers {
		c := *v
		snap.workers[k] = &c
	}
	for k, v := range s.entryVouchers {
		c := *v
		snap.entryVouchers[k] = &c
	}
	for k, v := range s.entryDetails {
		c := *v
		snap.entryDetails[k] = &c
	}
	for k, v := range s.exitVouchers {
		c := *v
		snap.exitVouchers[k] = &c
	}
	for k, v := range s.exitDetails {
		c := *v
		snap.exitDetails[k] = &c
	}
	for _, a := range s.audits {
		c := *a
		snap.audits = append(snap.audits, &c)
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.items = snap.items
	s.users = snap.users
	s.workers = snap.workers
	s.entryVouchers = snap.entryVouchers
	s.entryDetails = snap.entryDetails
	s.exitVouchers = snap.exitVouchers
	s.exitDetails = snap.exitDetails
	s.audits = snap.audits
}

// ── Stock ─────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

var _ repository.StockItemRepository = (*memStockRepo)(nil)

func (r *memStockRepo) Create(item *entity.StockItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	c := *item
	r.s.items[item.ID] = &c
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.StockItem, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (r *memStockRepo) GetByName(name string) (*entity.StockItem, error) {
	for _, item := range r.s.items {
		if item.Name == name {
			c := *item
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memStockRepo) List(search string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, item := range r.s.items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(search)) {
			continue
		}
		c := *item
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memStockRepo) Update(item *entity.StockItem) error {
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *item
	r.s.items[item.ID] = &c
	return nil
}

func (r *memStockRepo) SetQuantity(id string, quantity int64) error {
	item, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity = quantity
	return nil
}

func (r *memStockRepo) Delete(id string) error {
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

func (r *memStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *memStockRepo) GetByNameForUpdate(name string) (*entity.StockItem, error) {
	return r.GetByName(name)
}

func (r *memStockRepo) AddQuantity(id string, delta int64) error {
	item, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity += delta
	return nil
}

func (r *memStockRepo) DecrementIfAvailable(id string, quantity int64) (bool, error) {
	item, ok := r.s.items[id]
	if !ok || item.Quantity < quantity {
		return false, nil
	}
	item.Quantity -= quantity
	return true, nil
}

// ── Vales de entrada ──────────────────────────────────────────────────────────

type memEntryRepo struct{ s *memStore }

var _ repository.EntryVoucherRepository = (*memEntryRepo)(nil)

func (r *memEntryRepo) Create(voucher *entity.EntryVoucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	c := *voucher
	r.s.entryVouchers[voucher.ID] = &c
	return nil
}

func (r *memEntryRepo) GetByID(id string) (*entity.EntryVoucher, error) {
	v, ok := r.s.entryVouchers[id]
	if !ok {
		return nil, nil
	}
	c := *v
	if u, ok := r.s.users[c.AddedBy]; ok {
		c.AddedByName = u.Username
	}
	return &c, nil
}

func (r *memEntryRepo) List() ([]*entity.EntryVoucher, error) {
	var out []*entity.EntryVoucher
	for _, v := range r.s.entryVouchers {
		c := *v
		if u, ok := r.s.users[c.AddedBy]; ok {
			c.AddedByName = u.Username
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memEntryRepo) CreateDetail(detail *entity.EntryDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	c := *detail
	r.s.entryDetails[detail.ID] = &c
	return nil
}

func (r *memEntryRepo) GetDetail(id string) (*entity.EntryDetail, error) {
	d, ok := r.s.entryDetails[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *memEntryRepo) ListDetails() ([]*entity.EntryDetail, error) {
	var out []*entity.EntryDetail
	for _, d := range r.s.entryDetails {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r *memEntryRepo) ListDetailsByVoucher(voucherID string) ([]*entity.EntryDetail, error) {
	var out []*entity.EntryDetail
	for _, d := range r.s.entryDetails {
		if d.VoucherID != voucherID {
			continue
		}
		c := *d
		if item, ok := r.s.items[c.ItemID]; ok {
			c.ItemName = item.Name
			c.Unit = item.Unit
		}
		if w, ok := r.s.workers[c.WorkerID]; ok {
			c.WorkerFirstName = w.FirstName
			c.WorkerLastName = w.LastName
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *memEntryRepo) UpdateDetail(detail *entity.EntryDetail) error {
	d, ok := r.s.entryDetails[detail.ID]
	if !ok {
		return domain.ErrNotFound
	}
	d.Quantity = detail.Quantity
	d.WorkerID = detail.WorkerID
	return nil
}

func (r *memEntryRepo) DeleteDetail(id string) error {
	if _, ok := r.s.entryDetails[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.entryDetails, id)
	return nil
}

// ── Vales de salida ───────────────────────────────────────────────────────────

type memExitRepo struct{ s *memStore }

var _ repository.ExitVoucherRepository = (*memExitRepo)(nil)

func (r *memExitRepo) Create(voucher *entity.ExitVoucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	c := *voucher
	r.s.exitVouchers[voucher.ID] = &c
	return nil
}

func (r *memExitRepo) GetByID(id string) (*entity.ExitVoucher, error) {
	v, ok := r.s.exitVouchers[id]
	if !ok {
		return nil, nil
	}
	c := *v
	if u, ok := r.s.users[c.HandledBy]; ok {
		c.HandledByName = u.Username
	}
	return &c, nil
}

func (r *memExitRepo) List() ([]*entity.ExitVoucher, error) {
	var out []*entity.ExitVoucher
	for _, v := range r.s.exitVouchers {
		c := *v
		if u, ok := r.s.users[c.HandledBy]; ok {
			c.HandledByName = u.Username
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memExitRepo) CreateDetail(detail *entity.ExitDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	c := *detail
	r.s.exitDetails[detail.ID] = &c
	return nil
}

func (r *memExitRepo) GetDetail(id string) (*entity.ExitDetail, error) {
	d, ok := r.s.exitDetails[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *memExitRepo) ListDetails() ([]*entity.ExitDetail, error) {
	var out []*entity.ExitDetail
	for _, d := range r.s.exitDetails {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

func (r *memExitRepo) ListDetailsByVoucher(voucherID string) ([]*entity.ExitDetail, error) {
	var out []*entity.ExitDetail
	for _, d := range r.s.exitDetails {
		if d.VoucherID != voucherID {
			continue
		}
		c := *d
		if item, ok := r.s.items[c.ItemID]; ok {
			c.ItemName = item.Name
			c.Unit = item.Unit
		}
		if w, ok := r.s.workers[c.WorkerID]; ok {
			c.WorkerFirstName = w.FirstName
			c.WorkerLastName = w.LastName
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *memExitRepo) UpdateDetail(detail *entity.ExitDetail) error {
	d, ok := r.s.exitDetails[detail.ID]
	if !ok {
		return domain.ErrNotFound
	}
	d.Quantity = detail.Quantity
	d.WorkerID = detail.WorkerID
	return nil
}

func (r *memExitRepo) DeleteDetail(id string) error {
	if _, ok := r.s.exitDetails[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.exitDetails, id)
	return nil
}

// ── Bitácora ──────────────────────────────────────────────────────────────────

type memAuditRepo struct{ s *memStore }

var _ repository.AuditLogRepository = (*memAuditRepo)(nil)

func (r *memAuditRepo) Create(log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	c := *log
	r.s.audits = append(r.s.audits, &c)
	return nil
}

func (r *memAuditRepo) ListAll() ([]*entity.AuditLog, error) {
	out := make([]*entity.AuditLog, 0, len(r.s.audits))
	for i := len(r.s.audits) - 1; i >= 0; i-- {
		c := *r.s.audits[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *memAuditRepo) ListByItem(itemID string) ([]*entity.AuditLog, error) {
	all, _ := r.ListAll()
	var out []*entity.AuditLog
	for _, a := range all {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAuditRepo) ListByUser(userID string) ([]*entity.AuditLog, error) {
	all, _ := r.ListAll()
	var out []*entity.AuditLog
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ── Usuarios y trabajadores ───────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	c := *user
	r.s.users[user.ID] = &c
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(search string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		if search != "" && !strings.Contains(u.Username, search) {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	c := *user
	r.s.users[user.ID] = &c
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

type memWorkerRepo struct{ s *memStore }

var _ repository.WorkerRepository = (*memWorkerRepo)(nil)

func (r *memWorkerRepo) Create(worker *entity.Worker) error {
	if worker.ID == "" {
		worker.ID = uuid.New().String()
	}
	c := *worker
	r.s.workers[worker.ID] = &c
	return nil
}

func (r *memWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	w, ok := r.s.workers[id]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}

func (r *memWorkerRepo) List(search string) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for _, w := range r.s.workers {
		if search != "" &&
			!strings.Contains(w.FirstName, search) && !strings.Contains(w.LastName, search) {
			continue
		}
		c := *w
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (r *memWorkerRepo) Update(worker *entity.Worker) error {
	if _, ok := r.s.workers[worker.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *worker
	r.s.workers[worker.ID] = &c
	return nil
}

func (r *memWorkerRepo) Delete(id string) error {
	if _, ok := r.s.workers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.workers, id)
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner reproduce la atomicidad del TxRunner real: si fn devuelve
// error, el store vuelve al estado previo a la transacción.
type memTxRunner struct{ s *memStore }

var _ ledger.TxRunner = (*memTxRunner)(nil)

func (t *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	entryRepo repository.EntryVoucherRepository,
	exitRepo repository.ExitVoucherRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(&memStockRepo{t.s}, &memEntryRepo{t.s}, &memExitRepo{t.s}, &memAuditRepo{t.s})
	if err != nil {
		t.s.restore(snap)
	}
	return err
}
