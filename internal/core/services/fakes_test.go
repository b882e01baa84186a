package services_test

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- In-memory store implementing every repository plus the transaction manager ---

type txMarker struct{}

type memSnapshot struct {
	customers    map[string]domain.Customer
	users        map[string]domain.User
	transactions map[string]domain.Transaction
	employees    map[string]domain.Employee
	meetings     map[string]domain.Meeting
	feedback     map[string]domain.Feedback
	logs         map[string]domain.AuditLog
}

type memStore struct {
	// txMu serializes units of work, standing in for row locks.
	txMu sync.Mutex
	mu   sync.Mutex
	memSnapshot

	failures map[string]error
	calls    map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		memSnapshot: memSnapshot{
			customers:    map[string]domain.Customer{},
			users:        map[string]domain.User{},
			transactions: map[string]domain.Transaction{},
			employees:    map[string]domain.Employee{},
			meetings:     map[string]domain.Meeting{},
			feedback:     map[string]domain.Feedback{},
			logs:         map[string]domain.AuditLog{},
		},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

var (
	_ portsrepo.TransactionManager          = (*memStore)(nil)
	_ portsrepo.CustomerRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*memStore)(nil)
	_ portsrepo.UserRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.EmployeeRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.MeetingRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.FeedbackRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.LogRepositoryFacade         = (*memStore)(nil)
)

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       m,
		CustomerRepo:    m,
		TransactionRepo: m,
		UserRepo:        m,
		EmployeeRepo:    m,
		MeetingRepo:     m,
		FeedbackRepo:    m,
		LogRepo:         m,
	}
}

// failOn makes every later call to method return err.
func (m *memStore) failOn(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = err
}

func (m *memStore) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// enter records the call and returns any injected failure. Callers hold mu.
func (m *memStore) enter(method string) error {
	m.calls[method]++
	return m.failures[method]
}

func (m *memStore) snapshot() memSnapshot {
	return memSnapshot{
		customers:    maps.Clone(m.customers),
		users:        maps.Clone(m.users),
		transactions: maps.Clone(m.transactions),
		employees:    maps.Clone(m.employees),
		meetings:     maps.Clone(m.meetings),
		feedback:     maps.Clone(m.feedback),
		logs:         maps.Clone(m.logs),
	}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	saved := m.snapshot()
	m.mu.Unlock()

	rollback := func() {
		m.mu.Lock()
		m.memSnapshot = saved
		m.mu.Unlock()
	}
	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		rollback()
	}
	return err
}

// seed helpers

func (m *memStore) putCustomer(c domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.CustomerID] = c
}

func (m *memStore) putUser(u domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.UserID] = u
}

func (m *memStore) putTransaction(t domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[t.TransactionID] = t
}

func (m *memStore) customer(id string) domain.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers[id]
}

func (m *memStore) transaction(id string) domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions[id]
}

func (m *memStore) transactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}

// customers

func (m *memStore) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindCustomerByID"); err != nil {
		return nil, err
	}
	c, ok := m.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) FindCustomerByUserID(_ context.Context, userID string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindCustomerByUserID"); err != nil {
		return nil, err
	}
	return m.customerByUser(userID)
}

func (m *memStore) customerByUser(userID string) (*domain.Customer, error) {
	for _, c := range m.customers {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) ListCustomers(_ context.Context, limit int, offset int) ([]domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListCustomers"); err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CustomerID < out[j].CustomerID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, limit, offset), nil
}

func (m *memStore) ListCustomerIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListCustomerIDs"); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(m.customers))
	for id := range m.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memStore) SaveCustomer(_ context.Context, customer domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveCustomer"); err != nil {
		return err
	}
	for _, c := range m.customers {
		if c.AccountNo == customer.AccountNo {
			return fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, customer.AccountNo)
		}
	}
	m.customers[customer.CustomerID] = customer
	return nil
}

func (m *memStore) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateCustomer"); err != nil {
		return err
	}
	existing, ok := m.customers[customer.CustomerID]
	if !ok {
		return apperrors.ErrNotFound
	}
	// balances are owned by UpdateCustomerLedger
	customer.SavingBalance = existing.SavingBalance
	customer.LoanBalance = existing.LoanBalance
	customer.LastInterestCalculation = existing.LastInterestCalculation
	m.customers[customer.CustomerID] = customer
	return nil
}

func (m *memStore) DeleteCustomer(_ context.Context, customerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteCustomer"); err != nil {
		return err
	}
	if _, ok := m.customers[customerID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.customers, customerID)
	return nil
}

func (m *memStore) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	if ctx.Value(txMarker{}) == nil {
		return nil, fmt.Errorf("FindCustomerByIDForUpdate outside a transaction")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindCustomerByIDForUpdate"); err != nil {
		return nil, err
	}
	c, ok := m.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) FindCustomerByUserIDForUpdate(ctx context.Context, userID string) (*domain.Customer, error) {
	if ctx.Value(txMarker{}) == nil {
		return nil, fmt.Errorf("FindCustomerByUserIDForUpdate outside a transaction")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindCustomerByUserIDForUpdate"); err != nil {
		return nil, err
	}
	return m.customerByUser(userID)
}

func (m *memStore) UpdateCustomerLedger(ctx context.Context, customer domain.Customer) error {
	if ctx.Value(txMarker{}) == nil {
		return fmt.Errorf("UpdateCustomerLedger outside a transaction")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateCustomerLedger"); err != nil {
		return err
	}
	existing, ok := m.customers[customer.CustomerID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.SavingBalance = customer.SavingBalance
	existing.LoanBalance = customer.LoanBalance
	existing.LastInterestCalculation = customer.LastInterestCalculation
	existing.UpdatedAt = customer.UpdatedAt
	m.customers[customer.CustomerID] = existing
	return nil
}

// transactions

func (m *memStore) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindTransactionByID"); err != nil {
		return nil, err
	}
	t, ok := m.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListTransactions"); err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, t := range m.transactions {
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].TransactionID < out[j].TransactionID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *memStore) FindFirstDepositDate(_ context.Context, userID string) (*time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindFirstDepositDate"); err != nil {
		return nil, err
	}
	var first *time.Time
	for _, t := range m.transactions {
		if t.UserID != userID || t.Type != domain.Deposit {
			continue
		}
		if first == nil || t.CreatedAt.Before(*first) {
			created := t.CreatedAt
			first = &created
		}
	}
	return first, nil
}

func (m *memStore) HasUndecidedLoan(_ context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("HasUndecidedLoan"); err != nil {
		return false, err
	}
	for _, t := range m.transactions {
		if t.UserID == userID && t.Type == domain.Loan && !t.Status.IsTerminal() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveTransaction"); err != nil {
		return err
	}
	m.transactions[txn.TransactionID] = txn
	return nil
}

func (m *memStore) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if ctx.Value(txMarker{}) == nil {
		return nil, fmt.Errorf("FindTransactionByIDForUpdate outside a transaction")
	}
	return m.FindTransactionByID(ctx, transactionID)
}

func (m *memStore) UpdateTransactionDecision(ctx context.Context, txn domain.Transaction) error {
	if ctx.Value(txMarker{}) == nil {
		return fmt.Errorf("UpdateTransactionDecision outside a transaction")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateTransactionDecision"); err != nil {
		return err
	}
	existing, ok := m.transactions[txn.TransactionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Status = txn.Status
	existing.Comment = txn.Comment
	existing.DecidedBy = txn.DecidedBy
	existing.DecidedAt = txn.DecidedAt
	existing.UpdatedAt = txn.UpdatedAt
	m.transactions[txn.TransactionID] = existing
	return nil
}

// users

func (m *memStore) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindUserByID"); err != nil {
		return nil, err
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindUserByUsername"); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) FindUsers(_ context.Context, limit int, offset int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindUsers"); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return page(out, limit, offset), nil
}

func (m *memStore) usernameTaken(username, exceptUserID string) bool {
	for _, u := range m.users {
		if u.Username == username && u.UserID != exceptUserID {
			return true
		}
	}
	return false
}

func (m *memStore) SaveUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveUser"); err != nil {
		return err
	}
	if m.usernameTaken(user.Username, "") {
		return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, user.Username)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *memStore) UpdateUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateUser"); err != nil {
		return err
	}
	existing, ok := m.users[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if m.usernameTaken(user.Username, user.UserID) {
		return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, user.Username)
	}
	user.PasswordHash = existing.PasswordHash
	m.users[user.UserID] = user
	return nil
}

func (m *memStore) UpdatePasswordHash(_ context.Context, userID string, passwordHash string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdatePasswordHash"); err != nil {
		return err
	}
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = now
	m.users[userID] = u
	return nil
}

// DeleteUser cascades to customer and employee rows. Transactions are kept.
func (m *memStore) DeleteUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteUser"); err != nil {
		return err
	}
	if _, ok := m.users[userID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.users, userID)
	for id, c := range m.customers {
		if c.UserID == userID {
			delete(m.customers, id)
		}
	}
	for id, e := range m.employees {
		if e.UserID == userID {
			delete(m.employees, id)
		}
	}
	return nil
}

// employees

func (m *memStore) FindEmployeeByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindEmployeeByID"); err != nil {
		return nil, err
	}
	e, ok := m.employees[employeeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (m *memStore) ListEmployees(_ context.Context, limit int, offset int) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListEmployees"); err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (m *memStore) SaveEmployee(_ context.Context, employee domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveEmployee"); err != nil {
		return err
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *memStore) UpdateEmployee(_ context.Context, employee domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateEmployee"); err != nil {
		return err
	}
	if _, ok := m.employees[employee.EmployeeID]; !ok {
		return apperrors.ErrNotFound
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *memStore) DeleteEmployee(_ context.Context, employeeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteEmployee"); err != nil {
		return err
	}
	if _, ok := m.employees[employeeID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.employees, employeeID)
	return nil
}

// meetings

func (m *memStore) SaveMeeting(_ context.Context, meeting domain.Meeting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveMeeting"); err != nil {
		return err
	}
	m.meetings[meeting.MeetingID] = meeting
	return nil
}

func (m *memStore) ListMeetings(_ context.Context) ([]domain.Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListMeetings"); err != nil {
		return nil, err
	}
	out := make([]domain.Meeting, 0, len(m.meetings))
	for _, mt := range m.meetings {
		out = append(out, mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// feedback

func (m *memStore) SaveFeedback(_ context.Context, feedback domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveFeedback"); err != nil {
		return err
	}
	m.feedback[feedback.FeedbackID] = feedback
	return nil
}

func (m *memStore) FindFeedbackByID(_ context.Context, feedbackID string) (*domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindFeedbackByID"); err != nil {
		return nil, err
	}
	f, ok := m.feedback[feedbackID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &f, nil
}

func (m *memStore) ListFeedback(_ context.Context, limit int, offset int) ([]domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListFeedback"); err != nil {
		return nil, err
	}
	out := make([]domain.Feedback, 0, len(m.feedback))
	for _, f := range m.feedback {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (m *memStore) UpdateFeedbackResponse(_ context.Context, feedback domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateFeedbackResponse"); err != nil {
		return err
	}
	existing, ok := m.feedback[feedback.FeedbackID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Response = feedback.Response
	existing.UpdatedAt = feedback.UpdatedAt
	m.feedback[feedback.FeedbackID] = existing
	return nil
}

// logs

func (m *memStore) SaveLog(_ context.Context, entry domain.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SaveLog"); err != nil {
		return err
	}
	m.logs[entry.LogID] = entry
	return nil
}

func (m *memStore) ListLogs(_ context.Context, limit int, offset int) ([]domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListLogs"); err != nil {
		return nil, err
	}
	out := make([]domain.AuditLog, 0, len(m.logs))
	for _, l := range m.logs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].LogID < out[j].LogID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, limit, offset), nil
}

func (m *memStore) DeleteLog(_ context.Context, logID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteLog"); err != nil {
		return err
	}
	if _, ok := m.logs[logID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.logs, logID)
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// --- Collaborators ---

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

var _ portssvc.Clock = (*fixedClock)(nil)

type MockAttachmentStore struct {
	mock.Mock
}

func (m *MockAttachmentStore) Upload(ctx context.Context, attachment domain.Attachment) (string, error) {
	args := m.Called(ctx, attachment)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// recordingAudit keeps every entry it is handed.
type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (r *recordingAudit) Record(_ context.Context, entry domain.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// recordingListener counts post-commit savings notifications.
type recordingListener struct {
	mu          sync.Mutex
	customerIDs []string
}

func (r *recordingListener) OnSavingsBalanceChanged(_ context.Context, customerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customerIDs = append(r.customerIDs, customerID)
}

func (r *recordingListener) notified() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.customerIDs...)
}

// --- Fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func bureauPtr(b domain.GovBureau) *domain.GovBureau {
	return &b
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestCustomer(id, userID string, saving, loan string, createdAt time.Time) domain.Customer {
	return domain.Customer{
		CustomerID:    id,
		UserID:        userID,
		Phone:         "0911000000",
		AccountNo:     "1000" + id,
		FirstName:     "Abebe",
		LastName:      "Kebede",
		Age:           30,
		Sex:           domain.Male,
		Email:         id + "@example.com",
		SavingBalance: dec(saving),
		LoanBalance:   dec(loan),
		Salary:        decPtr("100000"),
		GovBureau:     bureauPtr(domain.FinanceBureau),
		Status:        domain.CustomerStatusActive,
		AuditFields:   domain.AuditFields{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

func newTestTransaction(id, userID string, txType domain.TransactionType, magnitude string, status domain.TransactionStatus, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        userID,
		Type:          txType,
		Amount:        txType.SignedAmount(dec(magnitude)),
		Status:        status,
		AuditFields:   domain.AuditFields{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}
