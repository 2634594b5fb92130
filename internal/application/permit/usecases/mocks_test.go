package usecases

import (
	"context"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/domain/shared/events"
	"amlak/internal/domain/user"
	"amlak/internal/shared/logger"
)

type mockPermitRepository struct {
	SaveFunc         func(ctx context.Context, p *permit.Permit) error
	UpdateFunc       func(ctx context.Context, p *permit.Permit) error
	FindByIDFunc     func(ctx context.Context, permitID uint) (*permit.Permit, error)
	FindByNumberFunc func(ctx context.Context, number string) (*permit.Permit, error)
	ListFunc         func(ctx context.Context, filter permit.PermitFilter) ([]*permit.Permit, int64, error)
}

func (m *mockPermitRepository) Save(ctx context.Context, p *permit.Permit) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPermitRepository) Update(ctx context.Context, p *permit.Permit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPermitRepository) FindByID(ctx context.Context, permitID uint) (*permit.Permit, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, permitID)
	}
	return nil, nil
}

func (m *mockPermitRepository) FindByNumber(ctx context.Context, number string) (*permit.Permit, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockPermitRepository) List(ctx context.Context, filter permit.PermitFilter) ([]*permit.Permit, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockWorkflowRepository struct {
	SaveFunc             func(ctx context.Context, w *permit.ApprovalWorkflow) error
	FindByIDFunc         func(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error)
	FindRouteForTypeFunc func(ctx context.Context, t vo.PermitType) (*permit.ApprovalWorkflow, error)
	ListActiveFunc       func(ctx context.Context) ([]*permit.ApprovalWorkflow, error)
}

func (m *mockWorkflowRepository) Save(ctx context.Context, w *permit.ApprovalWorkflow) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkflowRepository) FindByID(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, workflowID)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) FindRouteForType(ctx context.Context, t vo.PermitType) (*permit.ApprovalWorkflow, error) {
	if m.FindRouteForTypeFunc != nil {
		return m.FindRouteForTypeFunc(ctx, t)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) ListActive(ctx context.Context) ([]*permit.ApprovalWorkflow, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockPendingApprovalRepository struct {
	SaveFunc                     func(ctx context.Context, pa *permit.PendingApproval) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*permit.PendingApproval, error)
	FindOpenFunc                 func(ctx context.Context) ([]*permit.PendingApproval, error)
	FindActionableByAssigneeFunc func(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error)
	FindActionableByPermitIDFunc func(ctx context.Context, permitID uint) (*permit.PendingApproval, error)
	ApplyRedirectFunc            func(ctx context.Context, pa *permit.PendingApproval) error
	MarkOverdueFunc              func(ctx context.Context, pa *permit.PendingApproval) error
	CompleteFunc                 func(ctx context.Context, pa *permit.PendingApproval) error
}

func (m *mockPendingApprovalRepository) Save(ctx context.Context, pa *permit.PendingApproval) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, pa)
	}
	return nil
}

func (m *mockPendingApprovalRepository) FindByID(ctx context.Context, id uint) (*permit.PendingApproval, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPendingApprovalRepository) FindOpen(ctx context.Context) ([]*permit.PendingApproval, error) {
	if m.FindOpenFunc != nil {
		return m.FindOpenFunc(ctx)
	}
	return nil, nil
}

func (m *mockPendingApprovalRepository) FindActionableByAssignee(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error) {
	if m.FindActionableByAssigneeFunc != nil {
		return m.FindActionableByAssigneeFunc(ctx, assigneeID)
	}
	return nil, nil
}

func (m *mockPendingApprovalRepository) FindActionableByPermitID(ctx context.Context, permitID uint) (*permit.PendingApproval, error) {
	if m.FindActionableByPermitIDFunc != nil {
		return m.FindActionableByPermitIDFunc(ctx, permitID)
	}
	return nil, nil
}

func (m *mockPendingApprovalRepository) ApplyRedirect(ctx context.Context, pa *permit.PendingApproval) error {
	if m.ApplyRedirectFunc != nil {
		return m.ApplyRedirectFunc(ctx, pa)
	}
	return nil
}

func (m *mockPendingApprovalRepository) MarkOverdue(ctx context.Context, pa *permit.PendingApproval) error {
	if m.MarkOverdueFunc != nil {
		return m.MarkOverdueFunc(ctx, pa)
	}
	return nil
}

func (m *mockPendingApprovalRepository) Complete(ctx context.Context, pa *permit.PendingApproval) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, pa)
	}
	return nil
}

type mockApprovalRecordRepository struct {
	SaveFunc           func(ctx context.Context, r *permit.ApprovalRecord) error
	FindByPermitIDFunc func(ctx context.Context, permitID uint) ([]*permit.ApprovalRecord, error)
}

func (m *mockApprovalRecordRepository) Save(ctx context.Context, r *permit.ApprovalRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockApprovalRecordRepository) FindByPermitID(ctx context.Context, permitID uint) ([]*permit.ApprovalRecord, error) {
	if m.FindByPermitIDFunc != nil {
		return m.FindByPermitIDFunc(ctx, permitID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListAdminsFunc  func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	PermitAssignedFunc     func(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval) error
	ApprovalRedirectedFunc func(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, previousAssigneeID uint) error
	ApprovalOverdueFunc    func(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, adminID uint) error
	PermitDecidedFunc      func(ctx context.Context, p *permit.Permit, recipientID uint) error
}

func (m *mockNotifier) PermitAssigned(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval) error {
	if m.PermitAssignedFunc != nil {
		return m.PermitAssignedFunc(ctx, p, pa)
	}
	return nil
}

func (m *mockNotifier) ApprovalRedirected(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, previousAssigneeID uint) error {
	if m.ApprovalRedirectedFunc != nil {
		return m.ApprovalRedirectedFunc(ctx, p, pa, previousAssigneeID)
	}
	return nil
}

func (m *mockNotifier) ApprovalOverdue(ctx context.Context, p *permit.Permit, pa *permit.PendingApproval, adminID uint) error {
	if m.ApprovalOverdueFunc != nil {
		return m.ApprovalOverdueFunc(ctx, p, pa, adminID)
	}
	return nil
}

func (m *mockNotifier) PermitDecided(ctx context.Context, p *permit.Permit, recipientID uint) error {
	if m.PermitDecidedFunc != nil {
		return m.PermitDecidedFunc(ctx, p, recipientID)
	}
	return nil
}

// mockTransactionManager runs the function directly without a database.
type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	Published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}
