package commands_test

import (
	"context"
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderCmd(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	actor := actorOf(t, 42, uintPtr(7), false, false)
	cmd, err := commands.NewCreateOrderCommand(actor, 3, "CT-1001", "RON-55", order.Details{})
	require.NoError(t, err)
	return cmd
}

func recipientCompany(t *testing.T) *tenant.Company {
	t.Helper()
	c, err := tenant.RestoreCompany(3, "Receiver", false)
	require.NoError(t, err)
	return c
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	orderRepo := new(MockOrderRepository)
	companyRepo := new(MockCompanyRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		companyRepo.On("Get", mock.Anything, uint64(3)).Return(recipientCompany(t), nil).Once(),
		orderRepo.On("ClientTrackingExists", mock.Anything, "CT-1001", uintPtr(7), uint64(0)).
			Return(false, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*event.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("EventRepository").Return(eventRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "CT-1001", o.ClientTracking())
	assert.Equal(t, "auto", o.Details().ShippingMethod)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BlockedActor(t *testing.T) {
	ctx := context.Background()
	actor := actorOf(t, 42, uintPtr(7), false, true)
	cmd, err := commands.NewCreateOrderCommand(actor, 3, "CT-1001", "RON-55", order.Details{})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, tenant.ErrUserBlocked)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ClientTrackingTaken(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	orderRepo := new(MockOrderRepository)
	companyRepo := new(MockCompanyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		companyRepo.On("Get", mock.Anything, uint64(3)).Return(recipientCompany(t), nil).Once(),
		orderRepo.On("ClientTrackingExists", mock.Anything, "CT-1001", uintPtr(7), uint64(0)).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The company already has an order with this number. Unable to add order.")
}

func TestCreateOrderCommandHandler_Handle_UnknownRecipient(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	companyRepo := new(MockCompanyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		companyRepo.On("Get", mock.Anything, uint64(3)).
			Return(nil, errs.NewObjectNotFoundError("companyID", uint64(3))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("CompanyRepository").Return(companyRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Invalid pk "3" - object does not exist.`)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnTrackingCollision(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	orderRepo := new(MockOrderRepository)
	companyRepo := new(MockCompanyRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("EventRepository").Return(eventRepo)
	companyRepo.On("Get", mock.Anything, uint64(3)).Return(recipientCompany(t), nil)
	orderRepo.On("ClientTrackingExists", mock.Anything, "CT-1001", uintPtr(7), uint64(0)).
		Return(false, nil)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("logistic_tracking")).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*event.Event")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, o)
	orderRepo.AssertNumberOfCalls(t, "Add", 2)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterBoundedRetries(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	orderRepo := new(MockOrderRepository)
	companyRepo := new(MockCompanyRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("OrderRepository").Return(orderRepo)
	companyRepo.On("Get", mock.Anything, uint64(3)).Return(recipientCompany(t), nil)
	orderRepo.On("ClientTrackingExists", mock.Anything, "CT-1001", uintPtr(7), uint64(0)).
		Return(false, nil)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("logistic_tracking"))

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	orderRepo.AssertNumberOfCalls(t, "Add", 5)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCmd(t)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
