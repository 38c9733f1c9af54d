package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	actor := actorOf(t, 42, uintPtr(7), false, false)

	cmd, err := commands.NewCreateOrderCommand(actor, 3, "CT-1001", "RON-55",
		order.Details{ClientName: "ACME Ltd"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cmd.RecipientCompanyID())
	assert.Equal(t, "CT-1001", cmd.ClientTracking())
	assert.Equal(t, "RON-55", cmd.RecipientOrderNum())
	assert.Equal(t, "ACME Ltd", cmd.Details().ClientName)
}

func TestNewCreateOrderCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(tenant.Actor{}, 3, "CT-1001", "RON-55", order.Details{})
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
