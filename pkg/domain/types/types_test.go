package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

func TestIsUUID(t *testing.T) {
	gt.True(t, types.IsUUID(types.NewGroupID().String()))
	gt.True(t, types.IsUUID("3b9f7a52-1d2e-4c8a-9e6f-0a1b2c3d4e5f"))
	gt.False(t, types.IsUUID("platform-team"))
	gt.False(t, types.IsUUID(""))
}

func TestNewIDs(t *testing.T) {
	gt.B(t, types.NewGroupID() == types.NewGroupID()).False()
	gt.B(t, types.NewPersonID() == types.NewPersonID()).False()
	gt.True(t, types.IsUUID(types.NewPersonID().String()))
}
