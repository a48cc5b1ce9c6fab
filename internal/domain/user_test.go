package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("owner")
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)

	_, err = ParseRole("superadmin")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestDashboardRoute(t *testing.T) {
	assert.Equal(t, "/dashboard", RoleUser.DashboardRoute())
	assert.Equal(t, "/owner-dashboard", RoleOwner.DashboardRoute())
	assert.Equal(t, "/admin-dashboard", RoleAdmin.DashboardRoute())
}
