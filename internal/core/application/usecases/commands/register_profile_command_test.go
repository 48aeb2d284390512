package commands_test

import (
	"testing"

	"campuseats/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterProfileCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterProfileCommand("sam.torres@ut.edu", "Sam", "Torres", "813-555-0101")
	require.NoError(t, err)
	assert.Equal(t, "sam.torres@ut.edu", cmd.Email())
	assert.Equal(t, "Sam", cmd.FirstName())
	assert.Equal(t, "Torres", cmd.LastName())
	assert.Equal(t, "813-555-0101", cmd.PhoneNumber())
}

func TestNewRegisterProfileCommand_PhoneIsOptional(t *testing.T) {
	cmd, err := commands.NewRegisterProfileCommand("sam.torres@ut.edu", "Sam", "Torres", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.PhoneNumber())
}

func TestNewRegisterProfileCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewRegisterProfileCommand("", "Sam", "Torres", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestNewRegisterProfileCommand_MissingName(t *testing.T) {
	_, err := commands.NewRegisterProfileCommand("sam.torres@ut.edu", "", "Torres", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)

	_, err = commands.NewRegisterProfileCommand("sam.torres@ut.edu", "Sam", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestRegisterProfileCommand_NotConstructed(t *testing.T) {
	cmd := commands.RegisterProfileCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterProfileCommandIsNotConstructed)
}
