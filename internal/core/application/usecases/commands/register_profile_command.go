package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrRegisterProfileCommandIsNotConstructed = errors.New(
		"RegisterProfileCommand must be created via NewRegisterProfileCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
	ErrNameIsRequired  = errors.New("first name and last name are required")
)

// RegisterProfileCommand represents a signup or profile refresh for an
// authenticated account. The email is the one verified by the identity
// provider; registration is an upsert keyed on it.
//
// Example:
//
//	cmd, err := NewRegisterProfileCommand("student@ut.edu", "Sam", "Torres", "813-555-0101")
//	if err != nil {
//	    return fmt.Errorf("invalid profile data: %w", err)
//	}
//
//	handler := NewRegisterProfileCommandHandler(uowFactory, signupPolicy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterProfileCommand struct { //nolint:recvcheck //using for validation
	email       string
	firstName   string
	lastName    string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewRegisterProfileCommand creates a command to register or refresh a
// profile. Requires a non-empty email and both name parts; the phone number
// is optional.
func NewRegisterProfileCommand(
	email string,
	firstName string,
	lastName string,
	phoneNumber string,
) (RegisterProfileCommand, error) {
	profileCommand := RegisterProfileCommand{
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profileCommand.setEmail(email),
		profileCommand.setName(firstName, lastName),
	); err != nil {
		return RegisterProfileCommand{}, err
	}

	return profileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterProfileCommandIsNotConstructed if validation fails.
func (c RegisterProfileCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProfileCommandIsNotConstructed)
}

// Email returns the verified account email.
func (c RegisterProfileCommand) Email() string {
	return c.email
}

// FirstName returns the account holder's first name.
func (c RegisterProfileCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c RegisterProfileCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the contact phone number, possibly empty.
func (c RegisterProfileCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *RegisterProfileCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterProfileCommand) setName(firstName, lastName string) error {
	if firstName == "" || lastName == "" {
		return ErrNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}
