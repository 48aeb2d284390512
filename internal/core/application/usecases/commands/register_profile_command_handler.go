package commands

import (
	"context"
	"errors"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// RegisterProfileCommandHandler handles the business logic for signup.
// Enforces the campus email allow-list server-side and upserts the profile:
// a new email creates a USER profile, an existing one only refreshes the
// mutable contact fields. Role and restaurant affiliation never change here;
// promoting accounts is an administrative database operation.
//
// Example:
//
//	handler := NewRegisterProfileCommandHandler(uowFactory, account.NewSignupPolicy(nil))
//	cmd, _ := NewRegisterProfileCommand("student@ut.edu", "Sam", "Torres", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterProfileCommandHandler struct {
	uowFactory   ProfileUoWFactory
	signupPolicy account.SignupPolicy
}

// NewRegisterProfileCommandHandler creates a handler for registration.
// Requires a ProfileUoWFactory for transactional persistence and the signup
// policy carrying the allowed email domains.
func NewRegisterProfileCommandHandler(
	uowFactory ProfileUoWFactory,
	signupPolicy account.SignupPolicy,
) RegisterProfileCommandHandler {
	return RegisterProfileCommandHandler{
		uowFactory:   uowFactory,
		signupPolicy: signupPolicy,
	}
}

// Handle processes the registration command.
// Rejects emails outside the allow-list before touching storage. The upsert
// runs in one transaction: existing profiles get their name and phone
// refreshed, new ones are created with the USER role.
func (h RegisterProfileCommandHandler) Handle(ctx context.Context, cmd RegisterProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.signupPolicy.CheckEmail(cmd.Email()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()

	existing, err := profileRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if err = existing.Rename(cmd.FirstName(), cmd.LastName(), cmd.PhoneNumber()); err != nil {
			return err
		}
		if err = profileRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		profile, profileErr := account.NewProfile(
			kernel.NewUUID(),
			cmd.Email(),
			cmd.FirstName(),
			cmd.LastName(),
			cmd.PhoneNumber(),
			account.RoleUser,
			nil,
		)
		if profileErr != nil {
			return profileErr
		}
		if err = profileRepo.Add(ctx, profile); err != nil {
			return err
		}
	default:
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
