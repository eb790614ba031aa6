package service

import (
	"fmt"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// Коды операций для внутренних ошибок.
const (
	codeUserCreate     = "User.Create"
	codeUserUpdate     = "User.Update"
	codeUserDelete     = "User.Delete"
	codeUserGet        = "User.Get"
	codePassportCreate = "Passport.Create"
	codePassportUpdate = "Passport.Update"
	codePassportDelete = "Passport.Delete"
	codePassportGet    = "Passport.Get"
	codeWorkBookCreate = "WorkBook.Create"
	codeWorkBookUpdate = "WorkBook.Update"
	codeWorkBookDelete = "WorkBook.Delete"
	codeWorkBookGet    = "WorkBook.Get"
	codeContractCreate = "Contract.Create"
	codeContractUpdate = "Contract.Update"
	codeContractDelete = "Contract.Delete"
	codeContractGet    = "Contract.Get"
	codeRoleGet        = "Role.Get"
)

func userNotFound(key any) error {
	return serr.NotFound("User.NotFound", fmt.Sprintf("User '%v' not found", key))
}

func roleNotFound(name string) error {
	return serr.NotFound("Role.NotFound", fmt.Sprintf("Role '%s' not found", name))
}

func passportNotFound(id uuid.UUID) error {
	return serr.NotFound("Passport.NotFound", fmt.Sprintf("Passport '%s' not found", id))
}

func workBookNotFound(id uuid.UUID) error {
	return serr.NotFound("WorkBook.NotFound", fmt.Sprintf("WorkBook '%s' not found", id))
}

func contractNotFound(id uuid.UUID) error {
	return serr.NotFound("Contract.NotFound", fmt.Sprintf("Contract '%s' not found", id))
}

func passportIdentificationTaken(idn string) error {
	return serr.Conflict("Passport.Duplication", fmt.Sprintf("Passport '%s' already exist", idn))
}

func passportSeriesNumberTaken(series, number string) error {
	return serr.Conflict("Passport.Duplication", fmt.Sprintf("Passport '%s%s' already exist", series, number))
}

func passportForUserTaken(userID uuid.UUID) error {
	return serr.Conflict("Passport.Duplication", fmt.Sprintf("Passport for User '%s' already exist", userID))
}

func workBookForUserTaken(userID uuid.UUID) error {
	return serr.Conflict("WorkBook.Duplication", fmt.Sprintf("WorkBook for User '%s' already exist", userID))
}

func emailTaken(email string) error {
	return serr.Conflict("User.Duplication", fmt.Sprintf("User '%s' already exist", email))
}

func passwordRequired() error {
	return serr.Validation("User.Validation", "Validation errors occurred",
		map[string][]string{"Password": {"Password was expected"}})
}
