package services

import "errors"

var (
	// ErrAccessDenied is the login failure surfaced to the user.
	ErrAccessDenied = errors.New("Access Denied")

	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrBadTransition is returned for a step change the flow does not allow.
	ErrBadTransition = errors.New("invalid wizard transition")

	// ErrReadOnlyRole gates inventory writes to warehouse managers.
	ErrReadOnlyRole = errors.New("role has read-only inventory access")

	// ErrNotAllowed gates manager-only work order operations.
	ErrNotAllowed = errors.New("operation not permitted for this role")

	// ErrWarehouseDenied means the warehouse is outside the session's
	// assigned set.
	ErrWarehouseDenied = errors.New("warehouse not assigned to this account")

	// ErrSameWarehouse rejects a transfer destination equal to the source.
	ErrSameWarehouse = errors.New("destination must differ from source")

	// ErrNoItems rejects advancing the items step with nothing selected.
	ErrNoItems = errors.New("no items selected")
)
