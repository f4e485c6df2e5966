package access

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks a failed configuration read. The gate recovers
// from it by serving the hard-coded defaults; it is surfaced only on writes.
var ErrStorageUnavailable = errors.New("access: configuration storage unavailable")

// PermissionDeniedError reports a privileged operation attempted by a role
// that lacks the authority, carrying enough detail for audit logging.
type PermissionDeniedError struct {
	Role   string
	Module string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("access: role %q is not permitted to modify module %q", e.Role, e.Module)
}

// IsPermissionDenied reports whether err is a PermissionDeniedError.
func IsPermissionDenied(err error) bool {
	var pd *PermissionDeniedError
	return errors.As(err, &pd)
}
