package ruuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("ruuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("ruuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("ruuid: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("ruuid: invalid UUID variant (expected RFC 4122)")

	// ErrInvalidDomain indicates an unrecognized DCE security domain
	ErrInvalidDomain = errors.New("ruuid: invalid DCE security domain")

	// ErrNoStateStore indicates that the generator was built without a
	// persistent state store
	ErrNoStateStore = errors.New("ruuid: generator has no state store")
)
