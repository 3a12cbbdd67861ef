// File: grpc.go
// Title: gRPC Status Mapping
// Description: Maps error codes onto gRPC status codes so errors returned by
//              extx helpers can cross a gRPC boundary without losing their
//              classification.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: ToGRPC follows wrapped errors

package error

import (
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode returns the gRPC status code for this error code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeUnauthorized:
		return codes.Unauthenticated
	case CodeForbidden, CodePermissionDenied:
		return codes.PermissionDenied
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeInvalidLength, CodeParseError, CodeEncodingError, CodeMissingProperty,
		CodeUnsupportedType:
		return codes.InvalidArgument
	case CodeValueOutOfRange, CodeOverflow:
		return codes.OutOfRange
	case CodeDuplicateEntry:
		return codes.AlreadyExists
	case CodeInvalidOperation, CodeMissingConfig, CodeInvalidConfig:
		return codes.FailedPrecondition
	case CodeResourceLocked:
		return codes.Aborted
	case CodeTimeout:
		return codes.DeadlineExceeded
	case CodeServiceUnavailable, CodeNetworkError:
		return codes.Unavailable
	case CodeDataCorruption:
		return codes.DataLoss
	case CodeUnknown:
		return codes.Unknown
	default:
		return codes.Internal
	}
}

// GRPCStatus implements the interface recognized by status.FromError. The
// error ID travels as the status message prefix.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.code.GRPCCode(), "["+e.id+"] "+e.Error())
}

// ToGRPC converts any error into a gRPC status error. The code comes from
// the first *Error in the chain; errors without one are codes.Unknown.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var mdwErr *Error
	if stderrors.As(err, &mdwErr) {
		return status.New(mdwErr.code.GRPCCode(), "["+mdwErr.id+"] "+err.Error()).Err()
	}
	return status.Error(codes.Unknown, err.Error())
}
