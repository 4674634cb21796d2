package apperr

import (
	"context"
	"errors"

	"github.com/H4tholdir/archibaldblackant-sub008/pkg/i18n"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func grpcCode(k Kind) codes.Code {
	switch k {
	case KindValidation:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindForbidden:
		return codes.PermissionDenied
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindConflict:
		return codes.FailedPrecondition
	case KindCompensationFailed:
		return codes.DataLoss
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status error with a message localized for
// the caller's accept-language. Internal causes are never leaked.
func ToStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && !isAppError(err) {
		return err
	}

	kind := KindOf(err)
	code := CodeOf(err)

	fallback := "internal error"
	var ae *AppError
	if errors.As(err, &ae) && kind != KindInternal {
		fallback = ae.Message
	}

	lang := middleware.Language(ctx)
	msg := i18n.Localize(code, fallback, map[string]interface{}{"Detail": fallback}, lang, "en")
	if code != kind.String() {
		msg = code + ": " + msg
	}
	return status.Error(grpcCode(kind), msg)
}

func isAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}
