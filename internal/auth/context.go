package auth

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

const (
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// Principal is the caller identity supplied by the upstream auth layer.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsElevated() bool {
	return p.Role == RoleAdmin
}

// FromContext reads the principal placed by middleware.ContextInterceptor,
// falling back to raw metadata.
func FromContext(ctx context.Context) (Principal, error) {
	var p Principal
	if v, ok := ctx.Value(middleware.UserIDKey).(string); ok {
		p.UserID = v
	}
	if v, ok := ctx.Value(middleware.RoleKey).(string); ok {
		p.Role = v
	}

	if p.UserID == "" {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get("x-user-id"); len(v) > 0 {
				p.UserID = v[0]
			}
			if v := md.Get("x-user-role"); len(v) > 0 {
				p.Role = v[0]
			}
		}
	}

	if p.UserID == "" {
		return Principal{}, apperr.New(apperr.KindUnauthenticated, "", "missing user identity")
	}
	if p.Role == "" {
		p.Role = RoleAgent
	}
	return p, nil
}

// Authorize is the single ownership check shared by every resource-scoped
// operation: the owner or an elevated role may proceed.
func Authorize(p Principal, ownerUserID string) error {
	if p.UserID == ownerUserID || p.IsElevated() {
		return nil
	}
	return apperr.Forbidden("resource belongs to another user")
}

// RequireRole admits callers holding one of roles. Admins always pass.
func RequireRole(p Principal, roles ...string) error {
	if p.IsElevated() {
		return nil
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return apperr.Forbidden("role " + p.Role + " may not call this operation")
}

// Subject picks the user a request acts on. An empty requested user means the
// caller itself; acting for someone else needs an elevated role.
func Subject(p Principal, requested string) (string, error) {
	if requested == "" || requested == p.UserID {
		return p.UserID, nil
	}
	if err := Authorize(p, requested); err != nil {
		return "", err
	}
	return requested, nil
}
