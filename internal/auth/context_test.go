package auth

import (
	"context"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, "agent-1")
	p, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: "agent-1", Role: RoleAgent}, p)

	md := metadata.Pairs("x-user-id", "boss", "x-user-role", RoleAdmin)
	p, err = FromContext(metadata.NewIncomingContext(context.Background(), md))
	require.NoError(t, err)
	assert.True(t, p.IsElevated())

	_, err = FromContext(context.Background())
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		p       Principal
		owner   string
		allowed bool
	}{
		{"owner", Principal{UserID: "u1", Role: RoleAgent}, "u1", true},
		{"other agent", Principal{UserID: "u2", Role: RoleAgent}, "u1", false},
		{"admin", Principal{UserID: "root", Role: RoleAdmin}, "u1", true},
		{"worker is not elevated", Principal{UserID: "w", Role: RoleWorker}, "u1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		})
	}

	assert.NoError(t, RequireRole(Principal{Role: RoleWorker}, RoleWorker))
	assert.NoError(t, RequireRole(Principal{Role: RoleAdmin}, RoleWorker))
	assert.Error(t, RequireRole(Principal{Role: RoleAgent}, RoleWorker))
}

func TestSubject(t *testing.T) {
	agent := Principal{UserID: "u1", Role: RoleAgent}
	admin := Principal{UserID: "root", Role: RoleAdmin}

	u, err := Subject(agent, "")
	require.NoError(t, err)
	assert.Equal(t, "u1", u)

	_, err = Subject(agent, "u2")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	u, err = Subject(admin, "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", u)
}
