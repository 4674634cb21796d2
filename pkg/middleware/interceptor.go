package middleware

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	RoleKey     contextKey = "role"
	LanguageKey contextKey = "language"
)

// ContextInterceptor copies identity and language headers from the incoming
// metadata into the request context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get("x-user-id"); len(v) > 0 {
				ctx = context.WithValue(ctx, UserIDKey, v[0])
			}
			if v := md.Get("x-user-role"); len(v) > 0 {
				ctx = context.WithValue(ctx, RoleKey, v[0])
			}
			if v := md.Get("accept-language"); len(v) > 0 {
				ctx = context.WithValue(ctx, LanguageKey, v[0])
			}
		}
		return handler(ctx, req)
	}
}

func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic in handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal error")
			}
			fields := []zap.Field{
				zap.String("method", info.FullMethod),
				zap.Duration("took", time.Since(start)),
				zap.String("code", status.Code(err).String()),
			}
			if err != nil {
				log.Warn("grpc request failed", append(fields, zap.Error(err))...)
				return
			}
			log.Debug("grpc request", fields...)
		}()
		return handler(ctx, req)
	}
}

func Language(ctx context.Context) string {
	if v, ok := ctx.Value(LanguageKey).(string); ok {
		return v
	}
	return ""
}
