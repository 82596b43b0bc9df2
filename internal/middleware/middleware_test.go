package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/roomsplit/internal/auth"
	"github.com/mmynk/roomsplit/internal/metrics"
)

type ping struct{}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	token, err := jwtManager.Generate("room-105")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantOK   bool
	}{
		{name: "valid token", header: "Bearer " + token, wantOK: true},
		{name: "missing header", header: "", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + token, wantCode: connect.CodeUnauthenticated},
		{name: "bad token", header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var household string
			next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				household = GetHousehold(ctx)
				return connect.NewResponse(&ping{}), nil
			})

			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(jwtManager)(next)(context.Background(), req)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if household != "room-105" {
					t.Errorf("household = %q, want room-105", household)
				}
				return
			}
			if connect.CodeOf(err) != tt.wantCode {
				t.Errorf("code = %v, want %v", connect.CodeOf(err), tt.wantCode)
			}
		})
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	wantErr := connect.NewError(connect.CodeNotFound, errors.New("missing"))
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, wantErr
	})

	_, err := LoggingInterceptor()(next)(context.Background(), connect.NewRequest(&ping{}))
	if err != wantErr {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	calls := 0
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		calls++
		if calls == 2 {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))
		}
		return connect.NewResponse(&ping{}), nil
	})

	handler := MetricsInterceptor(m)(next)
	handler(context.Background(), connect.NewRequest(&ping{}))
	handler(context.Background(), connect.NewRequest(&ping{}))

	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "ok")); got != 1 {
		t.Errorf("ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "invalid_argument")); got != 1 {
		t.Errorf("invalid_argument count = %v, want 1", got)
	}
}
