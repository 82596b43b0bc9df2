package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/pkg/api"
)

// SettlementServiceName is the fully-qualified name of the SettlementService service.
const SettlementServiceName = "roomsplit.v1.SettlementService"

const SettlementServiceGetDebtsProcedure = "/roomsplit.v1.SettlementService/GetDebts"

// SettlementServiceHandler is implemented by the settlement service.
type SettlementServiceHandler interface {
	GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	getDebtsHandler := connect.NewUnaryHandler(SettlementServiceGetDebtsProcedure, svc.GetDebts, opts...)

	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceGetDebtsProcedure:
			getDebtsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("roomsplit.v1.SettlementService.GetDebts is not implemented"))
}

// SettlementServiceClient is a client for the roomsplit.v1.SettlementService service.
type SettlementServiceClient interface {
	GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error)
}

// NewSettlementServiceClient constructs a client for the roomsplit.v1.SettlementService service.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &settlementServiceClient{
		getDebts: connect.NewClient[api.GetDebtsRequest, api.GetDebtsResponse](httpClient, baseURL+SettlementServiceGetDebtsProcedure, opts...),
	}
}

type settlementServiceClient struct {
	getDebts *connect.Client[api.GetDebtsRequest, api.GetDebtsResponse]
}

func (c *settlementServiceClient) GetDebts(ctx context.Context, req *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	return c.getDebts.CallUnary(ctx, req)
}
