package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/pkg/api"
)

// ParticipantServiceName is the fully-qualified name of the ParticipantService service.
const ParticipantServiceName = "roomsplit.v1.ParticipantService"

const (
	ParticipantServiceAddParticipantProcedure    = "/roomsplit.v1.ParticipantService/AddParticipant"
	ParticipantServiceListParticipantsProcedure  = "/roomsplit.v1.ParticipantService/ListParticipants"
	ParticipantServiceDeleteParticipantProcedure = "/roomsplit.v1.ParticipantService/DeleteParticipant"
)

// ParticipantServiceHandler is implemented by the participant service.
type ParticipantServiceHandler interface {
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewParticipantServiceHandler(svc ParticipantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	addParticipantHandler := connect.NewUnaryHandler(ParticipantServiceAddParticipantProcedure, svc.AddParticipant, opts...)
	listParticipantsHandler := connect.NewUnaryHandler(ParticipantServiceListParticipantsProcedure, svc.ListParticipants, opts...)
	deleteParticipantHandler := connect.NewUnaryHandler(ParticipantServiceDeleteParticipantProcedure, svc.DeleteParticipant, opts...)

	return "/" + ParticipantServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ParticipantServiceAddParticipantProcedure:
			addParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case ParticipantServiceDeleteParticipantProcedure:
			deleteParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedParticipantServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedParticipantServiceHandler struct{}

func (UnimplementedParticipantServiceHandler) AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("roomsplit.v1.ParticipantService.AddParticipant is not implemented"))
}

func (UnimplementedParticipantServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("roomsplit.v1.ParticipantService.ListParticipants is not implemented"))
}

func (UnimplementedParticipantServiceHandler) DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("roomsplit.v1.ParticipantService.DeleteParticipant is not implemented"))
}

// ParticipantServiceClient is a client for the roomsplit.v1.ParticipantService service.
type ParticipantServiceClient interface {
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceClient constructs a client for the roomsplit.v1.ParticipantService service.
func NewParticipantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ParticipantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &participantServiceClient{
		addParticipant:    connect.NewClient[api.AddParticipantRequest, api.AddParticipantResponse](httpClient, baseURL+ParticipantServiceAddParticipantProcedure, opts...),
		listParticipants:  connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](httpClient, baseURL+ParticipantServiceListParticipantsProcedure, opts...),
		deleteParticipant: connect.NewClient[api.DeleteParticipantRequest, api.DeleteParticipantResponse](httpClient, baseURL+ParticipantServiceDeleteParticipantProcedure, opts...),
	}
}

type participantServiceClient struct {
	addParticipant    *connect.Client[api.AddParticipantRequest, api.AddParticipantResponse]
	listParticipants  *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	deleteParticipant *connect.Client[api.DeleteParticipantRequest, api.DeleteParticipantResponse]
}

func (c *participantServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *participantServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *participantServiceClient) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return c.deleteParticipant.CallUnary(ctx, req)
}
