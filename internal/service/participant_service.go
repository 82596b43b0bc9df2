package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/internal/calculator"
	"github.com/mmynk/roomsplit/internal/events"
	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
	"github.com/mmynk/roomsplit/pkg/api"
	"github.com/mmynk/roomsplit/pkg/api/apiconnect"
)

// ParticipantService implements the Connect ParticipantService
type ParticipantService struct {
	apiconnect.UnimplementedParticipantServiceHandler
	store     storage.Store
	publisher events.Publisher
}

// NewParticipantService creates a new ParticipantService. A nil publisher
// disables ledger events.
func NewParticipantService(store storage.Store, publisher events.Publisher) *ParticipantService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ParticipantService{store: store, publisher: publisher}
}

// AddParticipant adds a household member.
func (s *ParticipantService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("AddParticipant request received", "name", name)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, calculator.ErrEmptyName)
	}

	participant := models.NewParticipant(name)
	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		slog.Error("AddParticipant failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Participant added", "participant_id", participant.ID)
	publish(ctx, s.publisher, events.ParticipantAdded, participant.ID)

	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: toAPIParticipant(participant),
	}), nil
}

// ListParticipants returns every current participant, oldest first.
func (s *ParticipantService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	slog.Info("ListParticipants request received")

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("ListParticipants failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*api.Participant, len(participants))
	for i := range participants {
		out[i] = toAPIParticipant(&participants[i])
	}

	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// DeleteParticipant removes a participant. Their historical expenses stay.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	slog.Info("DeleteParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, calculator.ErrEmptyID)
	}

	if err := s.store.DeleteParticipant(ctx, req.Msg.ParticipantID); err != nil {
		slog.Error("DeleteParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Participant deleted", "participant_id", req.Msg.ParticipantID)
	publish(ctx, s.publisher, events.ParticipantRemoved, req.Msg.ParticipantID)

	return connect.NewResponse(&api.DeleteParticipantResponse{}), nil
}
