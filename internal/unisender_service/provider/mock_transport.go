package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// MockTransport answers every operation locally without touching the network.
type MockTransport struct {
	unisenderapi.Dispatch

	logger         *slog.Logger
	FailSend       bool          // return the transport-failure sentinel
	SimulatedDelay time.Duration // to simulate network latency
}

var _ unisenderapi.Transport = (*MockTransport)(nil)

// NewMockTransport creates a new MockTransport.
func NewMockTransport(logger *slog.Logger, failSend bool, delay time.Duration) *MockTransport {
	t := &MockTransport{
		logger:         logger.With("provider", "unisender_mock"),
		FailSend:       failSend,
		SimulatedDelay: delay,
	}
	t.Dispatch = unisenderapi.TransportFunc("mock", t.call)
	return t
}

func (t *MockTransport) call(ctx context.Context, op domain.Operation, params domain.OperationParams) (domain.RawPayload, error) {
	t.logger.InfoContext(ctx, "MockTransport: call", "operation", op, "param_count", len(params))

	if t.SimulatedDelay > 0 {
		select {
		case <-time.After(t.SimulatedDelay):
		case <-ctx.Done():
			return domain.RawPayload{}, ctx.Err()
		}
	}

	if t.FailSend {
		t.logger.WarnContext(ctx, "mock transport simulated failure", "operation", op)
		return domain.FailedPayload(), nil
	}

	body, err := json.Marshal(map[string]any{"result": mockResult(op, params)})
	if err != nil {
		return domain.RawPayload{}, fmt.Errorf("mock transport: %w", err)
	}
	return domain.TextPayload(string(body)), nil
}

// mockResult returns a plausible "result" value for op.
func mockResult(op domain.Operation, params domain.OperationParams) any {
	id := uuid.NewString()
	switch op {
	case domain.OperationSendSms:
		return map[string]any{"currency": "USD", "price": 0.01, "sms_id": id, "phone": params["phone"]}
	case domain.OperationSendEmail:
		return []map[string]any{{"index": 0, "id": id, "email": params["email"]}}
	case domain.OperationGetLists:
		return []map[string]any{{"id": 1, "title": "Mock list", "description": "Local development list", "created": "2024-01-01 00:00:00"}}
	case domain.OperationGetFields, domain.OperationGetTags, domain.OperationGetCampaigns:
		return []any{}
	case domain.OperationGetCurrencyRates:
		return []map[string]any{{"currency": "USD", "rate": 1}}
	case domain.OperationCreateList, domain.OperationCreateField, domain.OperationCreateCampaign,
		domain.OperationCreateEmailMessage, domain.OperationCreateSmsMessage:
		return map[string]any{"id": id}
	case domain.OperationTaskExportContacts:
		return map[string]any{"task_uuid": id, "status": "new"}
	default:
		return map[string]any{}
	}
}
