package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/aradsms/unisender_services/internal/platform/logger"
	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// mockCaller backs a Dispatch transport with testify expectations.
type mockCaller struct {
	mock.Mock
}

func (m *mockCaller) Call(ctx context.Context, op domain.Operation, params domain.OperationParams) (domain.RawPayload, error) {
	args := m.Called(ctx, op, params)
	return args.Get(0).(domain.RawPayload), args.Error(1)
}

func newTestClient(caller *mockCaller) *GatewayClient {
	return NewGatewayClient(unisenderapi.TransportFunc("test", caller.Call), logger.Discard())
}

func TestGatewayClient_SendSms_TransportFailure(t *testing.T) {
	caller := new(mockCaller)
	params := domain.OperationParams{"phone": "+15551234567", "text": "Hello", "sender": "Acme"}
	caller.On("Call", mock.Anything, domain.OperationSendSms, params).Return(domain.FailedPayload(), nil).Once()

	result, err := newTestClient(caller).SendSms(context.Background(), params)
	require.NoError(t, err)

	assert.True(t, result.TransportFailure)
	assert.False(t, domain.IsSuccess(result.Mapping()))
	msg, ok := domain.GetErrorMessage(result.Mapping())
	assert.True(t, ok)
	assert.Equal(t, "API request failed", msg)
	caller.AssertExpectations(t)
}

func TestGatewayClient_DecodeFailure(t *testing.T) {
	caller := new(mockCaller)
	caller.On("Call", mock.Anything, domain.OperationGetLists, domain.OperationParams(nil)).
		Return(domain.TextPayload("<html>502 Bad Gateway</html>"), nil).Once()

	result, err := newTestClient(caller).GetLists(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DecodeFailure)
	assert.Equal(t, "Invalid JSON response", result.Mapping()["error"])
	assert.Equal(t, "<html>502 Bad Gateway</html>", result.Mapping()["raw_response"])
	caller.AssertExpectations(t)
}

func TestGatewayClient_SuccessAndDomainFailure(t *testing.T) {
	caller := new(mockCaller)
	caller.On("Call", mock.Anything, domain.OperationCreateList, mock.Anything).
		Return(domain.TextPayload(`{"result":{"id":42}}`), nil).Once()
	caller.On("Call", mock.Anything, domain.OperationDeleteList, mock.Anything).
		Return(domain.TextPayload(`{"error":"List not found","code":"invalid_arg"}`), nil).Once()

	client := newTestClient(caller)

	created, err := client.CreateList(context.Background(), domain.OperationParams{"title": "Newsletter"})
	require.NoError(t, err)
	assert.True(t, created.Succeeded())
	assert.Equal(t, domain.OutcomeSuccess, domain.Classify(created))

	deleted, err := client.DeleteList(context.Background(), domain.OperationParams{"list_id": 7})
	require.NoError(t, err)
	assert.False(t, deleted.Succeeded())
	assert.Equal(t, domain.OutcomeDomainFailure, domain.Classify(deleted))
	msg, ok := deleted.Error()
	assert.True(t, ok)
	assert.Equal(t, "List not found", msg)

	caller.AssertExpectations(t)
}

func TestGatewayClient_TransportErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset by peer")
	caller := new(mockCaller)
	caller.On("Call", mock.Anything, domain.OperationSubscribe, mock.Anything).
		Return(domain.RawPayload{}, boom).Once()

	var buf bytes.Buffer
	client := NewGatewayClient(unisenderapi.TransportFunc("test", caller.Call), logger.NewWithWriter(&buf, "debug"))

	params := domain.OperationParams{"list_ids": "1", "fields": map[string]string{"email": "a@example.com"}}
	_, err := client.Subscribe(context.Background(), params)
	require.Error(t, err)
	assert.Same(t, boom, err)

	line := buf.String()
	assert.Equal(t, slog.LevelError.String(), gjson.Get(line, "level").String())
	assert.Equal(t, "Unisender subscribe failed", gjson.Get(line, "msg").String())
	assert.Equal(t, "subscribe", gjson.Get(line, "operation").String())
	assert.Equal(t, "a@example.com", gjson.Get(line, "params.fields.email").String())
	assert.Equal(t, "connection reset by peer", gjson.Get(line, "error").String())
	assert.NotEmpty(t, gjson.Get(line, "call_id").String())
	caller.AssertExpectations(t)
}

func TestGatewayClient_RoutesEveryOperation(t *testing.T) {
	ctx := context.Background()
	p := domain.OperationParams{"k": "v"}

	withParams := map[domain.Operation]func(c *GatewayClient) (domain.RemoteResult, error){
		domain.OperationSendSms:               func(c *GatewayClient) (domain.RemoteResult, error) { return c.SendSms(ctx, p) },
		domain.OperationSendEmail:             func(c *GatewayClient) (domain.RemoteResult, error) { return c.SendEmail(ctx, p) },
		domain.OperationCreateList:            func(c *GatewayClient) (domain.RemoteResult, error) { return c.CreateList(ctx, p) },
		domain.OperationUpdateList:            func(c *GatewayClient) (domain.RemoteResult, error) { return c.UpdateList(ctx, p) },
		domain.OperationDeleteList:            func(c *GatewayClient) (domain.RemoteResult, error) { return c.DeleteList(ctx, p) },
		domain.OperationExclude:               func(c *GatewayClient) (domain.RemoteResult, error) { return c.Exclude(ctx, p) },
		domain.OperationUnsubscribe:           func(c *GatewayClient) (domain.RemoteResult, error) { return c.Unsubscribe(ctx, p) },
		domain.OperationImportContacts:        func(c *GatewayClient) (domain.RemoteResult, error) { return c.ImportContacts(ctx, p) },
		domain.OperationGetTotalContactsCount: func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetTotalContactsCount(ctx, p) },
		domain.OperationGetContactCount:       func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetContactCount(ctx, p) },
		domain.OperationCreateEmailMessage:    func(c *GatewayClient) (domain.RemoteResult, error) { return c.CreateEmailMessage(ctx, p) },
		domain.OperationCreateSmsMessage:      func(c *GatewayClient) (domain.RemoteResult, error) { return c.CreateSmsMessage(ctx, p) },
		domain.OperationCreateCampaign:        func(c *GatewayClient) (domain.RemoteResult, error) { return c.CreateCampaign(ctx, p) },
		domain.OperationGetCampaigns:          func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetCampaigns(ctx, p) },
		domain.OperationGetCampaignStatus:     func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetCampaignStatus(ctx, p) },
		domain.OperationCreateField:           func(c *GatewayClient) (domain.RemoteResult, error) { return c.CreateField(ctx, p) },
		domain.OperationUpdateField:           func(c *GatewayClient) (domain.RemoteResult, error) { return c.UpdateField(ctx, p) },
		domain.OperationDeleteField:           func(c *GatewayClient) (domain.RemoteResult, error) { return c.DeleteField(ctx, p) },
		domain.OperationDeleteTag:             func(c *GatewayClient) (domain.RemoteResult, error) { return c.DeleteTag(ctx, p) },
		domain.OperationIsContactInLists:      func(c *GatewayClient) (domain.RemoteResult, error) { return c.IsContactInLists(ctx, p) },
		domain.OperationGetContactFieldValues: func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetContactFieldValues(ctx, p) },
		domain.OperationGetContact:            func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetContact(ctx, p) },
		domain.OperationSubscribe:             func(c *GatewayClient) (domain.RemoteResult, error) { return c.Subscribe(ctx, p) },
		domain.OperationTaskExportContacts:    func(c *GatewayClient) (domain.RemoteResult, error) { return c.TaskExportContacts(ctx, p) },
		domain.OperationGetTaskResult:         func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetTaskResult(ctx, p) },
		domain.OperationValidateSender:        func(c *GatewayClient) (domain.RemoteResult, error) { return c.ValidateSender(ctx, p) },
		domain.OperationSetSenderDomain:       func(c *GatewayClient) (domain.RemoteResult, error) { return c.SetSenderDomain(ctx, p) },
		domain.OperationGetSenderDomainList:   func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetSenderDomainList(ctx, p) },
		domain.OperationGetCheckedEmail:       func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetCheckedEmail(ctx, p) },
	}
	withoutParams := map[domain.Operation]func(c *GatewayClient) (domain.RemoteResult, error){
		domain.OperationGetLists:         func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetLists(ctx) },
		domain.OperationGetFields:        func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetFields(ctx) },
		domain.OperationGetTags:          func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetTags(ctx) },
		domain.OperationGetCurrencyRates: func(c *GatewayClient) (domain.RemoteResult, error) { return c.GetCurrencyRates(ctx) },
	}
	require.Len(t, withParams, 29)
	require.Len(t, withoutParams, 4)

	for op, call := range withParams {
		t.Run(op.String(), func(t *testing.T) {
			caller := new(mockCaller)
			caller.On("Call", mock.Anything, op, p).Return(domain.TextPayload(`{"result":[]}`), nil).Once()

			result, err := call(newTestClient(caller))
			require.NoError(t, err)
			assert.True(t, result.Succeeded())
			caller.AssertExpectations(t)
		})
	}
	for op, call := range withoutParams {
		t.Run(op.String(), func(t *testing.T) {
			caller := new(mockCaller)
			caller.On("Call", mock.Anything, op, domain.OperationParams(nil)).Return(domain.TextPayload(`{"result":{}}`), nil).Once()

			result, err := call(newTestClient(caller))
			require.NoError(t, err)
			assert.True(t, result.Succeeded())
			caller.AssertExpectations(t)
		})
	}
}

func TestGatewayClient_TransportName(t *testing.T) {
	client := newTestClient(new(mockCaller))
	assert.Equal(t, "test", client.TransportName())
}
