package cmds

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/aradsms/unisender_services/internal/platform/config"
	"github.com/aradsms/unisender_services/internal/platform/logger"
	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/app"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

type call struct {
	op     domain.Operation
	params domain.OperationParams
}

// scriptedTransport answers each operation from a fixed table.
type scriptedTransport struct {
	replies map[domain.Operation]domain.RawPayload
	errs    map[domain.Operation]error
	calls   []call
}

func (s *scriptedTransport) call(_ context.Context, op domain.Operation, params domain.OperationParams) (domain.RawPayload, error) {
	s.calls = append(s.calls, call{op: op, params: params})
	if err, ok := s.errs[op]; ok {
		return domain.RawPayload{}, err
	}
	if reply, ok := s.replies[op]; ok {
		return reply, nil
	}
	return domain.TextPayload(`{"result":{}}`), nil
}

func run(t *testing.T, cfg *config.Config, st *scriptedTransport, args ...string) (string, error) {
	t.Helper()
	log := logger.Discard()
	global := &CmdGlobal{
		Config:  cfg,
		Logger:  log,
		Gateway: app.NewGatewayClient(unisenderapi.TransportFunc("test", st.call), log),
	}

	root := NewRootCommand(global)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSms_DefaultSender(t *testing.T) {
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationSendSms: domain.TextPayload(`{"result":{"sms_id":"77"}}`),
	}}

	out, err := run(t, &config.Config{DefaultSMSSender: "Acme"}, st, "sms", "+15551234567", "Hello", "--list-id", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Sender: Acme")
	assert.Contains(t, out, "SMS sent successfully!")
	assert.Contains(t, out, `"sms_id": "77"`)
	require.Len(t, st.calls, 1)
	assert.Equal(t, domain.OperationParams{
		"phone":    "+15551234567",
		"text":     "Hello",
		"sender":   "Acme",
		"list_ids": "3",
	}, st.calls[0].params)
}

func TestSms_MissingSender(t *testing.T) {
	st := &scriptedTransport{}

	_, err := run(t, &config.Config{}, st, "sms", "+15551234567", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sender name is required")
	assert.Empty(t, st.calls)
}

func TestSms_Failures(t *testing.T) {
	cfg := &config.Config{DefaultSMSSender: "Acme"}

	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationSendSms: domain.TextPayload(`{"error":"Invalid phone","code":"invalid_arg"}`),
	}}
	out, err := run(t, cfg, st, "sms", "bad", "Hello")
	require.Error(t, err)
	assert.Equal(t, "failed to send SMS: Invalid phone", err.Error())
	assert.Contains(t, out, "Failed")

	st = &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationSendSms: domain.FailedPayload(),
	}}
	_, err = run(t, cfg, st, "sms", "+15551234567", "Hello", "--sender", "Shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed")
	assert.Equal(t, "Shop", st.calls[0].params["sender"])

	boom := errors.New("connection refused")
	st = &scriptedTransport{errs: map[domain.Operation]error{domain.OperationSendSms: boom}}
	_, err = run(t, cfg, st, "sms", "+15551234567", "Hello")
	require.ErrorIs(t, err, boom)
}

func TestSms_RequiresTwoArgs(t *testing.T) {
	_, err := run(t, &config.Config{DefaultSMSSender: "Acme"}, &scriptedTransport{}, "sms", "+15551234567")
	require.Error(t, err)
}

func TestEmail(t *testing.T) {
	cfg := &config.Config{DefaultEmailSender: "noreply@acme.test"}

	_, err := run(t, cfg, &scriptedTransport{}, "email", "jane@example.com", "Hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email body is required")

	_, err = run(t, &config.Config{}, &scriptedTransport{}, "email", "jane@example.com", "Hi", "--body", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sender email is required")

	st := &scriptedTransport{}
	out, err := run(t, cfg, st, "email", "jane@example.com", "Hi", "--html-body", "<p>Hi</p>", "--sender-name", "Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "Email sent successfully!")
	require.Len(t, st.calls, 1)
	assert.Equal(t, domain.OperationSendEmail, st.calls[0].op)
	assert.Equal(t, domain.OperationParams{
		"email":       "jane@example.com",
		"subject":     "Hi",
		"sender":      "noreply@acme.test",
		"body_html":   "<p>Hi</p>",
		"sender_name": "Acme",
	}, st.calls[0].params)
}

func TestLists_Table(t *testing.T) {
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetLists: domain.TextPayload(`{"result":[{"id":1,"title":"Newsletter","created":"2024-01-01"},{"id":2,"title":"VIP","description":null}]}`),
	}}

	out, err := run(t, &config.Config{}, st, "lists")
	require.NoError(t, err)

	assert.Contains(t, out, "Contact Lists:")
	assert.Contains(t, out, "Newsletter")
	assert.Contains(t, out, "VIP")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "N/A")
}

func TestLists_JSONAndEmpty(t *testing.T) {
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetLists: domain.TextPayload(`{"result":[{"id":1,"title":"Newsletter"}]}`),
	}}
	out, err := run(t, &config.Config{}, st, "lists", "--format", "json")
	require.NoError(t, err)
	start := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, start, 0)
	assert.Equal(t, "Newsletter", gjson.Get(out[start:], "result.0.title").String())

	st = &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetLists: domain.TextPayload(`{"result":[]}`),
	}}
	out, err = run(t, &config.Config{}, st, "lists")
	require.NoError(t, err)
	assert.Contains(t, out, "No contact lists found.")

	_, err = run(t, &config.Config{}, st, "lists", "--format", "yaml")
	require.Error(t, err)
}

func TestLists_DomainFailure(t *testing.T) {
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetLists: domain.TextPayload(`{"error":"Invalid API key","code":"invalid_api_key"}`),
	}}

	_, err := run(t, &config.Config{}, st, "lists")
	require.Error(t, err)
	assert.Equal(t, "failed to get lists: Invalid API key", err.Error())
}

func TestStatus(t *testing.T) {
	cfg := &config.Config{
		APIKey:      "secret",
		Encoding:    "UTF-8",
		RetryCount:  4,
		Platform:    "My Shop",
		Lang:        "en",
		EnableCache: true,
	}
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetCurrencyRates: domain.TextPayload(`{"result":[{"currency":"USD","rate":1}]}`),
	}}

	out, err := run(t, cfg, st, "status", "--detailed")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration Check:")
	assert.Contains(t, out, "My Shop")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "API Connection: Successful")
	assert.Contains(t, out, "Response Time:")
	assert.Contains(t, out, "Contact Lists")
	assert.Contains(t, out, "User Fields")
	assert.Contains(t, out, "• Cache: Enabled")
	assert.Contains(t, out, "• Rate limiting: Disabled")

	var ops []domain.Operation
	for _, c := range st.calls {
		ops = append(ops, c.op)
	}
	assert.Equal(t, []domain.Operation{
		domain.OperationGetCurrencyRates,
		domain.OperationGetCurrencyRates,
		domain.OperationGetLists,
		domain.OperationGetFields,
	}, ops)
}

func TestStatus_InvalidAPIKeyTip(t *testing.T) {
	st := &scriptedTransport{replies: map[domain.Operation]domain.RawPayload{
		domain.OperationGetCurrencyRates: domain.TextPayload(`{"error":"Invalid API key","code":"invalid_api_key"}`),
	}}

	out, err := run(t, &config.Config{}, st, "status")
	require.Error(t, err)
	assert.Contains(t, out, "API Connection: Failed")
	assert.Contains(t, out, "Tip: Check UNISENDER_API_KEY")
	assert.NotContains(t, out, "Detailed Information:")
}
