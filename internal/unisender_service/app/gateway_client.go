package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// GatewayClient issues exactly one transport call per operation and returns
// the normalized result. It never retries and never swallows transport
// errors: they are logged with the operation and params, then returned as is.
//
// GatewayClient holds no mutable state and is safe for concurrent use.
type GatewayClient struct {
	transport unisenderapi.Transport
	logger    *slog.Logger
}

// NewGatewayClient creates a new GatewayClient.
func NewGatewayClient(transport unisenderapi.Transport, logger *slog.Logger) *GatewayClient {
	return &GatewayClient{
		transport: transport,
		logger:    logger.With("component", "unisender_gateway", "transport", transport.GetName()),
	}
}

// TransportName returns the name of the underlying transport.
func (c *GatewayClient) TransportName() string {
	return c.transport.GetName()
}

func (c *GatewayClient) invoke(ctx context.Context, op domain.Operation, params domain.OperationParams, call func() (domain.RawPayload, error)) (domain.RemoteResult, error) {
	transportName := c.transport.GetName()
	timer := prometheus.NewTimer(gatewayCallDurationHist.WithLabelValues(transportName, op.String()))
	defer timer.ObserveDuration()

	logger := c.logger.With("operation", op, "call_id", uuid.NewString())

	raw, err := call()
	if err != nil {
		gatewayCallsCounter.WithLabelValues(transportName, op.String(), outcomeException).Inc()
		logger.ErrorContext(ctx, fmt.Sprintf("Unisender %s failed", op), "params", params, "error", err)
		return domain.RemoteResult{}, err
	}

	result := domain.Normalize(raw)
	outcome := domain.Classify(result)
	gatewayCallsCounter.WithLabelValues(transportName, op.String(), string(outcome)).Inc()

	switch outcome {
	case domain.OutcomeSuccess:
		logger.DebugContext(ctx, "Unisender call succeeded")
	case domain.OutcomeDomainFailure:
		msg, _ := result.Error()
		code, _ := domain.ErrorCode(result.Decoded)
		logger.InfoContext(ctx, "Unisender rejected call", "error", msg, "code", code)
	default:
		msg, _ := result.Error()
		logger.WarnContext(ctx, "Unisender call did not produce a response", "outcome", outcome, "error", msg, "params", params)
	}
	return result, nil
}

// SendSms sends SMS to one or several recipients.
func (c *GatewayClient) SendSms(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationSendSms, params, func() (domain.RawPayload, error) {
		return c.transport.SendSms(ctx, params)
	})
}

// SendEmail sends an email without personalization.
func (c *GatewayClient) SendEmail(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationSendEmail, params, func() (domain.RawPayload, error) {
		return c.transport.SendEmail(ctx, params)
	})
}

// GetLists returns all available campaign lists.
func (c *GatewayClient) GetLists(ctx context.Context) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetLists, nil, func() (domain.RawPayload, error) {
		return c.transport.GetLists(ctx)
	})
}

// CreateList creates a new contact list.
func (c *GatewayClient) CreateList(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationCreateList, params, func() (domain.RawPayload, error) {
		return c.transport.CreateList(ctx, params)
	})
}

// UpdateList updates campaign list properties.
func (c *GatewayClient) UpdateList(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationUpdateList, params, func() (domain.RawPayload, error) {
		return c.transport.UpdateList(ctx, params)
	})
}

// DeleteList deletes a list.
func (c *GatewayClient) DeleteList(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationDeleteList, params, func() (domain.RawPayload, error) {
		return c.transport.DeleteList(ctx, params)
	})
}

// Exclude removes a contact from lists.
func (c *GatewayClient) Exclude(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationExclude, params, func() (domain.RawPayload, error) {
		return c.transport.Exclude(ctx, params)
	})
}

// Unsubscribe unsubscribes a contact from lists.
func (c *GatewayClient) Unsubscribe(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationUnsubscribe, params, func() (domain.RawPayload, error) {
		return c.transport.Unsubscribe(ctx, params)
	})
}

// ImportContacts bulk imports contacts.
func (c *GatewayClient) ImportContacts(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationImportContacts, params, func() (domain.RawPayload, error) {
		return c.transport.ImportContacts(ctx, params)
	})
}

func (c *GatewayClient) GetTotalContactsCount(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetTotalContactsCount, params, func() (domain.RawPayload, error) {
		return c.transport.GetTotalContactsCount(ctx, params)
	})
}

// GetContactCount returns the number of contacts in a list.
func (c *GatewayClient) GetContactCount(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetContactCount, params, func() (domain.RawPayload, error) {
		return c.transport.GetContactCount(ctx, params)
	})
}

// CreateEmailMessage creates an email message without sending it.
func (c *GatewayClient) CreateEmailMessage(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationCreateEmailMessage, params, func() (domain.RawPayload, error) {
		return c.transport.CreateEmailMessage(ctx, params)
	})
}

// CreateSmsMessage creates an SMS message without sending it.
func (c *GatewayClient) CreateSmsMessage(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationCreateSmsMessage, params, func() (domain.RawPayload, error) {
		return c.transport.CreateSmsMessage(ctx, params)
	})
}

func (c *GatewayClient) CreateCampaign(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationCreateCampaign, params, func() (domain.RawPayload, error) {
		return c.transport.CreateCampaign(ctx, params)
	})
}

func (c *GatewayClient) GetCampaigns(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetCampaigns, params, func() (domain.RawPayload, error) {
		return c.transport.GetCampaigns(ctx, params)
	})
}

func (c *GatewayClient) GetCampaignStatus(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetCampaignStatus, params, func() (domain.RawPayload, error) {
		return c.transport.GetCampaignStatus(ctx, params)
	})
}

// GetFields returns the user fields.
func (c *GatewayClient) GetFields(ctx context.Context) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetFields, nil, func() (domain.RawPayload, error) {
		return c.transport.GetFields(ctx)
	})
}

func (c *GatewayClient) CreateField(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationCreateField, params, func() (domain.RawPayload, error) {
		return c.transport.CreateField(ctx, params)
	})
}

func (c *GatewayClient) UpdateField(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationUpdateField, params, func() (domain.RawPayload, error) {
		return c.transport.UpdateField(ctx, params)
	})
}

func (c *GatewayClient) DeleteField(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationDeleteField, params, func() (domain.RawPayload, error) {
		return c.transport.DeleteField(ctx, params)
	})
}

func (c *GatewayClient) GetTags(ctx context.Context) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetTags, nil, func() (domain.RawPayload, error) {
		return c.transport.GetTags(ctx)
	})
}

// DeleteTag deletes a user tag.
func (c *GatewayClient) DeleteTag(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationDeleteTag, params, func() (domain.RawPayload, error) {
		return c.transport.DeleteTag(ctx, params)
	})
}

// IsContactInLists checks whether a contact is in the given lists.
func (c *GatewayClient) IsContactInLists(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationIsContactInLists, params, func() (domain.RawPayload, error) {
		return c.transport.IsContactInLists(ctx, params)
	})
}

func (c *GatewayClient) GetContactFieldValues(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetContactFieldValues, params, func() (domain.RawPayload, error) {
		return c.transport.GetContactFieldValues(ctx, params)
	})
}

func (c *GatewayClient) GetContact(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetContact, params, func() (domain.RawPayload, error) {
		return c.transport.GetContact(ctx, params)
	})
}

// Subscribe subscribes a contact; Unisender detects the request IP when none is given.
func (c *GatewayClient) Subscribe(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationSubscribe, params, func() (domain.RawPayload, error) {
		return c.transport.Subscribe(ctx, params)
	})
}

// TaskExportContacts starts an asynchronous contact export. Poll it with GetTaskResult.
func (c *GatewayClient) TaskExportContacts(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationTaskExportContacts, params, func() (domain.RawPayload, error) {
		return c.transport.TaskExportContacts(ctx, params)
	})
}

func (c *GatewayClient) GetTaskResult(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetTaskResult, params, func() (domain.RawPayload, error) {
		return c.transport.GetTaskResult(ctx, params)
	})
}

func (c *GatewayClient) GetCurrencyRates(ctx context.Context) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetCurrencyRates, nil, func() (domain.RawPayload, error) {
		return c.transport.GetCurrencyRates(ctx)
	})
}

// ValidateSender requests validation of a sender email address.
func (c *GatewayClient) ValidateSender(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationValidateSender, params, func() (domain.RawPayload, error) {
		return c.transport.ValidateSender(ctx, params)
	})
}

func (c *GatewayClient) SetSenderDomain(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationSetSenderDomain, params, func() (domain.RawPayload, error) {
		return c.transport.SetSenderDomain(ctx, params)
	})
}

func (c *GatewayClient) GetSenderDomainList(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetSenderDomainList, params, func() (domain.RawPayload, error) {
		return c.transport.GetSenderDomainList(ctx, params)
	})
}

// GetCheckedEmail returns the sender email addresses that passed validation.
func (c *GatewayClient) GetCheckedEmail(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error) {
	return c.invoke(ctx, domain.OperationGetCheckedEmail, params, func() (domain.RawPayload, error) {
		return c.transport.GetCheckedEmail(ctx, params)
	})
}
