package unisenderapi

import (
	"context"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// Transport is the capability boundary to the Unisender API. Each method
// issues one remote call and returns either the response text or the
// failure sentinel (domain.FailedPayload). An error means the call itself
// blew up (bad params, cancelled context) and is propagated by callers.
//
// Any retry, compression or charset handling is the implementation's business.
type Transport interface {
	SendSms(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	SendEmail(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	GetLists(ctx context.Context) (domain.RawPayload, error)
	CreateList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	UpdateList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	DeleteList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	Exclude(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	Unsubscribe(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	ImportContacts(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetTotalContactsCount(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetContactCount(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	IsContactInLists(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetContactFieldValues(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetContact(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	Subscribe(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	CreateEmailMessage(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	CreateSmsMessage(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	CreateCampaign(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetCampaigns(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetCampaignStatus(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	GetFields(ctx context.Context) (domain.RawPayload, error)
	CreateField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	UpdateField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	DeleteField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	GetTags(ctx context.Context) (domain.RawPayload, error)
	DeleteTag(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	TaskExportContacts(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetTaskResult(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	GetCurrencyRates(ctx context.Context) (domain.RawPayload, error)

	ValidateSender(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	SetSenderDomain(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetSenderDomainList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)
	GetCheckedEmail(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error)

	// GetName returns the transport name for logs and metrics ("http", "mock").
	GetName() string
}
