package unisenderapi

import (
	"context"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// CallFunc performs one remote call identified by its operation name.
type CallFunc func(ctx context.Context, op domain.Operation, params domain.OperationParams) (domain.RawPayload, error)

// Dispatch implements Transport by routing every method to a single CallFunc.
// Concrete transports embed it and supply their own call.
type Dispatch struct {
	Name string
	Call CallFunc
}

var _ Transport = Dispatch{}

// TransportFunc builds a Transport out of a plain function.
func TransportFunc(name string, call CallFunc) Dispatch {
	return Dispatch{Name: name, Call: call}
}

func (d Dispatch) GetName() string { return d.Name }

func (d Dispatch) SendSms(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationSendSms, params)
}

func (d Dispatch) SendEmail(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationSendEmail, params)
}

func (d Dispatch) GetLists(ctx context.Context) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetLists, nil)
}

func (d Dispatch) CreateList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationCreateList, params)
}

func (d Dispatch) UpdateList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationUpdateList, params)
}

func (d Dispatch) DeleteList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationDeleteList, params)
}

func (d Dispatch) Exclude(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationExclude, params)
}

func (d Dispatch) Unsubscribe(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationUnsubscribe, params)
}

func (d Dispatch) ImportContacts(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationImportContacts, params)
}

func (d Dispatch) GetTotalContactsCount(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetTotalContactsCount, params)
}

func (d Dispatch) GetContactCount(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetContactCount, params)
}

func (d Dispatch) IsContactInLists(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationIsContactInLists, params)
}

func (d Dispatch) GetContactFieldValues(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetContactFieldValues, params)
}

func (d Dispatch) GetContact(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetContact, params)
}

func (d Dispatch) Subscribe(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationSubscribe, params)
}

func (d Dispatch) CreateEmailMessage(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationCreateEmailMessage, params)
}

func (d Dispatch) CreateSmsMessage(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationCreateSmsMessage, params)
}

func (d Dispatch) CreateCampaign(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationCreateCampaign, params)
}

func (d Dispatch) GetCampaigns(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetCampaigns, params)
}

func (d Dispatch) GetCampaignStatus(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetCampaignStatus, params)
}

func (d Dispatch) GetFields(ctx context.Context) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetFields, nil)
}

func (d Dispatch) CreateField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationCreateField, params)
}

func (d Dispatch) UpdateField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationUpdateField, params)
}

func (d Dispatch) DeleteField(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationDeleteField, params)
}

func (d Dispatch) GetTags(ctx context.Context) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetTags, nil)
}

func (d Dispatch) DeleteTag(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationDeleteTag, params)
}

func (d Dispatch) TaskExportContacts(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationTaskExportContacts, params)
}

func (d Dispatch) GetTaskResult(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetTaskResult, params)
}

func (d Dispatch) GetCurrencyRates(ctx context.Context) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetCurrencyRates, nil)
}

func (d Dispatch) ValidateSender(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationValidateSender, params)
}

func (d Dispatch) SetSenderDomain(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationSetSenderDomain, params)
}

func (d Dispatch) GetSenderDomainList(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetSenderDomainList, params)
}

func (d Dispatch) GetCheckedEmail(ctx context.Context, params domain.OperationParams) (domain.RawPayload, error) {
	return d.Call(ctx, domain.OperationGetCheckedEmail, params)
}
