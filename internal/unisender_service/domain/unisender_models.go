package domain

// Operation is the name of a remote Unisender API method, e.g. "sendSms".
type Operation string

const (
	OperationSendSms               Operation = "sendSms"
	OperationSendEmail             Operation = "sendEmail"
	OperationGetLists              Operation = "getLists"
	OperationCreateList            Operation = "createList"
	OperationUpdateList            Operation = "updateList"
	OperationDeleteList            Operation = "deleteList"
	OperationExclude               Operation = "exclude"
	OperationUnsubscribe           Operation = "unsubscribe"
	OperationImportContacts        Operation = "importContacts"
	OperationGetTotalContactsCount Operation = "getTotalContactsCount"
	OperationGetContactCount       Operation = "getContactCount"
	OperationCreateEmailMessage    Operation = "createEmailMessage"
	OperationCreateSmsMessage      Operation = "createSmsMessage"
	OperationCreateCampaign        Operation = "createCampaign"
	OperationGetCampaigns          Operation = "getCampaigns"
	OperationGetCampaignStatus     Operation = "getCampaignStatus"
	OperationGetFields             Operation = "getFields"
	OperationCreateField           Operation = "createField"
	OperationUpdateField           Operation = "updateField"
	OperationDeleteField           Operation = "deleteField"
	OperationGetTags               Operation = "getTags"
	OperationDeleteTag             Operation = "deleteTag"
	OperationIsContactInLists      Operation = "isContactInLists"
	OperationGetContactFieldValues Operation = "getContactFieldValues"
	OperationGetContact            Operation = "getContact"
	OperationSubscribe             Operation = "subscribe"
	OperationTaskExportContacts    Operation = "taskExportContacts"
	OperationGetTaskResult         Operation = "getTaskResult"
	OperationGetCurrencyRates      Operation = "getCurrencyRates"
	OperationValidateSender        Operation = "validateSender"
	OperationSetSenderDomain       Operation = "setSenderDomain"
	OperationGetSenderDomainList   Operation = "getSenderDomainList"
	OperationGetCheckedEmail       Operation = "getCheckedEmail"
)

func (o Operation) String() string { return string(o) }

// OperationParams holds the arguments of one remote call. Values are scalars,
// lists ([]string, []any, ...) or one level of nested maps for indexed fields
// such as fields[email].
type OperationParams map[string]any

// Clone returns a shallow copy so callers can add defaults without touching
// the map they were handed.
func (p OperationParams) Clone() OperationParams {
	out := make(OperationParams, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Mapping is a decoded JSON object returned by the remote API.
type Mapping map[string]any

// RawPayload is what the transport hands back for one call: either the
// response text or the transport-failure sentinel (Failed == true).
type RawPayload struct {
	Body   string
	Failed bool
}

// FailedPayload is the sentinel for "the request could not be completed".
func FailedPayload() RawPayload { return RawPayload{Failed: true} }

// TextPayload wraps a received response body.
func TextPayload(body string) RawPayload { return RawPayload{Body: body} }
