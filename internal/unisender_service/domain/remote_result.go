package domain

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Fixed messages for the two failure states that never reach the remote API's
// own error reporting.
const (
	TransportFailureMessage = "API request failed"
	DecodeFailureMessage    = "Invalid JSON response"
)

// RemoteResult is the outcome of one call to the remote API. It is in exactly
// one of three states: transport failure, decode failure, or decoded mapping.
type RemoteResult struct {
	Raw              string  // response body as received; empty on transport failure
	Decoded          Mapping // nil unless the body decoded into a JSON object
	TransportFailure bool
	DecodeFailure    bool
}

// Normalize turns a raw transport payload into a RemoteResult. A decoded
// mapping is returned exactly as the remote API produced it.
func Normalize(raw RawPayload) RemoteResult {
	if raw.Failed {
		return RemoteResult{TransportFailure: true}
	}

	decoded, ok := decodeObject(raw.Body)
	if !ok {
		return RemoteResult{Raw: raw.Body, DecodeFailure: true}
	}
	return RemoteResult{Raw: raw.Body, Decoded: decoded}
}

// decodeObject accepts only a top-level JSON object. Arrays, scalars and null
// decode fine as JSON but cannot be a response mapping.
func decodeObject(body string) (Mapping, bool) {
	data := []byte(body)
	// Valid rejects trailing data the streaming decoder would ignore.
	// Malformed UTF-8 would otherwise be replaced with U+FFFD.
	if !json.Valid(data) || !utf8.Valid(data) {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded Mapping
	if err := dec.Decode(&decoded); err != nil || decoded == nil {
		return nil, false
	}
	return decoded, true
}

// Failed reports whether the call never produced a decoded mapping.
func (r RemoteResult) Failed() bool {
	return r.TransportFailure || r.DecodeFailure
}

// Succeeded reports whether the remote API accepted the call.
func (r RemoteResult) Succeeded() bool {
	return !r.Failed() && IsSuccess(r.Decoded)
}

// Error returns the human readable error for the result, if any.
func (r RemoteResult) Error() (string, bool) {
	switch {
	case r.TransportFailure:
		return TransportFailureMessage, true
	case r.DecodeFailure:
		return DecodeFailureMessage, true
	default:
		return GetErrorMessage(r.Decoded)
	}
}

// Mapping returns the decoded mapping, or for the failure states the envelope
// callers of the gateway have always received: {success:false, error:...}.
func (r RemoteResult) Mapping() Mapping {
	switch {
	case r.TransportFailure:
		return Mapping{"success": false, "error": TransportFailureMessage}
	case r.DecodeFailure:
		return Mapping{"success": false, "error": DecodeFailureMessage, "raw_response": r.Raw}
	default:
		return r.Decoded
	}
}

// Result returns the value under the "result" key, or nil.
func (r RemoteResult) Result() any {
	if r.Decoded == nil {
		return nil
	}
	return r.Decoded["result"]
}

// Outcome names the classification state of a RemoteResult.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeDomainFailure    Outcome = "domain_failure"
	OutcomeDecodeFailure    Outcome = "decode_failure"
	OutcomeTransportFailure Outcome = "transport_failure"
)

// Classify maps a result onto its Outcome.
func Classify(r RemoteResult) Outcome {
	switch {
	case r.TransportFailure:
		return OutcomeTransportFailure
	case r.DecodeFailure:
		return OutcomeDecodeFailure
	case IsSuccess(r.Decoded):
		return OutcomeSuccess
	default:
		return OutcomeDomainFailure
	}
}
