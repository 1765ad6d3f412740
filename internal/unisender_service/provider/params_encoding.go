package provider

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// ErrInvalidParams is returned when operation params hold a value that cannot
// be put on the wire.
var ErrInvalidParams = errors.New("invalid operation params")

// encodeParams flattens params the way the Unisender API expects form fields:
// lists become key[0], key[1], ... and maps become key[name]. Booleans are
// sent as 1/0.
func encodeParams(params domain.OperationParams, transcode func(string) (string, error)) (url.Values, error) {
	form := url.Values{}
	for key, value := range params {
		if err := encodeValue(form, key, value, transcode); err != nil {
			return nil, err
		}
	}
	return form, nil
}

func encodeValue(form url.Values, key string, value any, transcode func(string) (string, error)) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		s, err := transcode(v)
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidParams, key, err)
		}
		form.Add(key, s)
	case bool:
		if v {
			form.Add(key, "1")
		} else {
			form.Add(key, "0")
		}
	case int:
		form.Add(key, strconv.Itoa(v))
	case int64:
		form.Add(key, strconv.FormatInt(v, 10))
	case float64:
		form.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
	case fmt.Stringer:
		return encodeValue(form, key, v.String(), transcode)
	case []string:
		for i, item := range v {
			if err := encodeValue(form, indexedKey(key, strconv.Itoa(i)), item, transcode); err != nil {
				return err
			}
		}
	case []int:
		for i, item := range v {
			form.Add(indexedKey(key, strconv.Itoa(i)), strconv.Itoa(item))
		}
	case []any:
		for i, item := range v {
			if err := encodeValue(form, indexedKey(key, strconv.Itoa(i)), item, transcode); err != nil {
				return err
			}
		}
	case map[string]string:
		for _, name := range sortedKeys(v) {
			if err := encodeValue(form, indexedKey(key, name), v[name], transcode); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, name := range sortedKeys(v) {
			if err := encodeValue(form, indexedKey(key, name), v[name], transcode); err != nil {
				return err
			}
		}
	case domain.OperationParams:
		return encodeValue(form, key, map[string]any(v), transcode)
	default:
		return fmt.Errorf("%w: field %q has unsupported type %T", ErrInvalidParams, key, value)
	}
	return nil
}

func indexedKey(key, index string) string {
	return key + "[" + index + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
