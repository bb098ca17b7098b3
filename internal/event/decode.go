package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns payload as T. In-process publishers hand over the
// typed struct or a pointer to it; payloads read back from JSON (dead
// letters, history) arrive as maps and are converted with a JSON round trip.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf(ErrMsgNilPayloadFormat, out)
		}
		return *v, nil
	case nil:
		return out, fmt.Errorf(ErrMsgNilPayloadFormat, out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayloadFormat, out, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayloadFormat, out, err)
	}
	return out, nil
}
