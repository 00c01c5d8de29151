package backend

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/errs"
)

// envelope is the { success, data, message } wrapper most endpoints use.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
}

// Unwrap normalizes the three response shapes: an envelope, a bare array, or a bare payload.
// An envelope with success:false is returned as a domain rejection.
func Unwrap(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("null"), nil
	}
	if raw[0] != '{' {
		return json.RawMessage(raw), nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, infra.NewError(infra.KindUpstream, 0, "Malformed response from server", err)
	}
	if env.Success != nil && !*env.Success {
		e := errorFromBody(http.StatusOK, raw)
		e.Kind = infra.KindDomainRejection
		return nil, e
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data, nil
	}
	return json.RawMessage(raw), nil
}

// UnwrapList is Unwrap followed by list extraction: a bare array is used as is,
// an object yields its first array-valued field, anything else is an empty list.
func UnwrapList(raw []byte) (json.RawMessage, error) {
	payload, err := Unwrap(raw)
	if err != nil {
		return nil, err
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) > 0 && payload[0] == '[' {
		return payload, nil
	}
	if len(payload) > 0 && payload[0] == '{' {
		if list, ok := firstArrayField(payload); ok {
			return list, nil
		}
	}
	return json.RawMessage("[]"), nil
}

// firstArrayField walks the object in document order.
func firstArrayField(obj []byte) (json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(obj))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			if err == io.EOF {
				break
			}
			return nil, false
		}
		if v := bytes.TrimSpace(value); len(v) > 0 && v[0] == '[' {
			return v, true
		}
	}
	return nil, false
}

// errorFromBody builds an Error from a failed response.
// Message precedence: message, error (string or object), status text.
func errorFromBody(status int, body []byte) infra.Error {
	var msg, code string
	if status >= 400 {
		msg = http.StatusText(status)
	}
	flags := map[string]bool{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		var env envelope
		_ = json.Unmarshal(body, &env)
		code = env.Code

		var nested struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		var errText string
		switch {
		case env.Message != "":
			msg = env.Message
		case json.Unmarshal(env.Error, &errText) == nil && errText != "":
			msg = errText
		case json.Unmarshal(env.Error, &nested) == nil && nested.Message != "":
			msg = nested.Message
		}
		if code == "" {
			code = nested.Code
		}

		for name, v := range fields {
			var b bool
			if name != "success" && json.Unmarshal(v, &b) == nil {
				flags[name] = b
			}
		}
	}
	if msg == "" {
		msg = "Request failed"
	}

	e := infra.NewError(kindForStatus(status), status, msg, errs.Newf("backend responded %d", status))
	e.Code = code
	if len(flags) > 0 {
		e.Flags = flags
	}
	return e
}

func kindForStatus(status int) infra.ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindAuthExpired
	case status == 0 || status == http.StatusRequestTimeout || status >= 500:
		return infra.KindTransientNetwork
	default:
		return infra.KindUpstream
	}
}
