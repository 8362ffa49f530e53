package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a finished response. Non-2xx statuses map by code;
// a 2xx body of the form {"success":0,"error":"..."} maps to [ErrRejected]
// with the service's message.
func mapHTTPError(resp *resty.Response) error {
	if err := mapHTTPStatus(resp); err != nil {
		return err
	}
	return mapStatusBody(resp.Body())
}

// mapHTTPStatus classifies a response by its status code only. It is used for
// binary payloads whose body must not be inspected.
func mapHTTPStatus(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrServiceFailure, resp.StatusCode(), body)
		}
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

func mapStatusBody(body []byte) error {
	var st statusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		// non-JSON bodies are judged by the caller's decoder
		return nil
	}
	if st.Success != nil && *st.Success == 0 {
		msg := strings.TrimSpace(st.Error)
		if msg == "" {
			msg = "request was not successful"
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return nil
}

func errorMessage(body []byte) string {
	var st statusResponse
	if err := json.Unmarshal(body, &st); err == nil && st.Error != "" {
		return strings.TrimSpace(st.Error)
	}
	return strings.TrimSpace(string(body))
}
