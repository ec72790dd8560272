package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// maxBodyBytes caps request body size to keep a stray client from holding
// memory hostage.
const maxBodyBytes = 1 << 20

// pathID extracts the {id} path value as a positive record identifier.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, &roster.ValidationError{Field: "id", Message: fmt.Sprintf("must be a positive integer, got %q", raw)}
	}
	return id, nil
}

// decodeBody decodes the JSON request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &roster.ValidationError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}

// queryInt parses an optional integer query parameter.
func queryInt(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &roster.ValidationError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return &n, nil
}

// queryInt64 parses an optional int64 query parameter.
func queryInt64(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &roster.ValidationError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return &n, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(q url.Values, key string) (*bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &roster.ValidationError{Field: key, Message: fmt.Sprintf("must be true or false, got %q", raw)}
	}
	return &b, nil
}

// queryFloat parses an optional float query parameter.
func queryFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &roster.ValidationError{Field: key, Message: fmt.Sprintf("must be a number, got %q", raw)}
	}
	return &f, nil
}

// queryPage parses offset/limit pagination parameters. Negative values are
// rejected rather than clamped so clients learn about their bug.
func queryPage(q url.Values) (offset, limit int, err error) {
	if o, perr := queryInt(q, "offset"); perr != nil {
		return 0, 0, perr
	} else if o != nil {
		if *o < 0 {
			return 0, 0, &roster.ValidationError{Field: "offset", Message: "must not be negative"}
		}
		offset = *o
	}
	if l, perr := queryInt(q, "limit"); perr != nil {
		return 0, 0, perr
	} else if l != nil {
		if *l < 1 {
			return 0, 0, &roster.ValidationError{Field: "limit", Message: "must be positive"}
		}
		limit = *l
	}
	return offset, limit, nil
}
