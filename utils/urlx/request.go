// File: request.go
// Title: HTTP Request Cloning
// Description: Deep-copies outgoing HTTP requests including their body so
//              a request can be retried or replayed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package urlx

import (
	"bytes"
	"io"
	"net/http"

	"github.com/msto63/extx/core/errors"
)

// CloneRequest returns a deep copy of req with the same context. The body
// is read into memory once; both req and the clone get a fresh reader over
// the buffered bytes, and GetBody is set on both.
func CloneRequest(req *http.Request) (*http.Request, error) {
	if req == nil {
		return nil, errors.InvalidInput(errors.ModuleUrlx, "clone_request", nil, "non-nil request")
	}

	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}

	body, err := io.ReadAll(req.Body)
	closeErr := req.Body.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleUrlx).
			Operation("clone_request").
			Message("failed to buffer request body").
			Cause(err).
			Code(errors.CodeUrlxOperationFailed).
			Detail("method", req.Method).
			Build()
	}

	getBody := func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	for _, r := range []*http.Request{req, clone} {
		r.Body, _ = getBody()
		r.GetBody = getBody
		r.ContentLength = int64(len(body))
	}
	return clone, nil
}
