package repository

import (
	"bytes"
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

// doGet issues a bounded GET and returns the status code and (gunzipped when
// needed) body. Transport errors are returned as-is; status handling is left
// to the caller.
func doGet(ctx context.Context, client *fasthttp.Client, url string, timeout time.Duration) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout > 0 && requestTimeout < timeout {
			timeout = requestTimeout
		}
	}

	var err error
	if timeout > 0 {
		err = client.DoTimeout(req, resp, timeout)
	} else {
		err = client.Do(req, resp)
	}
	if err != nil {
		return 0, nil, err
	}

	var body []byte
	contentEncoding := resp.Header.Peek(fasthttp.HeaderContentEncoding)
	if bytes.EqualFold(contentEncoding, []byte("gzip")) {
		body, err = resp.BodyGunzip()
		if err != nil {
			return resp.StatusCode(), nil, err
		}
	} else {
		// The response buffer is released with resp; copy the body out.
		body = append([]byte(nil), resp.Body()...)
	}

	return resp.StatusCode(), body, nil
}
