package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"
)

// bindAndRestore decodes the JSON body into v and puts the bytes back so
// the downstream handler can still Bind.
func bindAndRestore(c echo.Context, v interface{}) error {
	req := c.Request()
	if req.Body == nil {
		return errors.New("empty body")
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	if len(b) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(b, v)
}
