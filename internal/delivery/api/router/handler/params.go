package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errInvalidID = errors.New("id must be a positive integer")

// pathID parses a positive integer path parameter
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

// pageParams reads the skip and limit query parameters; limit falls back to defaultLimit
func pageParams(c echo.Context, defaultLimit int) (skip, limit int, err error) {
	limit = defaultLimit

	err = echo.QueryParamsBinder(c).
		Int("skip", &skip).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}

	return skip, limit, nil
}
