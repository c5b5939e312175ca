package webapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gveselov/morfa"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Setup starts an echo server on addr with the CORS allowlist the
// frontend dev servers need. The returned channel yields the listen
// error, if any.
func Setup(addr string, origins []string) (*echo.Echo, <-chan error) {
	e := SetupWithoutListener(origins)

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		err := e.Start(addr)
		if err != nil {
			errCh <- err
		}
	}()

	return e, errCh
}

// SetupWithoutListener configures the server without binding a port,
// for use behind the Lambda proxy.
func SetupWithoutListener(origins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if len(origins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Use(middleware.Gzip())
	e.HTTPErrorHandler = wrapError

	return e
}

func wrapError(err error, c echo.Context) {
	var httpErr *echo.HTTPError
	var bindingErr *echo.BindingError
	var configErr *morfa.ConfigError

	switch {
	case errors.As(err, &httpErr):
		_ = c.JSON(httpErr.Code, map[string]string{"error": fmt.Sprint(httpErr.Message)})
	case errors.As(err, &bindingErr):
		_ = c.JSON(bindingErr.Code, map[string]string{"error": fmt.Sprint(bindingErr.Message)})
	case errors.Is(err, morfa.ErrLanguageNotSupported):
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, morfa.ErrTaggerInput):
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, morfa.ErrTaggerUnavailable):
		_ = c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	case errors.As(err, &configErr):
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	default:
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
