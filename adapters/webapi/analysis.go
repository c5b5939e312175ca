package webapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gveselov/morfa/service"
	"github.com/labstack/echo/v4"
)

type analyzeRequest struct {
	Text     string   `json:"text"`
	Features []string `json:"features"`
}

type checkRequest struct {
	Original string `json:"original"`
	Answer   string `json:"answer"`
	Feature  string `json:"feature"`
}

// Analysis mounts the per-language practice endpoints.
func Analysis(group *echo.Group, svc *service.Service) {
	group.POST("/analyze/:language", func(c echo.Context) error {
		req := analyzeRequest{}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Text == "" || len(req.Features) == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Text and features are required",
			})
		}

		start := time.Now()
		res, err := svc.Analyze(c.Request().Context(), c.Param("language"), req.Text, req.Features)
		if err != nil {
			return err
		}
		log.Printf("Analyzed %d runes for %s in %s", len([]rune(req.Text)), c.Param("language"), time.Since(start))

		return c.JSON(http.StatusOK, res)
	})

	group.POST("/check/:language", func(c echo.Context) error {
		req := checkRequest{}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Original == "" || req.Answer == "" || req.Feature == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Original text, answer, and feature are required",
			})
		}

		res, err := svc.CheckAnswer(c.Param("language"), req.Original, req.Answer, req.Feature)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, res)
	})

	group.GET("/features/:language", func(c echo.Context) error {
		features, err := svc.Features(c.Param("language"))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"features": features,
		})
	})

	group.GET("/languages", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"languages": svc.Languages(),
		})
	})
}
