package server

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/midbel/heatmap/display"
)

var validate = validator.New()

type pointerQuery struct {
	X *float64 `query:"x" validate:"required"`
	Y *float64 `query:"y" validate:"required"`
}

type enterQuery struct {
	Cell string   `query:"cell" validate:"required"`
	X    *float64 `query:"x" validate:"required"`
	Y    *float64 `query:"y" validate:"required"`
}

func (s *Server) page(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return s.session.Render(c)
}

func (s *Server) chart(c *fiber.Ctx) error {
	if s.session.Phase() != display.PhaseReady {
		return fiber.NewError(fiber.StatusServiceUnavailable, "dataset not loaded")
	}
	c.Type("svg")
	return s.session.RenderChart(c)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"phase":  s.session.Phase().String(),
	})
}

func (s *Server) enter(c *fiber.Ctx) error {
	var q enterQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	err := s.session.Enter(q.Cell, *q.X, *q.Y)
	switch {
	case err == nil:
	case errors.Is(err, display.ErrNotReady):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, display.ErrUnknownCell):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
	return s.tooltip(c)
}

func (s *Server) move(c *fiber.Ctx) error {
	var q pointerQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	s.session.Move(*q.X, *q.Y)
	return s.tooltip(c)
}

func (s *Server) leave(c *fiber.Ctx) error {
	s.session.Leave()
	return s.tooltip(c)
}

func (s *Server) tooltip(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return s.session.RenderTooltip(c)
}

func bindQuery(c *fiber.Ctx, v any) error {
	if err := c.QueryParser(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
