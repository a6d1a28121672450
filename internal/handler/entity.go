package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/middleware"
	"github.com/iliyamo/car-rental-admin/internal/queue"
	"github.com/iliyamo/car-rental-admin/internal/repository"
	"github.com/iliyamo/car-rental-admin/internal/service"
	"github.com/iliyamo/car-rental-admin/internal/view"
)

// Store is the slice of a repository an entity page needs.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
}

// Entity describes how one record type is listed and edited.
type Entity[T any] struct {
	Name     string // singular, used in audit events, e.g. "feedback"
	Resource string // URL segment, e.g. "feedbacks"
	Title    string // list page heading
	Columns  []string
	Row      func(T) []string
	ID       func(T) uint64
	Modal    *form.Modal[T]
	Sources  []form.ReferenceSource // lists behind the modal's selects
}

// EntityHandler serves the list page of an entity and the submissions of its
// modal.  The list page is the modal's parent: a successful submit closes the
// modal by redirecting there, which refetches the list.
type EntityHandler[T any] struct {
	Entity Entity[T]
	Store  Store[T]
	Audit  service.Auditor
	Log    *slog.Logger
}

// NewEntityHandler panics if any dependency is missing.
func NewEntityHandler[T any](entity Entity[T], store Store[T], audit service.Auditor, log *slog.Logger) *EntityHandler[T] {
	if entity.Modal == nil || entity.Row == nil || entity.ID == nil || store == nil || audit == nil || log == nil {
		panic("nil dependency passed to NewEntityHandler for " + entity.Resource)
	}
	return &EntityHandler[T]{Entity: entity, Store: store, Audit: audit, Log: log}
}

// List handles GET /{resource}.  ?modal=new opens a blank modal and
// ?modal=edit&id=N opens it pre-filled with record N.
func (h *EntityHandler[T]) List(c echo.Context) error {
	ctx := c.Request().Context()
	page := h.page(ctx)

	switch c.QueryParam("modal") {
	case "new":
		vals := h.Entity.Modal.Open(nil)
		page.Modal = h.Entity.Modal.Render(true, vals, h.references(ctx), nil)
		page.Action = "/" + h.Entity.Resource
	case "edit":
		id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
		if err != nil || id == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		rec, err := h.Store.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "record not found")
			}
			h.Log.ErrorContext(ctx, "load record failed", "entity", h.Entity.Name, "id", id, "error", err)
			page.Alert = form.GenericError
			break
		}
		vals := h.Entity.Modal.Open(rec)
		page.Modal = h.Entity.Modal.Render(true, vals, h.references(ctx), nil)
		page.Action = h.itemPath(id)
	}
	return c.Render(http.StatusOK, "list.html", page)
}

// Create handles POST /{resource}.
func (h *EntityHandler[T]) Create(c echo.Context) error {
	vals, err := h.values(c)
	if err != nil {
		return err
	}
	delete(vals, form.IDField)
	return h.submit(c, vals, "create", "/"+h.Entity.Resource, h.Store.Create)
}

// Update handles POST /{resource}/:id and replaces the whole record.
func (h *EntityHandler[T]) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	vals, err := h.values(c)
	if err != nil {
		return err
	}
	vals[form.IDField] = strconv.FormatUint(id, 10)
	return h.submit(c, vals, "update", h.itemPath(id), h.Store.Update)
}

func (h *EntityHandler[T]) submit(c echo.Context, vals form.Values, action, formAction string, save form.SaveFunc[T]) error {
	ctx := c.Request().Context()
	var closed, refresh bool
	res := h.Entity.Modal.Submit(ctx, vals, save, form.Callbacks{
		OnHide:  func() { closed = true },
		Refresh: func() { refresh = true },
	})

	if res.Closed {
		h.Audit.RecordChanged(ctx, queue.RecordChangedEvent{
			Entity:   h.Entity.Name,
			RecordID: h.Entity.ID(*res.Saved),
			Action:   action,
			AdminID:  middleware.AdminID(c),
		})
	}
	if closed || refresh {
		return c.Redirect(http.StatusSeeOther, "/"+h.Entity.Resource)
	}

	status := http.StatusUnprocessableEntity
	if res.Err != nil {
		status = http.StatusBadGateway
		h.Log.ErrorContext(ctx, "submit failed", "entity", h.Entity.Name, "action", action, "error", res.Err)
	}
	page := h.page(ctx)
	page.Modal = h.Entity.Modal.Render(true, res.Values, h.references(ctx), res.Errors)
	page.Modal.Alert = res.Alert
	page.Action = formAction
	return c.Render(status, "list.html", page)
}

// page fetches the parent list.  A failed fetch shows the generic alert
// above an empty table.
func (h *EntityHandler[T]) page(ctx context.Context) view.ListPage {
	page := view.ListPage{Title: h.Entity.Title, Resource: h.Entity.Resource, Columns: h.Entity.Columns}
	items, err := h.Store.List(ctx)
	if err != nil {
		h.Log.ErrorContext(ctx, "list failed", "entity", h.Entity.Name, "error", err)
		page.Alert = form.GenericError
		return page
	}
	page.Rows = make([]view.Row, 0, len(items))
	for _, it := range items {
		page.Rows = append(page.Rows, view.Row{
			ID:    strconv.FormatUint(h.Entity.ID(it), 10),
			Cells: h.Entity.Row(it),
		})
	}
	return page
}

func (h *EntityHandler[T]) references(ctx context.Context) form.References {
	return form.LoadReferences(ctx, h.Log, h.Entity.Sources...)
}

// values keeps only the posted keys the modal declares.
func (h *EntityHandler[T]) values(c echo.Context) (form.Values, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	vals := form.Values{}
	for _, f := range h.Entity.Modal.Fields {
		vals[f.Name] = params.Get(f.Name)
	}
	return vals, nil
}

func (h *EntityHandler[T]) itemPath(id uint64) string {
	return "/" + h.Entity.Resource + "/" + strconv.FormatUint(id, 10)
}
