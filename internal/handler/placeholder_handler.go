package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// EedmLister supplies the items of an integration-model resource.
type EedmLister func(ctx context.Context, bypass bool) ([]dto.EedmResource, error)

// PlaceholderHandler answers an integration-model resource this system has
// no data for: reads are empty and writes are refused.
type PlaceholderHandler struct {
	pipe   *pipeline.Pipeline
	res    pipeline.Resource
	lister EedmLister
}

// NewPlaceholderHandler builds the handler. lister may be nil.
func NewPlaceholderHandler(pipe *pipeline.Pipeline, res pipeline.Resource, lister EedmLister) *PlaceholderHandler {
	return &PlaceholderHandler{pipe: pipe, res: res, lister: lister}
}

func (h *PlaceholderHandler) list(ctx context.Context, bypass bool) ([]dto.EedmResource, error) {
	if h.lister == nil {
		return []dto.EedmResource{}, nil
	}
	return h.lister(ctx, bypass)
}

func (h *PlaceholderHandler) find(ctx context.Context, id string, bypass bool) (dto.EedmResource, error) {
	items, err := h.list(ctx, bypass)
	if err != nil {
		return dto.EedmResource{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return dto.EedmResource{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %s not found", h.res.Name, id))
}

func identity(r dto.EedmResource) (dto.EedmResource, error) { return r, nil }

// List returns the lister's items, or an empty array.
func (h *PlaceholderHandler) List(c *gin.Context) {
	pipeline.List(h.pipe, c, h.res, h.list, identity)
}

// Get answers 404 unless a lister supplies the item.
func (h *PlaceholderHandler) Get(c *gin.Context) {
	pipeline.Get(h.pipe, c, h.res, c.Param("id"), h.find, identity)
}

// NotSupported refuses every write without touching a backend.
func (h *PlaceholderHandler) NotSupported(c *gin.Context) {
	pipeline.Fail(h.pipe, c, h.res, c.Param("id"), appErrors.ErrNotSupported)
}

// Register attaches the resource routes.
func (h *PlaceholderHandler) Register(rg gin.IRoutes) {
	base := "/" + h.res.Name
	rg.GET(base, h.List)
	rg.GET(base+"/:id", h.Get)
	rg.POST(base, h.NotSupported)
	rg.PUT(base+"/:id", h.NotSupported)
	rg.DELETE(base+"/:id", h.NotSupported)
}
