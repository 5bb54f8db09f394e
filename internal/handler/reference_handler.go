package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/internal/pipeline"
)

// ReferenceReader reads one kind of reference entity.
type ReferenceReader[E any] interface {
	List(ctx context.Context, bypass bool) ([]E, error)
	Get(ctx context.Context, code string, bypass bool) (E, error)
}

// RouteRegistrar attaches a handler's routes to a group.
type RouteRegistrar interface {
	Register(rg gin.IRoutes)
}

// ReferenceHandler serves GET /<resource> and GET /<resource>/:id for a
// read-only reference resource.
type ReferenceHandler[E, D any] struct {
	pipe  *pipeline.Pipeline
	res   pipeline.Resource
	repo  ReferenceReader[E]
	mapFn pipeline.Mapper[E, D]
}

// NewReferenceHandler binds a reader and its mapper to a resource.
func NewReferenceHandler[E, D any](pipe *pipeline.Pipeline, res pipeline.Resource, repo ReferenceReader[E], mapFn pipeline.Mapper[E, D]) *ReferenceHandler[E, D] {
	return &ReferenceHandler[E, D]{pipe: pipe, res: res, repo: repo, mapFn: mapFn}
}

// Resource returns the resource the handler serves.
func (h *ReferenceHandler[E, D]) Resource() pipeline.Resource {
	return h.res
}

// List returns every entity of the resource.
func (h *ReferenceHandler[E, D]) List(c *gin.Context) {
	pipeline.List(h.pipe, c, h.res, h.repo.List, h.mapFn)
}

// Get returns the entity identified by the :id path parameter.
func (h *ReferenceHandler[E, D]) Get(c *gin.Context) {
	pipeline.Get(h.pipe, c, h.res, c.Param("id"), h.repo.Get, h.mapFn)
}

// Register attaches the resource routes.
func (h *ReferenceHandler[E, D]) Register(rg gin.IRoutes) {
	rg.GET("/"+h.res.Name, h.List)
	rg.GET("/"+h.res.Name+"/:id", h.Get)
}
