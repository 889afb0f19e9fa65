package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"jasa-service/internal/database"
	"jasa-service/internal/middleware"
	"jasa-service/internal/models"
	"jasa-service/internal/store"
	"jasa-service/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Data tidak ditemukan."
	MsgDeleted  = "Data berhasil dihapus."
	msgInternal = "Terjadi kesalahan pada server."
)

// Input is the write payload of one kind. current is nil on create and the
// stored record on update, so required-field checks only run on create.
// Validate returns validation.FieldErrors for bad input.
type Input[M any] interface {
	Validate(ctx context.Context, db *gorm.DB, current *M) error
	Build() *M
	Changes() map[string]any
}

// stamper is implemented by inputs that record the calling account.
type stamper interface {
	Stamp(accountID uint)
}

// Resource serves list/create and retrieve/update/delete for one kind.
type Resource[M models.Record, I Input[M]] struct {
	db       *gorm.DB
	store    *store.Store[M]
	newInput func() I
	present  func(*M) any
	filter   func(*gin.Context) []store.Scope
}

type ResourceOption[M models.Record, I Input[M]] func(*Resource[M, I])

// WithPresenter replaces the default projection (the record itself).
func WithPresenter[M models.Record, I Input[M]](p func(*M) any) ResourceOption[M, I] {
	return func(r *Resource[M, I]) { r.present = p }
}

// WithFilter turns query parameters into list scopes.
func WithFilter[M models.Record, I Input[M]](f func(*gin.Context) []store.Scope) ResourceOption[M, I] {
	return func(r *Resource[M, I]) { r.filter = f }
}

func NewResource[M models.Record, I Input[M]](db *gorm.DB, s *store.Store[M], newInput func() I, opts ...ResourceOption[M, I]) *Resource[M, I] {
	r := &Resource[M, I]{
		db:       db,
		store:    s,
		newInput: newInput,
		present:  func(m *M) any { return m },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Routes mounts the collection and item routes under path. PATCH behaves
// like PUT; both are partial.
func (r *Resource[M, I]) Routes(g gin.IRoutes, path string) {
	g.GET(path, r.List)
	g.POST(path, r.Create)
	g.GET(path+"/:id", r.Retrieve)
	g.PUT(path+"/:id", r.Update)
	g.PATCH(path+"/:id", r.Update)
	g.DELETE(path+"/:id", r.Delete)
}

func (r *Resource[M, I]) List(c *gin.Context) {
	var scopes []store.Scope
	if r.filter != nil {
		scopes = r.filter(c)
	}
	rows, err := r.store.List(c.Request.Context(), scopes...)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]any, 0, len(rows))
	for i := range rows {
		out = append(out, r.present(&rows[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (r *Resource[M, I]) Create(c *gin.Context) {
	ctx := c.Request.Context()
	in, ok := r.bind(c)
	if !ok {
		return
	}
	if err := in.Validate(ctx, r.db, nil); err != nil {
		writeError(c, err)
		return
	}

	accountID := middleware.CurrentAccountID(c)
	if s, ok := any(in).(stamper); ok {
		s.Stamp(accountID)
	}

	m := in.Build()
	if err := r.store.Create(ctx, m); err != nil {
		writeError(c, err)
		return
	}
	database.CreateAuditLog(ctx, r.db, accountID, (*m).EntityName(), (*m).RecordID(), "create", "")
	c.JSON(http.StatusCreated, r.present(m))
}

func (r *Resource[M, I]) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}
	m, err := r.store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.present(m))
}

func (r *Resource[M, I]) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}
	current, err := r.store.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}

	in, ok := r.bind(c)
	if !ok {
		return
	}
	if err := in.Validate(ctx, r.db, current); err != nil {
		writeError(c, err)
		return
	}

	accountID := middleware.CurrentAccountID(c)
	if s, ok := any(in).(stamper); ok {
		s.Stamp(accountID)
	}

	m, err := r.store.Update(ctx, id, in.Changes())
	if err != nil {
		writeError(c, err)
		return
	}
	database.CreateAuditLog(ctx, r.db, accountID, (*m).EntityName(), id, "update", "")
	c.JSON(http.StatusOK, r.present(m))
}

func (r *Resource[M, I]) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}
	var zero M
	if err := r.store.Delete(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	database.CreateAuditLog(ctx, r.db, middleware.CurrentAccountID(c), zero.EntityName(), id, "delete", "")
	c.JSON(http.StatusOK, gin.H{"message": MsgDeleted})
}

func (r *Resource[M, I]) bind(c *gin.Context) (I, bool) {
	in := r.newInput()
	if err := bindBody(c, in); err != nil {
		writeError(c, err)
		return in, false
	}
	return in, true
}

// parseID rejects anything that is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": MsgNotFound})
}

// writeError maps store and validation errors to a status and body.
func writeError(c *gin.Context, err error) {
	var fe validation.FieldErrors
	var ce *store.ConstraintError
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c)
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, fe)
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, validation.FieldErrors{ce.Field: {ce.Message}})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	}
}
