package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/models"
	"github.com/farkinca1971/office-management-sub003/pkg/helper"
	"github.com/farkinca1971/office-management-sub003/pkg/logger"
	"github.com/farkinca1971/office-management-sub003/sqlgen"
	"github.com/farkinca1971/office-management-sub003/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Query-string keys consumed by the adapter itself; everything else becomes
// an equality filter.
var reservedQueryKeys = map[string]bool{
	"fields": true,
	"order":  true,
	"sort":   true,
	"dir":    true,
	"hard":   true,
}

type Handler struct {
	cfg  config.Config
	log  logger.LoggerI
	strg storage.StorageI
}

func NewHandler(cfg config.Config, log logger.LoggerI, strg storage.StorageI) *Handler {
	return &Handler{
		cfg:  cfg,
		log:  log,
		strg: strg,
	}
}

// HandleObject serves every CRUD route. It shapes the incoming request into
// a descriptor, compiles it, runs the statement, and wraps the rows into
// the response envelope.
func (h *Handler) HandleObject(c *gin.Context) {
	req, err := h.buildRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, helper.ErrorEnvelope(err))
		return
	}

	stmt, err := sqlgen.Compile(req)
	if err != nil {
		h.log.Error("sqlgen.Compile", logger.Error(err), logger.String("table", req.Table))
		c.JSON(compileErrorStatus(err), helper.ErrorEnvelope(err))
		return
	}

	h.log.Debug("compiled statement",
		logger.String("operation", string(stmt.Operation)),
		logger.String("table", stmt.Table),
		logger.String("statement", stmt.Statement),
	)

	result, err := h.strg.Items().Run(c.Request.Context(), stmt)
	if err != nil {
		h.log.Error("items.Run", logger.Error(err), logger.String("table", stmt.Table))
		c.JSON(http.StatusInternalServerError, helper.ErrorEnvelope(err))
		return
	}

	if stmt.Operation == models.OperationSelect {
		c.JSON(http.StatusOK, helper.Envelope(result.Rows))
		return
	}

	status := http.StatusOK
	if stmt.Operation == models.OperationInsert {
		status = http.StatusCreated
	}

	c.JSON(status, gin.H{
		"success": true,
		"data": gin.H{
			"rows_affected": result.RowsAffected,
		},
	})
}

func compileErrorStatus(err error) int {
	if errors.Is(err, sqlgen.ErrUnsupportedMethod) {
		return http.StatusMethodNotAllowed
	}

	return http.StatusBadRequest
}

func (h *Handler) buildRequest(c *gin.Context) (models.Request, error) {
	req := models.Request{
		Method: c.Request.Method,
		Table:  c.Param("table"),
	}

	params := models.Params{}
	if id := c.Param("id"); id != "" {
		params.Set("id", parseScalar(id))
	}
	req.Params = params

	query, err := parseQueryFilters(c.Request.URL.RawQuery)
	if err != nil {
		return models.Request{}, err
	}
	req.Query = query

	if fields := c.Query("fields"); fields != "" {
		for _, field := range strings.Split(fields, ",") {
			if field = strings.TrimSpace(field); field != "" {
				req.SelectColumns = append(req.SelectColumns, field)
			}
		}
	}

	req.OrderBy = parseOrder(c)

	if c.Query("hard") != "" {
		soft := !cast.ToBool(c.Query("hard"))
		req.SoftDelete = &soft
	}

	switch c.Request.Method {
	case config.MethodPost, config.MethodPut, config.MethodPatch:
		body, err := helper.DecodeOrderedParams(c.Request.Body)
		if err != nil {
			return models.Request{}, err
		}

		// Created records get an id up front, the same way the original
		// system defaulted a missing guid.
		if c.Request.Method == config.MethodPost {
			if _, ok := body.Get("id"); !ok {
				body.Set("id", models.TextValue(uuid.NewString()))
			}
		}

		req.Body = body
	}

	return req, nil
}

// parseQueryFilters walks the raw query string instead of url.Values so the
// filters keep their wire order; conjunct order is part of the compiler's
// contract.
func parseQueryFilters(rawQuery string) (models.Params, error) {
	filters := models.Params{}
	if rawQuery == "" {
		return filters, nil
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}

		if reservedQueryKeys[key] {
			continue
		}

		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}

		filters.Set(key, parseScalar(value))
	}

	return filters, nil
}

func parseOrder(c *gin.Context) models.OrderBy {
	if sort := c.Query("sort"); sort != "" {
		return models.PairOrder(sort, c.Query("dir"))
	}

	order := c.Query("order")
	if order == "" {
		return models.NoOrder()
	}

	if strings.Contains(order, ",") {
		clauses := []string{}
		for _, clause := range strings.Split(order, ",") {
			if clause = strings.TrimSpace(clause); clause != "" {
				clauses = append(clauses, clause)
			}
		}
		return models.ListOrder(clauses)
	}

	return models.RawOrder(order)
}

// parseScalar maps a path or query token onto the value variant: booleans
// and numbers keep their type, "null" becomes Null, everything else stays
// text.
func parseScalar(raw string) models.Value {
	switch raw {
	case "null":
		return models.NullValue()
	case "true":
		return models.BoolValue(true)
	case "false":
		return models.BoolValue(false)
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.NumberValue(n)
	}

	return models.TextValue(raw)
}
