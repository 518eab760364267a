package handlers

import (
	"errors"
	"net/http"

	request "salesdash/internal/adapter/http/dto/request"
	response "salesdash/internal/adapter/http/dto/response"
	"salesdash/internal/infrastructure/salesapi"
	"salesdash/internal/usecase"
	"salesdash/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSalesQuery = pkg.NewDomainErrorSimple("INVALID_SALES_QUERY", "Invalid sales query parameters", http.StatusBadRequest)

// SalesHandler handles the read-only sales dashboard endpoints. All three
// endpoints re-fetch from the remote API; retry after a failure is simply
// the client issuing the request again.

type SalesHandler struct {
	usecase usecase.ISalesUseCase
}

func NewSalesHandler(uc usecase.ISalesUseCase) *SalesHandler {
	return &SalesHandler{usecase: uc}
}

func (h *SalesHandler) Overview(c *gin.Context) {
	filter, _, ok := h.bindQuery(c)
	if !ok {
		return
	}

	overview, err := h.usecase.Overview(c.Request.Context(), filter)
	if err != nil {
		appErr := mapSalesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalesOverview(overview))
}

func (h *SalesHandler) ListLeads(c *gin.Context) {
	filter, query, ok := h.bindQuery(c)
	if !ok {
		return
	}

	leads, total, err := h.usecase.ListLeads(c.Request.Context(), filter, query)
	if err != nil {
		appErr := mapSalesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LeadsPageResponse{Leads: leads, Total: total, Page: pageOrDefault(query.Page)})
}

func (h *SalesHandler) ListQuotes(c *gin.Context) {
	filter, query, ok := h.bindQuery(c)
	if !ok {
		return
	}

	quotes, total, err := h.usecase.ListQuotes(c.Request.Context(), filter, query)
	if err != nil {
		appErr := mapSalesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePage(quotes, total, pageOrDefault(query.Page)))
}

func (h *SalesHandler) bindQuery(c *gin.Context) (usecase.SalesFilter, usecase.TableQuery, bool) {
	var payload request.SalesQueryRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidSalesQuery.HTTPStatus, errInvalidSalesQuery.ToHTTPError())
		return usecase.SalesFilter{}, usecase.TableQuery{}, false
	}

	from, to, err := payload.ResolveRange()
	if err != nil {
		c.JSON(errInvalidSalesQuery.HTTPStatus, errInvalidSalesQuery.ToHTTPError())
		return usecase.SalesFilter{}, usecase.TableQuery{}, false
	}

	filter := usecase.SalesFilter{
		From:          from,
		To:            to,
		LeadStatuses:  payload.ResolveLeadStatuses(),
		QuoteStatuses: payload.ResolveQuoteStatuses(),
	}
	query := usecase.TableQuery{
		Search:    payload.Search,
		SortField: payload.Sort,
		SortDesc:  payload.ResolveSortDesc(),
		Page:      payload.Page,
		PageSize:  payload.PageSize,
	}
	return filter, query, true
}

func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func mapSalesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, salesapi.ErrSalesAPIUnavailable):
		return pkg.NewDomainError("SALES_API_UNAVAILABLE", "Sales data is currently unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
