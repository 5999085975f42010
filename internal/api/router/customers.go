package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/customer-search/internal/apperr"
	"github.com/DjordjeVuckovic/customer-search/internal/customer"
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
	"github.com/DjordjeVuckovic/customer-search/pkg/pagination"
	"github.com/labstack/echo/v4"
)

const (
	HeaderHasMore   = "X-Has-More"
	HeaderNextAfter = "X-Next-After"
)

type CustomersRouter struct {
	e       *echo.Echo
	storage storage.Store
}

func NewCustomersRouter(e *echo.Echo, storage storage.Store) *CustomersRouter {
	return &CustomersRouter{
		e:       e,
		storage: storage,
	}
}

func (r *CustomersRouter) Bind() {
	r.e.GET("/customers", r.searchHandler)
	r.e.POST("/customers", r.createHandler)
}

// searchHandler serves one keyset page as a bare JSON array. Pagination
// hints travel in headers so the body stays a plain list of customers.
func (r *CustomersRouter) searchHandler(c echo.Context) error {
	var req pagination.CursorRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	if err := c.Validate(&req); err != nil {
		return apperr.NewValidationWrap("limit must be between 1 and 100", err)
	}
	req.Normalize()

	found, err := r.storage.Search(c.Request().Context(), storage.Query{
		After:      domain.Key(req.After),
		SearchTerm: req.SearchTerm,
		Limit:      req.Limit + 1,
	})
	if err != nil {
		return err
	}

	page := pagination.NewCursorResult(found, req.Limit, func(cst domain.Customer) string {
		return cst.ID.String()
	})

	c.Response().Header().Set(HeaderHasMore, strconv.FormatBool(page.HasMore))
	if page.NextCursor != nil {
		c.Response().Header().Set(HeaderNextAfter, *page.NextCursor)
	}

	return c.JSON(http.StatusOK, page.Items)
}

func (r *CustomersRouter) createHandler(c echo.Context) error {
	var cst domain.Customer
	if err := c.Bind(&cst); err != nil {
		return apperr.NewValidationWrap("invalid customer payload", err)
	}

	errs := customer.Validate(cst)
	if validation.AnyErrors(errs) {
		return apperr.NewFieldError("customer is invalid", errs)
	}

	saved, err := r.storage.Save(c.Request().Context(), cst)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saved)
}
