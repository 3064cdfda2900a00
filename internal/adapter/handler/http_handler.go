package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mquispe/bodegapos/internal/adapter/gateway"
	"github.com/mquispe/bodegapos/internal/core/domain"
	"github.com/mquispe/bodegapos/internal/core/money"
	"github.com/mquispe/bodegapos/internal/core/service"
)

// HTTPHandler is the JSON surface the point-of-sale UI talks to.
type HTTPHandler struct {
	inventory *service.InventoryService
	tickets   *service.TicketRegistry
	sales     *service.SaleService
	timeout   time.Duration
}

func NewHTTPHandler(inventory *service.InventoryService, tickets *service.TicketRegistry, sales *service.SaleService, timeout time.Duration) *HTTPHandler {
	return &HTTPHandler{
		inventory: inventory,
		tickets:   tickets,
		sales:     sales,
		timeout:   timeout,
	}
}

func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/reload", h.Reload)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Put("/", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Put("/", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Post("/", h.OpenTicket)
			r.Route("/{ticketID}", func(r chi.Router) {
				r.Get("/", h.GetTicket)
				r.Delete("/", h.CloseTicket)
				r.Post("/lines", h.AddLine)
				r.Delete("/lines", h.ClearTicket)
				r.Post("/lines/{productID}/increment", h.IncrementLine)
				r.Post("/lines/{productID}/decrement", h.DecrementLine)
				r.Delete("/lines/{productID}", h.RemoveLine)
				r.Post("/checkout", h.Checkout)
			})
		})
	})

	return r
}

type productRequest struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Stock      int     `json:"stock"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"category_id"`
}

type productResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	Price    string  `json:"price"`
	Category *string `json:"category,omitempty"`
}

type categoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type deleteResponse struct {
	Complete bool   `json:"complete"`
	Message  string `json:"message,omitempty"`
}

type lineRequest struct {
	ProductID int64 `json:"product_id"`
}

type deltaRequest struct {
	Delta int `json:"delta"`
}

type ticketLineResponse struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MaxQuantity int    `json:"max_quantity"`
	UnitPrice   string `json:"unit_price"`
}

type ticketResponse struct {
	ID       string               `json:"id"`
	Lines    []ticketLineResponse `json:"lines"`
	Subtotal string               `json:"subtotal"`
	Tax      string               `json:"tax"`
	Total    string               `json:"total"`
}

type checkoutRequest struct {
	VoucherType    string `json:"voucher_type"`
	DocumentNumber string `json:"document_number"`
}

type saleResponse struct {
	ID             int64  `json:"id"`
	VoucherType    string `json:"voucher_type"`
	DocumentNumber string `json:"document_number"`
	Subtotal       string `json:"subtotal"`
	Total          string `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestCtx(r)
	defer cancel()

	if err := h.inventory.Reload(ctx); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.inventory.Products()
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" || req.Stock < 0 || req.Price < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name required, stock and price must not be negative"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	p, err := reqToProduct(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	created, err := h.inventory.CreateProduct(ctx, p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.ID == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	p, err := reqToProduct(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	updated, err := h.inventory.UpdateProduct(ctx, p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	status, err := h.inventory.DeleteProduct(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Complete: status.Complete, Message: status.Message})
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.inventory.Categories()
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	created, err := h.inventory.CreateCategory(ctx, domain.Category{Name: req.Name})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryResponse{ID: created.ID, Name: created.Name})
}

func (h *HTTPHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.ID == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	updated, err := h.inventory.UpdateCategory(ctx, domain.Category{ID: req.ID, Name: req.Name})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponse{ID: updated.ID, Name: updated.Name})
}

func (h *HTTPHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	status, err := h.inventory.DeleteCategory(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Complete: status.Complete, Message: status.Message})
}

func (h *HTTPHandler) OpenTicket(w http.ResponseWriter, r *http.Request) {
	t := h.tickets.Open()
	writeJSON(w, http.StatusCreated, toTicketResponse(t))
}

func (h *HTTPHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *HTTPHandler) CloseTicket(w http.ResponseWriter, r *http.Request) {
	h.tickets.Close(chi.URLParam(r, "ticketID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}

	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, ok := h.inventory.Product(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})
		return
	}

	t.AddLine(product)
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *HTTPHandler) IncrementLine(w http.ResponseWriter, r *http.Request) {
	h.adjustLine(w, r, (*service.TicketService).Increment)
}

func (h *HTTPHandler) DecrementLine(w http.ResponseWriter, r *http.Request) {
	h.adjustLine(w, r, (*service.TicketService).Decrement)
}

func (h *HTTPHandler) adjustLine(w http.ResponseWriter, r *http.Request, apply func(*service.TicketService, int64, int)) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	req := deltaRequest{Delta: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}
	if req.Delta <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "delta must be positive"})
		return
	}

	apply(t, productID, req.Delta)
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *HTTPHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	t.RemoveLine(productID)
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *HTTPHandler) ClearTicket(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}
	t.Clear()
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticket(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx, cancel := h.requestCtx(r)
	defer cancel()

	sale, err := h.sales.Submit(ctx, t, domain.VoucherType(req.VoucherType), req.DocumentNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saleResponse{
		ID:             sale.ID,
		VoucherType:    string(sale.Type),
		DocumentNumber: sale.DocumentNumber,
		Subtotal:       sale.Subtotal.StringFixed(money.DefaultPrecision),
		Total:          sale.Total.StringFixed(money.DefaultPrecision),
	})
}

func (h *HTTPHandler) ticket(w http.ResponseWriter, r *http.Request) (*service.TicketService, bool) {
	t, ok := h.tickets.Get(chi.URLParam(r, "ticketID"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "ticket not found"})
		return nil, false
	}
	return t, true
}

func (h *HTTPHandler) requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var statusErr *gateway.StatusError

	switch {
	case errors.Is(err, service.ErrEmptyTicket),
		errors.Is(err, service.ErrUnknownVoucherType),
		errors.Is(err, gateway.ErrMissingID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicateSubmit):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, gateway.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &statusErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func reqToProduct(req productRequest) (domain.Product, error) {
	price, err := money.FromFloat(req.Price)
	if err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:    req.ID,
		Name:  req.Name,
		Stock: req.Stock,
		Price: price,
	}
	if req.CategoryID != 0 {
		p.Category = &domain.Category{ID: req.CategoryID}
	}
	return p, nil
}

func toProductResponse(p domain.Product) productResponse {
	resp := productResponse{
		ID:    p.ID,
		Name:  p.Name,
		Stock: p.Stock,
		Price: p.Price.StringFixed(money.DefaultPrecision),
	}
	if p.Category != nil {
		name := p.Category.Name
		resp.Category = &name
	}
	return resp
}

func toTicketResponse(t *service.TicketService) ticketResponse {
	lines := t.Lines()
	totals := t.Totals()
	resp := ticketResponse{
		ID:       t.ID(),
		Lines:    make([]ticketLineResponse, len(lines)),
		Subtotal: totals.Subtotal.StringFixed(money.DefaultPrecision),
		Tax:      totals.Tax.StringFixed(money.DefaultPrecision),
		Total:    totals.Total.StringFixed(money.DefaultPrecision),
	}
	for i, l := range lines {
		resp.Lines[i] = ticketLineResponse{
			ProductID:   l.ProductID,
			Name:        l.Name,
			Quantity:    l.Quantity,
			MaxQuantity: l.MaxQuantity,
			UnitPrice:   l.UnitPrice.StringFixed(money.DefaultPrecision),
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
