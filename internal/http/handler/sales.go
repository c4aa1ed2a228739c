package handler

import (
	"errors"
	"net/http"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/payload"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"
)

// HandleGetSales lists every sale. The listing is reachable without a
// session; only the mutating routes are gated.
func (h *TrackerHandler) HandleGetSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.tracker.ListSales(r.Context())
	if err != nil {
		h.serverError(w, r, GetSales, err)
		return
	}

	h.render(w, r, "sales.html", view.Data{
		"sales": sales,
		"query": "",
	})
}

// HandleSearch re-renders the sales listing filtered by the free-text
// query. No matches renders an empty listing.
func (h *TrackerHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("query")

	sales, err := h.tracker.SearchSales(r.Context(), query)
	if err != nil {
		h.serverError(w, r, Search, err)
		return
	}

	h.render(w, r, "sales.html", view.Data{
		"sales": sales,
		"query": query,
	})
}

func (h *TrackerHandler) HandleNewSale(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		h.render(w, r, "new_sales.html", view.Data{
			"form": payload.SaleForm{},
		})
		return
	}

	form, err := payload.NewSaleForm(r)
	if err != nil {
		h.serverError(w, r, NewSale, err)
		return
	}
	if err := form.Validate(); err != nil {
		h.render(w, r, "new_sales.html", view.Data{
			"form":        form,
			"form_errors": payload.ErrorList(err),
		})
		return
	}

	sale, err := h.tracker.CreateSale(r.Context(), username, core.SaleMessage{
		CustomerName:     form.CustomerName,
		SaleAmount:       form.SaleAmount,
		SaleDescription:  form.SaleDescription,
		CloseDate:        form.CloseDate,
		PurchaseApproved: form.PurchaseApproved,
	})
	if err != nil {
		h.serverError(w, r, NewSale, err)
		return
	}

	h.logs.Infow("sale uploaded",
		"id", sale.ID,
		"handler", NewSale,
		"request_id", requestID(r))

	h.sessions.Flash(w, "Congratulations! Sale successfully uploaded!")
	h.redirect(w, r, "/dashboard/")
}

func (h *TrackerHandler) HandleEditSale(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	id := r.PathValue("id")

	if r.Method != http.MethodPost {
		sale, err := h.tracker.GetSale(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrSaleNotFound) {
				h.sessions.Flash(w, "Sale not found")
				h.redirect(w, r, "/get_sales")
				return
			}
			h.serverError(w, r, EditSale, err)
			return
		}

		h.render(w, r, "edit_sale.html", view.Data{
			"sale": sale,
		})
		return
	}

	form, err := payload.NewSaleForm(r)
	if err != nil {
		h.serverError(w, r, EditSale, err)
		return
	}
	if verr := form.Validate(); verr != nil {
		sale, err := h.tracker.GetSale(r.Context(), id)
		if err != nil {
			h.serverError(w, r, EditSale, err)
			return
		}
		h.render(w, r, "edit_sale.html", view.Data{
			"sale":        sale,
			"form_errors": payload.ErrorList(verr),
		})
		return
	}

	err = h.tracker.ReplaceSale(r.Context(), id, core.SaleMessage{
		CustomerName:     form.CustomerName,
		SaleAmount:       form.SaleAmount,
		SaleDescription:  form.SaleDescription,
		CloseDate:        form.CloseDate,
		PurchaseApproved: form.PurchaseApproved,
	})
	if err != nil {
		if errors.Is(err, core.ErrSaleNotFound) {
			h.sessions.Flash(w, "Sale not found")
			h.redirect(w, r, "/get_sales")
			return
		}
		h.serverError(w, r, EditSale, err)
		return
	}

	sale, err := h.tracker.GetSale(r.Context(), id)
	if err != nil {
		h.serverError(w, r, EditSale, err)
		return
	}

	h.render(w, r, "edit_sale.html", view.Data{
		"sale":  sale,
		"flash": "Congratulations! Sale successfully edited!",
	})
}

func (h *TrackerHandler) HandleDeleteSale(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	if err := h.tracker.DeleteSale(r.Context(), r.PathValue("id")); err != nil {
		h.serverError(w, r, DeleteSale, err)
		return
	}

	h.sessions.Flash(w, "Sale Successfully Deleted")
	h.redirect(w, r, "/get_sales")
}
