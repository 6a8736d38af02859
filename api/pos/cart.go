package pos

import (
	"errors"
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"
	"posadmin_server/pos"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetCart handles GET /pos/cart
func (pm *PosRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	var view cartView
	err := pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		view = renderCart(cart)
		return nil
	})
	if err != nil {
		handling.HandleError(err, "Failed to read cart", pm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(view), gecho.Send())
}

// AddItem handles POST /pos/cart/items. Adding the same product again bumps
// its quantity by one, capped at the product's stock.
func (pm *PosRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddItemRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid request"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	product, err := pm.productService.GetProductByID(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to load product", pm.logger, w)
		return
	}

	var view cartView
	err = pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		if err := cart.AddItem(product); err != nil {
			return err
		}
		view = renderCart(cart)
		return nil
	})
	if err != nil {
		var stockErr *pos.StockExceededError
		if errors.As(err, &stockErr) {
			gecho.Conflict(w, gecho.WithMessage(stockErr.Error()), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to add item to cart", pm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(view), gecho.Send())
}

// SetQuantity handles PATCH /pos/cart/items. A delta at or below zero total
// removes the line; raising above stock is rejected and leaves it unchanged.
func (pm *PosRoutesManager) SetQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.QuantityRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid request"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	var view cartView
	err = pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		if err := cart.SetQuantity(body.ProductID, body.Delta); err != nil {
			return err
		}
		view = renderCart(cart)
		return nil
	})
	if err != nil {
		var stockErr *pos.StockExceededError
		if errors.As(err, &stockErr) {
			gecho.Conflict(w, gecho.WithMessage(stockErr.Error()), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to change quantity", pm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(view), gecho.Send())
}

// RemoveItem handles DELETE /pos/cart/items/{productId}
func (pm *PosRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	var view cartView
	err = pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		cart.RemoveItem(productID)
		view = renderCart(cart)
		return nil
	})
	if err != nil {
		handling.HandleError(err, "Failed to remove item from cart", pm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(view), gecho.Send())
}

// SelectCustomer handles PUT /pos/cart/customer
func (pm *PosRoutesManager) SelectCustomer(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SelectCustomerRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid request"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	var view cartView
	err = pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		cart.SetCustomer(body.CustomerID)
		view = renderCart(cart)
		return nil
	})
	if err != nil {
		handling.HandleError(err, "Failed to select customer", pm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(view), gecho.Send())
}

// ResetCart handles DELETE /pos/cart, discarding the whole session
func (pm *PosRoutesManager) ResetCart(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	pm.cartService.Reset(session)

	gecho.Success(w, gecho.WithMessage("Cart reset"), gecho.Send())
}
