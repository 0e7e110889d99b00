package controllers

import (
	"fmt"
	"math"

	validatorv10 "github.com/go-playground/validator/v10"

	"go-food-ordering/models"
)

// newOrderValidator returns a configured validator with custom struct-level
// validation registered for PlaceOrderRequest.
func newOrderValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(placeOrderStructValidation, models.PlaceOrderRequest{})
	return v
}

// placeOrderStructValidation verifies the order amount covers the sum of
// (price * quantity) of items. The amount also carries the delivery
// surcharge, so it may exceed the item total but never undercut it.
func placeOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(models.PlaceOrderRequest)

	var sum float64
	for _, it := range req.Items {
		sum += it.Price * float64(it.Quantity)
	}

	// compare in cents to avoid float rounding issues
	sumCents := int64(math.Round(sum * 100))
	amountCents := int64(math.Round(req.Amount * 100))
	if amountCents < sumCents {
		sl.ReportError(req.Amount, "amount", "Amount", "amount_covers_items",
			fmt.Sprintf("items sum %.2f > amount %.2f", sum, req.Amount))
	}
}
