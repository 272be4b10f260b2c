package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/stores"
)

type CheckoutController struct {
	sessions *stores.Manager
}

func NewCheckoutController(sessions *stores.Manager) *CheckoutController {
	return &CheckoutController{sessions: sessions}
}

func (ctrl *CheckoutController) session(c *gin.Context) *stores.Session {
	return ctrl.sessions.Session(c.GetString("user_id"))
}

func checkoutPayload(checkout *stores.CheckoutStore) gin.H {
	return gin.H{
		"current_step":     checkout.CurrentStep(),
		"addresses":        checkout.Addresses(),
		"payment_methods":  checkout.PaymentMethods(),
		"selected_address": checkout.SelectedAddress(),
		"selected_payment": checkout.SelectedPaymentMethod(),
		"order_summary":    checkout.OrderSummary(),
	}
}

// GetCheckout godoc
// @Summary Get checkout state
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout state retrieved",
		"data":    checkoutPayload(ctrl.session(c).Checkout),
	})
}

// NextStep godoc
// @Summary Advance checkout
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/next [post]
func (ctrl *CheckoutController) NextStep(c *gin.Context) {
	step := ctrl.session(c).Checkout.NextStep()
	c.JSON(200, gin.H{"success": true, "message": "Moved to next step", "data": gin.H{"current_step": step}})
}

// PreviousStep godoc
// @Summary Go back one checkout step
// @Description The step counter never goes below the first step
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/previous [post]
func (ctrl *CheckoutController) PreviousStep(c *gin.Context) {
	step := ctrl.session(c).Checkout.PreviousStep()
	c.JSON(200, gin.H{"success": true, "message": "Moved to previous step", "data": gin.H{"current_step": step}})
}

// AddAddress godoc
// @Summary Add shipping address
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddAddressRequest true "Address Request"
// @Success 201 {object} models.Response
// @Router /checkout/addresses [post]
func (ctrl *CheckoutController) AddAddress(c *gin.Context) {
	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	address := ctrl.session(c).Checkout.AddAddress(models.Address{
		FullName:      req.FullName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault,
	})

	c.JSON(201, gin.H{"success": true, "message": "Address added", "data": address})
}

// SelectAddress godoc
// @Summary Select shipping address
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectRequest true "Select Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/addresses/select [post]
func (ctrl *CheckoutController) SelectAddress(c *gin.Context) {
	var req models.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.session(c).Checkout.SelectAddress(req.ID); err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Address selected"})
}

// RemoveAddress godoc
// @Summary Remove shipping address
// @Description Removing the default address promotes the next entry
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/addresses/{id} [delete]
func (ctrl *CheckoutController) RemoveAddress(c *gin.Context) {
	if err := ctrl.session(c).Checkout.RemoveAddress(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Address removed"})
}

// AddPaymentMethod godoc
// @Summary Add payment method
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddPaymentMethodRequest true "Payment Request"
// @Success 201 {object} models.Response
// @Router /checkout/payment-methods [post]
func (ctrl *CheckoutController) AddPaymentMethod(c *gin.Context) {
	var req models.AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	payment := ctrl.session(c).Checkout.AddPaymentMethod(models.PaymentMethod{
		CardNumber:     maskCardNumber(req.CardNumber),
		CardHolderName: req.CardHolderName,
		ExpiryDate:     req.ExpiryDate,
		CVV:            req.CVV,
		IsDefault:      req.IsDefault,
	})

	c.JSON(201, gin.H{"success": true, "message": "Payment method added", "data": payment})
}

// SelectPaymentMethod godoc
// @Summary Select payment method
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectRequest true "Select Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/payment-methods/select [post]
func (ctrl *CheckoutController) SelectPaymentMethod(c *gin.Context) {
	var req models.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.session(c).Checkout.SelectPaymentMethod(req.ID); err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment method selected"})
}

// RemovePaymentMethod godoc
// @Summary Remove payment method
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment Method ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/payment-methods/{id} [delete]
func (ctrl *CheckoutController) RemovePaymentMethod(c *gin.Context) {
	if err := ctrl.session(c).Checkout.RemovePaymentMethod(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment method removed"})
}

// PlaceOrder godoc
// @Summary Place order
// @Description Turn the current cart into an order; the cart is cleared on success
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/order [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	session := ctrl.session(c)

	items := session.Cart.Items()
	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	summary, err := session.Checkout.PlaceOrder(items, session.Cart.TotalPrice())
	if err != nil {
		if errors.Is(err, stores.ErrNoAddressSelected) || errors.Is(err, stores.ErrNoPaymentSelected) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	session.Cart.Clear()

	c.JSON(201, gin.H{"success": true, "message": "Order placed", "data": summary})
}

// ResetCheckout godoc
// @Summary Reset checkout
// @Description Return to the first step and drop the order summary
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/reset [post]
func (ctrl *CheckoutController) ResetCheckout(c *gin.Context) {
	ctrl.session(c).Checkout.Reset()

	c.JSON(200, gin.H{"success": true, "message": "Checkout reset"})
}

func maskCardNumber(number string) string {
	digits := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 4 {
		return number
	}

	last4 := ""
	for i := len(number) - 1; i >= 0 && len(last4) < 4; i-- {
		if number[i] >= '0' && number[i] <= '9' {
			last4 = string(number[i]) + last4
		}
	}
	return "•••• •••• •••• " + last4
}
