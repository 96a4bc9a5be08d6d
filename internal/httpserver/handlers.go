package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonestore/internal/domain"
	"phonestore/internal/i18n"
)

type handlers struct {
	products   productService
	orders     orderService
	users      userService
	translator *i18n.Translator
	logger     *log.Logger
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, orderBindError(err))
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Printf("order created id=%s lines=%d", order.ID, len(order.Cart))
	c.JSON(http.StatusCreated, order)
}

func (h *handlers) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, userBindError(err))
		return
	}
	user, created, err := h.users.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// fail writes validation errors as 400, missing entities as 404 and everything else as a logged 500.
func (h *handlers) fail(c *gin.Context, err error) {
	locale := localeFrom(c)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.translator.Message(locale, verr.Key)})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": h.translator.Message(locale, i18n.MsgProductNotFound)})
		return
	}
	h.logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": h.translator.Message(locale, i18n.MsgInternalError)})
}
