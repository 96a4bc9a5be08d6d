package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"phonestore/internal/domain"
	ordersvc "phonestore/internal/service/order"
	usersvc "phonestore/internal/service/user"
)

type customerPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address" binding:"required"`
	Note     string `json:"note"`
}

type cartLinePayload struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Price    int64  `json:"price" binding:"min=0"`
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity" binding:"min=1"`
}

type paymentPayload struct {
	Method string `json:"method"`
}

type createOrderRequest struct {
	Customer *customerPayload `json:"customer" binding:"required"`
	Cart     []cartLinePayload `json:"cart" binding:"required,min=1,dive"`
	Payment  *paymentPayload   `json:"payment"`
}

func (r createOrderRequest) toInput() ordersvc.CreateInput {
	cart := make(domain.Cart, 0, len(r.Cart))
	for _, l := range r.Cart {
		cart = append(cart, domain.CartLine(l))
	}
	in := ordersvc.CreateInput{
		Customer: &domain.Customer{
			FullName: r.Customer.FullName,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
			Address:  r.Customer.Address,
			Note:     r.Customer.Note,
		},
		Cart: cart,
	}
	if r.Payment != nil {
		in.Payment = &domain.Payment{Method: r.Payment.Method}
	}
	return in
}

type createUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
}

func (r createUserRequest) toInput() usersvc.CreateInput {
	return usersvc.CreateInput{FullName: r.FullName, Email: r.Email, Phone: r.Phone}
}

// orderBindError maps a binding failure on POST /api/orders to a message key.
// Customer problems are reported before cart problems. An empty body counts as
// a missing customer.
func orderBindError(err error) *domain.ValidationError {
	if errors.Is(err, io.EOF) {
		return &domain.ValidationError{Key: domain.MsgCustomerIncomplete, Detail: "empty body"}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch topField(typeErr.Field) {
		case "customer":
			return &domain.ValidationError{Key: domain.MsgCustomerIncomplete, Detail: err.Error()}
		case "cart":
			if typeErr.Field == "cart" {
				return &domain.ValidationError{Key: domain.MsgCartEmpty, Detail: err.Error()}
			}
		}
		return &domain.ValidationError{Key: domain.MsgInvalidBody, Detail: err.Error()}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var cartMissing, lineInvalid bool
		for _, fe := range verrs {
			ns := fe.StructNamespace()
			switch {
			case strings.HasPrefix(ns, "createOrderRequest.Customer"):
				return &domain.ValidationError{Key: domain.MsgCustomerIncomplete, Detail: verrs.Error()}
			case strings.HasPrefix(ns, "createOrderRequest.Cart["):
				lineInvalid = true
			case ns == "createOrderRequest.Cart":
				cartMissing = true
			}
		}
		switch {
		case cartMissing:
			return &domain.ValidationError{Key: domain.MsgCartEmpty, Detail: verrs.Error()}
		case lineInvalid:
			return &domain.ValidationError{Key: domain.MsgInvalidBody, Detail: verrs.Error()}
		}
	}
	return &domain.ValidationError{Key: domain.MsgInvalidBody, Detail: err.Error()}
}

// userBindError maps a binding failure on POST /api/users to a message key.
func userBindError(err error) *domain.ValidationError {
	var (
		typeErr *json.UnmarshalTypeError
		verrs   validator.ValidationErrors
	)
	if errors.Is(err, io.EOF) || errors.As(err, &typeErr) || errors.As(err, &verrs) {
		return &domain.ValidationError{Key: domain.MsgUserIncomplete, Detail: err.Error()}
	}
	return &domain.ValidationError{Key: domain.MsgInvalidBody, Detail: err.Error()}
}

func topField(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		return field[:i]
	}
	return field
}
