// Package i18n resolves user-facing messages in the caller's locale.
// Vietnamese is the storefront's home locale; English is the only other one.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"phonestore/internal/domain"
)

// Keys that are not validation failures.
const (
	MsgInternalError   = "internal_error"
	MsgOrderPlaced     = "order_placed"
	MsgCheckoutFailed  = "checkout_failed"
	MsgAllBrands       = "all_brands"
	MsgProductNotFound = "product_not_found"
)

var supported = []language.Tag{language.Vietnamese, language.English}

var messages = map[string][2]string{
	domain.MsgCustomerIncomplete: {"Thiếu thông tin khách hàng", "Missing customer information"},
	domain.MsgCartEmpty:          {"Giỏ hàng trống", "Cart is empty"},
	domain.MsgUserIncomplete:     {"Thiếu tên hoặc email", "Missing name or email"},
	domain.MsgInvalidBody:        {"Dữ liệu gửi lên không hợp lệ", "Invalid request body"},
	MsgInternalError:             {"Lỗi hệ thống, vui lòng thử lại sau", "Internal error, please try again later"},
	MsgOrderPlaced:               {"Đặt hàng thành công! Mã đơn: %s", "Order placed! Order ID: %s"},
	MsgCheckoutFailed:            {"Có lỗi xảy ra. Vui lòng thử lại.", "Something went wrong. Please try again."},
	MsgAllBrands:                 {"Tất cả thương hiệu", "All brands"},
	MsgProductNotFound:           {"Không tìm thấy sản phẩm", "Product not found"},
}

// Translator picks a supported locale for a request and renders messages in it.
type Translator struct {
	catalog  catalog.Catalog
	matcher  language.Matcher
	fallback language.Tag
}

// New builds a Translator whose fallback is defaultLocale, or Vietnamese if that is unsupported.
func New(defaultLocale string) *Translator {
	b := catalog.NewBuilder(catalog.Fallback(language.Vietnamese))
	for key, text := range messages {
		_ = b.SetString(language.Vietnamese, key, text[0])
		_ = b.SetString(language.English, key, text[1])
	}

	t := &Translator{
		catalog:  b,
		matcher:  language.NewMatcher(supported),
		fallback: language.Vietnamese,
	}
	if tag, ok := t.match(defaultLocale); ok {
		t.fallback = tag
	}
	return t
}

// Resolve maps an Accept-Language header (or a bare tag such as "en") to a supported locale.
func (t *Translator) Resolve(acceptLanguage string) language.Tag {
	if tag, ok := t.match(acceptLanguage); ok {
		return tag
	}
	return t.fallback
}

func (t *Translator) match(header string) (language.Tag, bool) {
	if header == "" {
		return language.Und, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Message renders key in the given locale. Unknown keys are returned unchanged.
func (t *Translator) Message(tag language.Tag, key string, args ...any) string {
	return t.Printer(tag).Sprintf(key, args...)
}

// Printer returns a message printer bound to the catalog. It also localizes number formatting.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}
