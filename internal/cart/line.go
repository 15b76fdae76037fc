package cart

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Line is one entry in the cart. Prices are non-negative and quantities are
// at least 1; NewLine and the stored-data decoder enforce both.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

// rawLine is the permissive shape used when decoding untrusted cart data.
// Older clients stored the product id under "id" and fields may carry the
// wrong JSON type, so everything is coerced.
type rawLine struct {
	ProductID any `json:"product_id"`
	ID        any `json:"id"`
	Name      any `json:"name"`
	Price     any `json:"price"`
	Qty       any `json:"qty"`
	Image     any `json:"image"`
}

// NewLine builds a normalized line. The bool is false when no product id can
// be derived, in which case the line must be discarded.
func NewLine(productID any, name, image string, price float64, qty int) (Line, bool) {
	id := coerceID(productID)
	if id == "" {
		return Line{}, false
	}
	if price < 0 {
		price = 0
	}
	if qty < 1 {
		qty = 1
	}
	return Line{ProductID: id, Name: name, Price: price, Qty: qty, Image: image}, true
}

func (l Line) normalize() (Line, bool) {
	return NewLine(l.ProductID, l.Name, l.Image, l.Price, l.Qty)
}

// coerceID turns a product id of any JSON type into its canonical string
// form. Whole-number floats render without a decimal point so "1" and 1
// identify the same product.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", id))
	}
}

// coerceFloat parses a price-like value, falling back to 0 for anything
// unparseable or negative.
func coerceFloat(v any) float64 {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case int:
		f = float64(p)
	case json.Number:
		f, _ = p.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(p), 64)
	}
	if f < 0 || f != f {
		return 0
	}
	return f
}

// coerceInt parses a quantity-like value, falling back to 1 for anything
// unparseable or below the floor.
func coerceInt(v any) int {
	n := 1
	switch q := v.(type) {
	case float64:
		n = int(q)
	case int:
		n = q
	case json.Number:
		if i, err := q.Int64(); err == nil {
			n = int(i)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(q)); err == nil {
			n = i
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// fromRaw normalizes a decoded stored entry. The bool is false when the entry
// has no usable product id.
func (r rawLine) toLine() (Line, bool) {
	id := coerceID(r.ProductID)
	if id == "" {
		id = coerceID(r.ID)
	}
	if id == "" {
		return Line{}, false
	}
	return Line{
		ProductID: id,
		Name:      coerceString(r.Name),
		Price:     coerceFloat(r.Price),
		Qty:       coerceInt(r.Qty),
		Image:     coerceString(r.Image),
	}, true
}
