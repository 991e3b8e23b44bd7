package dto

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoquespy/internal/domain"
	"github.com/jhoicas/estoquespy/internal/domain/entity"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
)

// dateLayout formato de fecha de calendario usado en todo el contrato.
const dateLayout = "2006-01-02"

// ProductPayload representación JSON de Product en el contrato REST (/api/products).
// Price viaja como número JSON; internamente es decimal.
type ProductPayload struct {
	ID           FlexString `json:"id,omitempty"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Size         string     `json:"size"`
	Color        string     `json:"color"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	Supplier     string     `json:"supplier"`
	RegisteredBy string     `json:"registeredBy"`
	RegisteredAt string     `json:"registeredAt"`
	IDRFID       string     `json:"IDRFID,omitempty"`
}

// ToEntity convierte el payload a entidad.
func (p ProductPayload) ToEntity() entity.Product {
	return entity.Product{
		ID:           p.ID.String(),
		Name:         p.Name,
		Category:     p.Category,
		Size:         p.Size,
		Color:        p.Color,
		Quantity:     p.Quantity,
		Price:        decimal.NewFromFloat(p.Price),
		Supplier:     p.Supplier,
		RegisteredBy: p.RegisteredBy,
		RegisteredAt: p.RegisteredAt,
		IDRFID:       p.IDRFID,
	}
}

// NewProductPayload convierte la entidad a payload.
func NewProductPayload(p entity.Product) ProductPayload {
	return ProductPayload{
		ID:           FlexString(p.ID),
		Name:         p.Name,
		Category:     p.Category,
		Size:         p.Size,
		Color:        p.Color,
		Quantity:     p.Quantity,
		Price:        p.Price.InexactFloat64(),
		Supplier:     p.Supplier,
		RegisteredBy: p.RegisteredBy,
		RegisteredAt: p.RegisteredAt,
		IDRFID:       p.IDRFID,
	}
}

// ProductForm entrada del formulario de producto tal como la escribe el usuario.
// Quantity y Price llegan como texto y se parsean en ToProduct; nunca se asume 0.
type ProductForm struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Category     string     `json:"category" validate:"required,max=100"`
	Size         string     `json:"size" validate:"required,max=20"`
	Color        string     `json:"color" validate:"required,max=60"`
	Quantity     FlexString `json:"quantity" validate:"required"`
	Price        FlexString `json:"price" validate:"required"`
	Supplier     string     `json:"supplier" validate:"required,max=200"`
	RegisteredBy string     `json:"registeredBy" validate:"required,max=200"`
	RegisteredAt string     `json:"registeredAt" validate:"omitempty,datetime=2006-01-02"`
	IDRFID       string     `json:"IDRFID" validate:"max=64"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ToProduct valida el formulario y construye la entidad (sin ID).
// Aplica NormalizeTagCode a IDRFID y usa today como RegisteredAt si viene vacío.
func (f ProductForm) ToProduct(today time.Time) (entity.Product, error) {
	verr := newValidationError()

	if err := formValidator.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return entity.Product{}, err
		}
		for _, fe := range fieldErrs {
			verr.add(fe.Field(), validationMessage(fe), nil)
		}
	}

	qty, err := ParseQuantity(f.Quantity.String())
	if err != nil && f.Quantity != "" {
		verr.add("quantity", err.Error(), domain.ErrInvalidQuantity)
	}
	price, err := ParsePrice(f.Price.String())
	if err != nil && f.Price != "" {
		verr.add("price", err.Error(), domain.ErrInvalidPrice)
	}

	if !verr.empty() {
		return entity.Product{}, verr
	}

	registeredAt := f.RegisteredAt
	if registeredAt == "" {
		registeredAt = today.Format(dateLayout)
	}

	return entity.Product{
		Name:         f.Name,
		Category:     f.Category,
		Size:         f.Size,
		Color:        f.Color,
		Quantity:     qty,
		Price:        price,
		Supplier:     f.Supplier,
		RegisteredBy: f.RegisteredBy,
		RegisteredAt: registeredAt,
		IDRFID:       inventory.NormalizeTagCode(f.IDRFID),
	}, nil
}

// Límites de los campos numéricos del formulario.
const (
	MaxQuantity   = math.MaxInt32
	MaxPriceScale = 2
)

// MaxPrice mayor precio aceptado (R$ 999.999.999,99).
var MaxPrice = decimal.RequireFromString("999999999.99")

// ParseQuantity parsea una cantidad entera no negativa, como máximo MaxQuantity.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidQuantity
	}
	if n < 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return int(n), nil
}

// pricePattern solo dígitos con separador decimal opcional: sin signo, exponente ni NaN/Inf.
var pricePattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// ParsePrice parsea un precio decimal no negativo con hasta MaxPriceScale decimales
// y como máximo MaxPrice. Acepta coma como separador decimal ("29,90").
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !pricePattern.MatchString(s) {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	if !d.Equal(d.Round(MaxPriceScale)) {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	if d.GreaterThan(MaxPrice) {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return d, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "max":
		return "excede la longitud máxima de " + fe.Param()
	case "datetime":
		return "fecha inválida, formato esperado YYYY-MM-DD"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
