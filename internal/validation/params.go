package validation

import (
	"fmt"
	"math"
)

// ParameterError representa un error de validación de un parámetro de entrada.
// Es un bug del llamador (configuración inválida), nunca un caso degenerado
// de cálculo.
type ParameterError struct {
	Field   string
	Value   float64
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s (valor: %g)", e.Field, e.Message, e.Value)
}

// Finite rechaza NaN e infinitos.
func Finite(v float64, field string) error {
	if math.IsNaN(v) {
		return &ParameterError{Field: field, Value: v, Message: "valor NaN no permitido"}
	}
	if math.IsInf(v, 0) {
		return &ParameterError{Field: field, Value: v, Message: "valor infinito no permitido"}
	}
	return nil
}

// Positive valida que el valor sea finito y estrictamente positivo.
func Positive(v float64, field string) error {
	if err := Finite(v, field); err != nil {
		return err
	}
	if v <= 0 {
		return &ParameterError{Field: field, Value: v, Message: "debe ser mayor que cero"}
	}
	return nil
}

// NonNegative valida que el valor sea finito y no negativo.
func NonNegative(v float64, field string) error {
	if err := Finite(v, field); err != nil {
		return err
	}
	if v < 0 {
		return &ParameterError{Field: field, Value: v, Message: "no puede ser negativo"}
	}
	return nil
}

// InRange valida que el valor esté dentro del rango cerrado [lo, hi].
func InRange(v, lo, hi float64, field string) error {
	if err := Finite(v, field); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &ParameterError{
			Field: field, Value: v,
			Message: fmt.Sprintf("debe estar entre %g y %g", lo, hi),
		}
	}
	return nil
}

// AtLeastInt valida un entero con un mínimo inclusivo.
func AtLeastInt(v, min int, field string) error {
	if v < min {
		return &ParameterError{
			Field: field, Value: float64(v),
			Message: fmt.Sprintf("debe ser al menos %d", min),
		}
	}
	return nil
}
