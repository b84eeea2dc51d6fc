package domain

import "errors"

// Sentinel errors, checkable with errors.Is against the typed errors below.
var (
	// ErrInvalidInput marks malformed or out-of-range form input.
	ErrInvalidInput = errors.New("paycalc: invalid input")

	// ErrPrecondition marks an action attempted in the wrong session state.
	ErrPrecondition = errors.New("paycalc: precondition failed")

	// ErrExport marks a failed write of the ledger export.
	ErrExport = errors.New("paycalc: export failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("paycalc: invalid configuration")
)

// User-facing messages. The wording is shown verbatim to the user.
const (
	MsgNameRequired     = "Por favor, ingresa el nombre del vendedor."
	MsgNumbersInvalid   = "Revisa Base, Ventas y % Comisión (solo números)."
	MsgNegativeValues   = "Valores inválidos: no pueden ser negativos."
	MsgBonusInvalid     = "Meta y Bono deben ser números válidos."
	MsgBonusNegative    = "Meta y Bono deben ser ≥ 0."
	MsgUnknownTier      = "Tipo de vendedor inválido: usa Junior o Senior."
	MsgNoCalculation    = "Primero realiza un cálculo."
	MsgEmptyLedger      = "No hay datos en la tabla para exportar."
	msgExportFailedHead = "Ocurrió un error al guardar:\n"
	msgExportSavedHead  = "Archivo guardado en:\n"
)

// ValidationError reports the first violated input rule.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// PreconditionError reports an action the session cannot perform yet.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

// ExportError wraps the underlying write failure of an export.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string { return msgExportFailedHead + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) Is(target error) bool { return target == ErrExport }

// ExportedMessage is the confirmation shown after a successful export.
func ExportedMessage(path string) string {
	return msgExportSavedHead + path
}
