package entity

import "strings"

// ContextKind tipo de contexto de ejecución reportado por la plataforma.
type ContextKind string

const (
	ContextUserInterface ContextKind = "USERINTERFACE"
	ContextWebServices   ContextKind = "WEBSERVICES"
	ContextCSVImport     ContextKind = "CSVIMPORT"
)

// EnvKind ambiente de la cuenta ERP.
type EnvKind string

const (
	EnvSandbox    EnvKind = "SANDBOX"
	EnvProduction EnvKind = "PRODUCTION"
)

// ExecutionContext quién y desde dónde se está ejecutando el evento.
type ExecutionContext struct {
	UserEmail   string
	Context     ContextKind
	Environment EnvKind
}

// IsInteractive indica si el evento viene de la interfaz de usuario.
func (e ExecutionContext) IsInteractive() bool {
	return e.Context == ContextUserInterface
}

// IsSandbox cualquier valor distinto de SANDBOX se trata como producción.
func (e ExecutionContext) IsSandbox() bool {
	return e.Environment == EnvSandbox
}

// NormalizeContextKind convierte el texto recibido al valor canónico.
func NormalizeContextKind(s string) ContextKind {
	return ContextKind(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeEnvKind convierte el texto recibido al valor canónico.
func NormalizeEnvKind(s string) EnvKind {
	return EnvKind(strings.ToUpper(strings.TrimSpace(s)))
}
