package repository

import "context"

// CompanyPreferenceRepository puerto de lectura de las preferencias generales de la compañía.
// La implementación vive en infrastructure.
type CompanyPreferenceRepository interface {
	// GetPreference devuelve "" (sin error) cuando la preferencia no está definida.
	GetPreference(ctx context.Context, key string) (string, error)
}
