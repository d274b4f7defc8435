package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

// CRMURLs URLs base por defecto, tomadas de la configuración del proceso.
type CRMURLs struct {
	Sandbox    string
	Production string
}

// CompanyConfigUseCase resuelve la URL base del CRM: primero las preferencias de la compañía,
// después los valores por defecto de la configuración.
type CompanyConfigUseCase struct {
	prefs    repository.CompanyPreferenceRepository
	fallback CRMURLs
}

// NewCompanyConfigUseCase construye el caso de uso con el puerto de preferencias.
func NewCompanyConfigUseCase(prefs repository.CompanyPreferenceRepository, fallback CRMURLs) *CompanyConfigUseCase {
	return &CompanyConfigUseCase{prefs: prefs, fallback: fallback}
}

// GetCompanyURL devuelve la URL del ambiente indicado. Cualquier ambiente distinto de SANDBOX usa producción.
// Devuelve domain.ErrCRMURLNotDefined si no hay valor en ninguna fuente.
func (uc *CompanyConfigUseCase) GetCompanyURL(ctx context.Context, env entity.EnvKind) (string, error) {
	key, fallback := entity.PrefCRMProductionURL, uc.fallback.Production
	if env == entity.EnvSandbox {
		key, fallback = entity.PrefCRMSandboxURL, uc.fallback.Sandbox
	}
	value, err := uc.prefs.GetPreference(ctx, key)
	if err != nil {
		return "", fmt.Errorf("preferencia %s: %w", key, err)
	}
	if v := strings.TrimSpace(value); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(fallback); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s: %w", key, domain.ErrCRMURLNotDefined)
}
