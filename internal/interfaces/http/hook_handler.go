package http

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-sync-hook/internal/application/dto"
	"github.com/jhoicas/crm-sync-hook/internal/application/integration"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

// HookRunner contrato que expone *integration.Hook a la capa HTTP.
type HookRunner interface {
	BeforeLoad(ctx context.Context, ev integration.Event) integration.Result
	BeforeSubmit(ctx context.Context, ev integration.Event) integration.Result
	AfterSubmit(ctx context.Context, ev integration.Event) integration.Result
}

// HookHandler recibe los eventos de ciclo de vida de la plataforma.
type HookHandler struct {
	hooks      HookRunner
	defaultEnv entity.EnvKind
	log        *logger.Logger
}

// NewHookHandler construye el handler. defaultEnv se usa cuando el evento no trae ambiente.
func NewHookHandler(hooks HookRunner, defaultEnv entity.EnvKind, log *logger.Logger) *HookHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HookHandler{hooks: hooks, defaultEnv: defaultEnv, log: log.Component("http.hooks")}
}

// BeforeLoad POST /api/hooks/before-load
func (h *HookHandler) BeforeLoad(c *fiber.Ctx) error {
	return h.run(c, integration.HookBeforeLoad, h.hooks.BeforeLoad)
}

// BeforeSubmit POST /api/hooks/before-submit
func (h *HookHandler) BeforeSubmit(c *fiber.Ctx) error {
	return h.run(c, integration.HookBeforeSubmit, h.hooks.BeforeSubmit)
}

// AfterSubmit POST /api/hooks/after-submit
func (h *HookHandler) AfterSubmit(c *fiber.Ctx) error {
	return h.run(c, integration.HookAfterSubmit, h.hooks.AfterSubmit)
}

func (h *HookHandler) run(c *fiber.Ctx, hook string, fn func(context.Context, integration.Event) integration.Result) error {
	var in dto.HookEventRequest
	// UseNumber conserva los montos exactos; float64 perdería centavos.
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ev, errResp := eventFromRequest(in)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	if ev.Exec.Environment == "" {
		ev.Exec.Environment = h.defaultEnv
	}

	res := fn(c.UserContext(), ev)

	out := dto.HookEventResponse{
		Changes:         map[string]any(res.Changes),
		CustomerUpdated: res.CustomerUpdated,
	}
	if out.Changes == nil {
		out.Changes = map[string]any{}
	}
	if res.Err != nil {
		out.Warning = res.Err.Error()
	}
	h.log.Debug().
		Str("hook", hook).
		Str("account_id", GetAccountID(c)).
		Str("record_type", string(ev.Record.Type)).
		Str("record_id", ev.Record.ID).
		Int("changes", len(out.Changes)).
		Msg("hook ejecutado")
	return c.JSON(out)
}

// eventFromRequest valida el cuerpo y lo traduce al evento del caso de uso.
func eventFromRequest(in dto.HookEventRequest) (integration.Event, *dto.ErrorResponse) {
	recordType := entity.RecordType(strings.ToLower(strings.TrimSpace(in.Record.Type)))
	if !recordType.Valid() {
		return integration.Event{}, &dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: "tipo de registro no soportado: " + in.Record.Type}
	}
	trigger := entity.TriggerType(strings.ToLower(strings.TrimSpace(in.Trigger)))
	if trigger == "" {
		return integration.Event{}, &dto.ErrorResponse{Code: "VALIDATION", Message: "trigger requerido"}
	}
	return integration.Event{
		Trigger: trigger,
		Exec: entity.ExecutionContext{
			UserEmail:   strings.TrimSpace(in.Execution.UserEmail),
			Context:     entity.NormalizeContextKind(in.Execution.Context),
			Environment: entity.NormalizeEnvKind(in.Execution.Environment),
		},
		Record: integration.Record{
			Type:     recordType,
			ID:       string(in.Record.ID),
			Fields:   in.Record.Fields,
			Sublists: in.Record.Sublists,
		},
	}, nil
}
