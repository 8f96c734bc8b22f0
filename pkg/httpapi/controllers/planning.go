package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
}

// PlanningController wires PlanningService to httprouter handlers.
type PlanningController struct {
	svc PlanningService
	log *zap.Logger
}

// NewPlanningController builds a controller dispatching to svc.
func NewPlanningController(svc PlanningService, log *zap.Logger) *PlanningController {
	return &PlanningController{svc: svc, log: log}
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return errorTranslated(verrs[0])
		}
		return err
	}
	return nil
}

type translatedError struct{ msg string }

func (e translatedError) Error() string { return e.msg }

func errorTranslated(fe validator.FieldError) error {
	return translatedError{msg: fe.Translate(trans)}
}

// Plan handles POST /v1/plan.
func (c *PlanningController) Plan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req PlanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		BadRequestResponse(w, err)
		return
	}

	resp, err := c.svc.Plan(r.Context(), req)
	if err != nil {
		ServerErrorResponse(c.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PlanBatch handles POST /v1/plan/batch.
func (c *PlanningController) PlanBatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req BatchPlanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		BadRequestResponse(w, err)
		return
	}

	resp, err := c.svc.PlanBatch(r.Context(), req)
	if err != nil {
		ServerErrorResponse(c.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSession handles POST /v1/sessions.
func (c *PlanningController) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateSessionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		BadRequestResponse(w, err)
		return
	}

	resp, err := c.svc.CreateSession(r.Context(), req)
	if err != nil {
		ServerErrorResponse(c.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// UpdateRobotLoc handles POST /v1/sessions/{id}/robot-loc.
func (c *PlanningController) UpdateRobotLoc(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req RobotLocRequest
	if err := decodeAndValidate(r, &req); err != nil {
		BadRequestResponse(w, err)
		return
	}

	resp, err := c.svc.UpdateRobotLoc(r.Context(), ps.ByName("id"), req)
	if err != nil {
		ServerErrorResponse(c.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ApplyMapChange handles POST /v1/sessions/{id}/map-change.
func (c *PlanningController) ApplyMapChange(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req MapChangeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		BadRequestResponse(w, err)
		return
	}

	resp, err := c.svc.ApplyMapChange(r.Context(), ps.ByName("id"), req)
	if err != nil {
		ServerErrorResponse(c.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Service exposes the underlying PlanningService for the websocket
// handler, which needs Subscribe directly rather than through a JSON
// request/response pair.
func (c *PlanningController) Service() PlanningService {
	return c.svc
}

// Healthz handles GET /healthz.
func Healthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
