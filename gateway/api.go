package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/jonanatree/bambora-sim/gateway/models"
)

// API is the HTTP surface of the simulated gateway. It decodes and
// validates request bodies, delegates to the Service, and renders the
// service's response objects verbatim.
type API struct {
	gateway  *Service
	validate *validator.Validate
}

func NewAPI(gateway *Service) *API {
	return &API{
		gateway:  gateway,
		validate: validator.New(),
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/scripts/tokenization/tokens", a.tokenizeCard)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/profiles", a.createProfile)
		r.Route("/profiles/{profileID}", func(r chi.Router) {
			r.Get("/", a.getProfile)
			r.Get("/cards", a.getProfileCards)
		})
		r.Post("/payments", a.createPayment)
	})
}

func (a *API) tokenizeCard(w http.ResponseWriter, r *http.Request) {
	req := models.TokenizeRequest{}
	if !a.decode(w, r, &req) {
		return
	}

	resp, err := a.gateway.TokenizeCard(req)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) createProfile(w http.ResponseWriter, r *http.Request) {
	req := models.CreateProfileRequest{}
	if !a.decode(w, r, &req) {
		return
	}

	resp, err := a.gateway.CreateProfile(req)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	resp, err := a.gateway.GetProfile(profileID)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) getProfileCards(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	resp, err := a.gateway.GetProfileCards(profileID)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (a *API) createPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if !a.decode(w, r, &req) {
		return
	}

	resp, err := a.gateway.CreatePayment(req)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// decode parses and validates the request body, rendering the error
// response itself when the body is unusable.
func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, models.ErrorResponse{Message: "invalid request body"})
		return false
	}
	if err := a.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, models.ErrorResponse{Message: validationMessage(verrs)})
			return false
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, models.ErrorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// renderError maps service errors to the processor's flat error body.
// Malformed requests are 422 in every mode; unresolved references only
// surface in strict mode and arrive here as 400s.
func (a *API) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *RequestError
	var refErr *ReferenceError
	switch {
	case errors.As(err, &reqErr):
		render.Status(r, http.StatusUnprocessableEntity)
	case errors.As(err, &refErr):
		render.Status(r, http.StatusBadRequest)
	default:
		render.Status(r, http.StatusInternalServerError)
	}
	render.JSON(w, r, models.ErrorResponse{Message: err.Error()})
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
