package handler

import (
	"encoding/json"
	"net/http"

	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/usecase"
	"surgitrack/pkg/response"
	"surgitrack/pkg/validator"

	"github.com/gorilla/mux"
)

type SurgeryHandler struct {
	surgeryUsecase usecase.SurgeryUsecase
	validator      *validator.CustomValidator
}

func NewSurgeryHandler(surgeryUsecase usecase.SurgeryUsecase, validator *validator.CustomValidator) *SurgeryHandler {
	return &SurgeryHandler{
		surgeryUsecase: surgeryUsecase,
		validator:      validator,
	}
}

func (h *SurgeryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSurgeryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	surgery, err := h.surgeryUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientReference:
			response.Error(w, http.StatusBadRequest, "Invalid patientId")
		case usecase.ErrInvalidDatetime:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.Data(w, http.StatusCreated, surgery)
}

func (h *SurgeryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	surgery, err := h.surgeryUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSurgeryNotFound:
			response.NotFound(w)
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.Data(w, http.StatusOK, surgery)
}

func (h *SurgeryHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := dto.SurgeryListQuery{
		PatientID: params.Get("patient_id"),
		Status:    params.Get("status"),
		Surgeon:   params.Get("surgeon"),
		DateFrom:  params.Get("date_from"),
		DateTo:    params.Get("date_to"),
	}

	surgeries, err := h.surgeryUsecase.List(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDatetime:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.Data(w, http.StatusOK, surgeries)
}

func (h *SurgeryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateSurgeryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	surgery, err := h.surgeryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSurgeryNotFound:
			response.NotFound(w)
		case usecase.ErrPatientReference:
			response.Error(w, http.StatusBadRequest, "Invalid patientId")
		case usecase.ErrInvalidDatetime:
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.Data(w, http.StatusOK, surgery)
}
