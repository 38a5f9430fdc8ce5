package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/usecase"
	"surgitrack/pkg/validator"

	"github.com/gorilla/mux"
)

type fakePatientUsecase struct {
	createFn func(*dto.CreatePatientRequest) (*dto.PatientResponse, error)
	getFn    func(string) (*dto.PatientResponse, error)
	listFn   func(string) ([]dto.PatientResponse, error)
	updateFn func(string, *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

func (f *fakePatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return f.createFn(req)
}

func (f *fakePatientUsecase) Get(ctx context.Context, id string) (*dto.PatientResponse, error) {
	return f.getFn(id)
}

func (f *fakePatientUsecase) List(ctx context.Context, q string) ([]dto.PatientResponse, error) {
	return f.listFn(q)
}

func (f *fakePatientUsecase) Update(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return f.updateFn(id, req)
}

func TestCreatePatient(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		createFn: func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{
				ID:        "p_4f9c01a",
				FirstName: req.FirstName,
				LastName:  req.LastName,
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/patients",
		strings.NewReader(`{"firstName":"John","lastName":"Doe"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if string(body.Data["id"]) != `"p_4f9c01a"` {
		t.Errorf("id = %s", body.Data["id"])
	}
	// Optional fields absent from the request must come back as null.
	if string(body.Data["dateOfBirth"]) != "null" {
		t.Errorf("dateOfBirth = %s, want null", body.Data["dateOfBirth"])
	}
}

func TestCreatePatientValidation(t *testing.T) {
	called := false
	h := NewPatientHandler(&fakePatientUsecase{
		createFn: func(*dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			called = true
			return nil, nil
		},
	}, validator.NewValidator())

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing last name", `{"firstName":"John"}`, "lastName"},
		{"empty first name", `{"firstName":"","lastName":"Doe"}`, "firstName"},
		{"bad email", `{"firstName":"John","lastName":"Doe","email":"not-an-email"}`, "email"},
		{"bad date of birth", `{"firstName":"John","lastName":"Doe","dateOfBirth":"12.04.1985"}`, "dateOfBirth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantField) {
				t.Errorf("error should name %q, got %s", tt.wantField, rec.Body.String())
			}
		})
	}

	if called {
		t.Error("usecase must not be reached on invalid input")
	}
}

func TestGetPatientNotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		getFn: func(string) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patients/p_missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "p_missing"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListPatientsPassesQuery(t *testing.T) {
	var gotQuery string
	h := NewPatientHandler(&fakePatientUsecase{
		listFn: func(q string) ([]dto.PatientResponse, error) {
			gotQuery = q
			return []dto.PatientResponse{{ID: "p1", FirstName: "John", LastName: "Doe"}}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patients?q=+doe+", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotQuery != "doe" {
		t.Errorf("query = %q, want trimmed %q", gotQuery, "doe")
	}
	if !strings.Contains(rec.Body.String(), `"data":[`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestUpdatePatientPartial(t *testing.T) {
	var gotID string
	var gotReq *dto.UpdatePatientRequest
	h := NewPatientHandler(&fakePatientUsecase{
		updateFn: func(id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
			gotID = id
			gotReq = req
			return &dto.PatientResponse{ID: id, FirstName: "John", LastName: "Doe", Phone: req.Phone}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPatch, "/api/patients/p_4f9c01a",
		strings.NewReader(`{"phone":"555-9999"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "p_4f9c01a"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if gotID != "p_4f9c01a" {
		t.Errorf("id = %q", gotID)
	}
	if gotReq.FirstName != nil || gotReq.LastName != nil {
		t.Error("unsupplied fields must stay nil")
	}
	if gotReq.Phone == nil || *gotReq.Phone != "555-9999" {
		t.Error("supplied phone missing from request")
	}
}

func TestUpdatePatientNotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		updateFn: func(string, *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPatch, "/api/patients/p_missing",
		strings.NewReader(`{"phone":"555-9999"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "p_missing"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdatePatientRejectsEmptyName(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		updateFn: func(string, *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
			t.Fatal("usecase must not be reached")
			return nil, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPatch, "/api/patients/p_4f9c01a",
		strings.NewReader(`{"firstName":""}`))
	req = mux.SetURLVars(req, map[string]string{"id": "p_4f9c01a"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
