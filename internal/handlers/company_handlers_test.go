package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockflow/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCompanyContext(t *testing.T, companyID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/companies/:company_id")
	c.SetParamNames("company_id")
	c.SetParamValues(companyID)
	return c, rec
}

func TestListCompanies(t *testing.T) {
	companySvc := new(MockCompanyService)
	h := NewCompanyHandlers(companySvc)

	companySvc.On("List", mock.Anything).
		Return([]*models.Company{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, h.ListCompanies(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "2", string(body["count"]))
}

func TestGetCompany(t *testing.T) {
	companySvc := new(MockCompanyService)
	h := NewCompanyHandlers(companySvc)

	companySvc.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Company{ID: 1, Name: "Acme"}, nil)

	c, rec := newCompanyContext(t, "1")
	assert.NoError(t, h.GetCompany(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.Company
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Acme", body.Name)
}

func TestGetCompanyNotFound(t *testing.T) {
	companySvc := new(MockCompanyService)
	h := NewCompanyHandlers(companySvc)

	companySvc.On("GetByID", mock.Anything, int64(999)).
		Return(nil, pgx.ErrNoRows)

	c, rec := newCompanyContext(t, "999")
	assert.NoError(t, h.GetCompany(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompanyBadID(t *testing.T) {
	companySvc := new(MockCompanyService)
	h := NewCompanyHandlers(companySvc)

	c, rec := newCompanyContext(t, "acme")
	assert.NoError(t, h.GetCompany(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	companySvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
