package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"biztime-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInvoices(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "apple", "Apple", "")
	first := testutil.SeedInvoice(t, a.db, "apple", 100)
	testutil.SeedInvoice(t, a.db, "apple", 200)

	status, body := a.do(http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusOK, status)
	invoices := list(t, body["invoices"])
	require.Len(t, invoices, 2)
	assert.Equal(t, map[string]any{"id": float64(first), "comp_code": "apple"}, invoices[0])
}

func TestGetInvoice(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "apple", "Apple Computer", "Maker of OSX.")
	id := testutil.SeedInvoice(t, a.db, "apple", 100)

	status, body := a.do(http.MethodGet, fmt.Sprintf("/invoices/%d", id), "")
	require.Equal(t, http.StatusOK, status)
	invoice := obj(t, body["invoice"])
	assert.Equal(t, float64(id), invoice["id"])
	assert.Equal(t, float64(100), invoice["amt"])
	assert.Equal(t, false, invoice["paid"])
	assert.Equal(t, today(), invoice["add_date"])
	assert.Nil(t, invoice["paid_date"])
	assert.NotContains(t, invoice, "comp_code")
	assert.Equal(t, map[string]any{
		"code":        "apple",
		"name":        "Apple Computer",
		"description": "Maker of OSX.",
	}, invoice["company"])
}

func TestGetInvoiceErrors(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(http.MethodGet, "/invoices/0", "")
	require.Equal(t, http.StatusNotFound, status)
	msg, _ := errorOf(t, body)
	assert.Equal(t, "Invoice with ID 0 not found", msg)

	status, body = a.do(http.MethodGet, "/invoices/abc", "")
	require.Equal(t, http.StatusBadRequest, status)
	msg, _ = errorOf(t, body)
	assert.Equal(t, "Invalid invoice id abc", msg)
}

func TestCreateInvoice(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "microsoft", "Microsoft", "")

	status, body := a.do(http.MethodPost, "/invoices", `{"comp_code":"microsoft","amt":1000}`)
	require.Equal(t, http.StatusCreated, status)
	invoice := obj(t, body["invoice"])
	assert.NotZero(t, invoice["id"])
	assert.Equal(t, "microsoft", invoice["comp_code"])
	assert.Equal(t, float64(1000), invoice["amt"])
	assert.Equal(t, false, invoice["paid"])
	assert.Equal(t, today(), invoice["add_date"])
	assert.Nil(t, invoice["paid_date"])
}

func TestCreateInvoiceErrors(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "apple", "Apple", "")

	status, body := a.do(http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)
	require.Equal(t, http.StatusNotFound, status)
	msg, _ := errorOf(t, body)
	assert.Equal(t, "Company with code nope not found", msg)

	status, body = a.do(http.MethodPost, "/invoices", `{"comp_code":"apple"}`)
	require.Equal(t, http.StatusBadRequest, status)
	msg, _ = errorOf(t, body)
	assert.Equal(t, "amt is required", msg)

	status, _ = a.do(http.MethodPost, "/invoices", `{"amt":10}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateInvoiceAcceptsZeroAmount(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "apple", "Apple", "")

	status, body := a.do(http.MethodPost, "/invoices", `{"comp_code":"apple","amt":0}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(0), obj(t, body["invoice"])["amt"])
}

func TestUpdateInvoicePaymentTransitions(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "microsoft", "Microsoft", "")
	id := testutil.SeedInvoice(t, a.db, "microsoft", 1000)
	path := fmt.Sprintf("/invoices/%d", id)

	status, body := a.do(http.MethodPut, path, `{"amt":1500,"paid":true}`)
	require.Equal(t, http.StatusOK, status)
	invoice := obj(t, body["invoice"])
	assert.Equal(t, float64(1500), invoice["amt"])
	assert.Equal(t, true, invoice["paid"])
	assert.Equal(t, today(), invoice["paid_date"])

	// Paying again leaves the stamp alone.
	testutil.MustExec(t, a.db, "UPDATE invoices SET paid_date = ? WHERE id = ?", "2018-01-01", id)
	status, body = a.do(http.MethodPut, path, `{"amt":1500,"paid":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2018-01-01", obj(t, body["invoice"])["paid_date"])

	status, body = a.do(http.MethodPut, path, `{"amt":1500,"paid":false}`)
	require.Equal(t, http.StatusOK, status)
	invoice = obj(t, body["invoice"])
	assert.Equal(t, false, invoice["paid"])
	assert.Nil(t, invoice["paid_date"])
}

func TestUpdateInvoiceErrors(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(http.MethodPut, "/invoices/99999", `{"amt":1500,"paid":true}`)
	require.Equal(t, http.StatusNotFound, status)
	msg, _ := errorOf(t, body)
	assert.Equal(t, "Invoice with ID 99999 not found", msg)

	status, body = a.do(http.MethodPut, "/invoices/1", `{"amt":1500}`)
	require.Equal(t, http.StatusBadRequest, status)
	msg, _ = errorOf(t, body)
	assert.Equal(t, "paid is required", msg)

	status, _ = a.do(http.MethodPut, "/invoices/x", `{"amt":1500,"paid":true}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteInvoice(t *testing.T) {
	a := newAPI(t)
	testutil.SeedCompany(t, a.db, "apple", "Apple", "")
	id := testutil.SeedInvoice(t, a.db, "apple", 100)
	path := fmt.Sprintf("/invoices/%d", id)

	status, body := a.do(http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "deleted", body["status"])

	status, _ = a.do(http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = a.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, status)
}
