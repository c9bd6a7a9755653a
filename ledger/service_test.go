package ledger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMempool(0), NewAccountRegistry(), nil)
}

func TestServiceCreateAndGetTransaction(t *testing.T) {
	svc := newTestService()
	handler := svc.Handler()

	body, _ := json.Marshal(CreateTransactionRequest{
		OldRoot:    "0x1",
		NewRoot:    "0x2",
		Nullifier:  "0x3",
		Commitment: "0x4",
		Proof:      []byte{1, 2, 3},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != "pending" {
		t.Fatalf("status = %q, want pending", created.Status)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/transactions/0x3", nil)
	getRec := httptest.NewRecorder()
	handler.ServeHTTP(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, body = %s", getRec.Code, getRec.Body.String())
	}
}

func TestServiceRejectsDuplicateSubmission(t *testing.T) {
	svc := newTestService()
	handler := svc.Handler()

	body, _ := json.Marshal(CreateTransactionRequest{
		OldRoot:    "0x1",
		NewRoot:    "0x2",
		Nullifier:  "0x3",
		Commitment: "0x4",
	})

	for i, wantCode := range []int{http.StatusOK, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != wantCode {
			t.Fatalf("attempt %d: status = %d, want %d", i, rec.Code, wantCode)
		}
	}
}

func TestServiceGetUnknownNullifierNotFound(t *testing.T) {
	svc := newTestService()
	handler := svc.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/0x99", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestServiceListTransactions(t *testing.T) {
	svc := newTestService()
	handler := svc.Handler()

	body, _ := json.Marshal(CreateTransactionRequest{
		OldRoot: "0x1", NewRoot: "0x2", Nullifier: "0x7", Commitment: "0x8",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	listReq := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	listRec := httptest.NewRecorder()
	handler.ServeHTTP(listRec, listReq)
	if listRec.Code != http.StatusOK {
		t.Fatalf("status = %d", listRec.Code)
	}

	var txs []TransactionResponse
	if err := json.Unmarshal(listRec.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("len(txs) = %d, want 1", len(txs))
	}
}
