package ledger

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Service wires a Mempool and an AccountRegistry into an HTTP handler.
// It is the out-of-core demo surface: it never touches the circuit,
// R1CS, witness, or SNARK packages directly, only opaque proof bytes and
// string-encoded field elements.
type Service struct {
	mempool  *Mempool
	accounts *AccountRegistry
	logger   *slog.Logger
}

// NewService returns a Service backed by mempool and accounts.
func NewService(mempool *Mempool, accounts *AccountRegistry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{mempool: mempool, accounts: accounts, logger: logger}
}

// Handler returns the HTTP handler for the demo surface.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/transactions", s.handleCreate)
	mux.HandleFunc("GET /api/transactions/{nullifier}", s.handleGet)
	mux.HandleFunc("GET /api/transactions", s.handleList)
	return mux
}

// CreateTransactionRequest is the JSON body of POST /api/transactions.
type CreateTransactionRequest struct {
	OldRoot    string `json:"old_root"`
	NewRoot    string `json:"new_root"`
	Nullifier  string `json:"nullifier"`
	Commitment string `json:"commitment"`
	Proof      []byte `json:"proof"`
}

// TransactionResponse reports a transaction's nullifier and its current
// status. The roots, commitment and proof of the submitted transaction
// are not echoed back.
type TransactionResponse struct {
	Nullifier string `json:"nullifier"`
	Status    string `json:"status"`
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	oldRoot, err := parseFieldElement(req.OldRoot)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	newRoot, err := parseFieldElement(req.NewRoot)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	nullifier, err := parseFieldElement(req.Nullifier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	commitment, err := parseFieldElement(req.Commitment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx := Transaction{
		ID:         uuid.New(),
		OldRoot:    oldRoot,
		NewRoot:    newRoot,
		Nullifier:  nullifier,
		Commitment: commitment,
		Proof:      req.Proof,
		Timestamp:  time.Now(),
	}

	if err := s.mempool.Add(tx); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	s.logger.Info("transaction submitted",
		slog.String("id", tx.ID.String()),
		slog.String("nullifier", req.Nullifier))

	writeJSON(w, http.StatusOK, TransactionResponse{
		Nullifier: req.Nullifier,
		Status:    "pending",
	})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	nullifier, err := parseFieldElement(r.PathValue("nullifier"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := "pending"
	if _, ok := s.mempool.Get(nullifier); !ok {
		if !s.accounts.IsSpent(nullifier) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		status = "confirmed"
	}

	writeJSON(w, http.StatusOK, TransactionResponse{
		Nullifier: formatFieldElement(nullifier),
		Status:    status,
	})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	txs := s.mempool.All()
	resp := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		status := "pending"
		if s.accounts.IsSpent(tx.Nullifier) {
			status = "confirmed"
		}
		resp = append(resp, TransactionResponse{
			Nullifier: formatFieldElement(tx.Nullifier),
			Status:    status,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
