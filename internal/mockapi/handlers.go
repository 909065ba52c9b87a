package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"finboard/internal/core"
	"finboard/internal/log"
)

const maxBodyBytes = 1 << 20

var errBadBody = errors.New("invalid request body")

type ctxKey string

const userKey ctxKey = "user"

func userFrom(ctx context.Context) core.User {
	u, _ := ctx.Value(userKey).(core.User)
	return u
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireAuth rejects requests without a live bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		user, err := s.store.Authenticate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var v T
	if r.Body == nil || r.ContentLength == 0 {
		return v, nil
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", errBadBody, err)
	}
	return v, nil
}

func idParam(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// Auth

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	c, err := decodeBody[core.Credentials](w, r)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	res, err := s.store.Register(c)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	s.logger.InfoContext(r.Context(), "User registered", log.FieldUserID, res.User.ID)
	respond().Status(http.StatusCreated).Message("Account created").Data(res).Send(w)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	c, err := decodeBody[core.Credentials](w, r)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	res, err := s.store.Login(c)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	respond().Message("Logged in").Data(res).Send(w)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	respond().Data(userFrom(r.Context())).Send(w)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.store.Revoke(bearerToken(r))
	respond().Message("Logged out").Send(w)
}

// mutated logs a successful write and sends the entity back.
func (s *Server) mutated(w http.ResponseWriter, r *http.Request, status int, resource, op, id string, data any) {
	s.structured.LogMutation(r.Context(), resource, op, id, userFrom(r.Context()).ID)
	resp := respond().Status(status)
	if data != nil {
		resp.Data(data)
	} else {
		resp.Message(resource + " deleted")
	}
	resp.Send(w)
}

// Transactions

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := core.TransactionFilter{
		Month:    q.Get("month"),
		Type:     core.TransactionType(q.Get("type")),
		Category: q.Get("category"),
	}
	items, err := s.store.ListTransactions(userFrom(r.Context()).ID, f)
	if err != nil {
		s.fail(w, r, err, "Transaction")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.TransactionPayload](w, r)
	if err == nil {
		var t core.Transaction
		if t, err = s.store.CreateTransaction(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Transaction", log.OpCreate, t.ID, t)
			return
		}
	}
	s.fail(w, r, err, "Transaction")
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.TransactionPatch](w, r)
	if err == nil {
		var t core.Transaction
		if t, err = s.store.UpdateTransaction(userFrom(r.Context()).ID, idParam(r), p); err == nil {
			s.mutated(w, r, http.StatusOK, "Transaction", log.OpUpdate, t.ID, t)
			return
		}
	}
	s.fail(w, r, err, "Transaction")
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteTransaction(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Transaction")
		return
	}
	s.mutated(w, r, http.StatusOK, "Transaction", log.OpDelete, id, nil)
}

// Budgets

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListBudgets(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Budget")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.BudgetPayload](w, r)
	if err == nil {
		var b core.Budget
		if b, err = s.store.CreateBudget(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Budget", log.OpCreate, b.ID, b)
			return
		}
	}
	s.fail(w, r, err, "Budget")
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.BudgetPatch](w, r)
	if err == nil {
		var b core.Budget
		if b, err = s.store.UpdateBudget(userFrom(r.Context()).ID, idParam(r), p); err == nil {
			s.mutated(w, r, http.StatusOK, "Budget", log.OpUpdate, b.ID, b)
			return
		}
	}
	s.fail(w, r, err, "Budget")
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteBudget(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Budget")
		return
	}
	s.mutated(w, r, http.StatusOK, "Budget", log.OpDelete, id, nil)
}

// Goals

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListGoals(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Goal")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.GoalPayload](w, r)
	if err == nil {
		var g core.Goal
		if g, err = s.store.CreateGoal(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Goal", log.OpCreate, g.ID, g)
			return
		}
	}
	s.fail(w, r, err, "Goal")
}

func (s *Server) handleSaveGoal(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.SavePayload](w, r)
	if err == nil {
		var g core.Goal
		if g, err = s.store.SaveToGoal(userFrom(r.Context()).ID, idParam(r), p.Amount); err == nil {
			s.mutated(w, r, http.StatusOK, "Goal", log.OpSave, g.ID, g)
			return
		}
	}
	s.fail(w, r, err, "Goal")
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteGoal(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Goal")
		return
	}
	s.mutated(w, r, http.StatusOK, "Goal", log.OpDelete, id, nil)
}

// Bills

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListBills(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Bill")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.BillPayload](w, r)
	if err == nil {
		var b core.Bill
		if b, err = s.store.CreateBill(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Bill", log.OpCreate, b.ID, b)
			return
		}
	}
	s.fail(w, r, err, "Bill")
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.PayBill(userFrom(r.Context()).ID, idParam(r))
	if err != nil {
		s.fail(w, r, err, "Bill")
		return
	}
	s.mutated(w, r, http.StatusOK, "Bill", log.OpPay, b.ID, b)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteBill(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Bill")
		return
	}
	s.mutated(w, r, http.StatusOK, "Bill", log.OpDelete, id, nil)
}

// Debts

func (s *Server) handleListDebts(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListDebts(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Debt")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateDebt(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.DebtPayload](w, r)
	if err == nil {
		var d core.Debt
		if d, err = s.store.CreateDebt(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Debt", log.OpCreate, d.ID, d)
			return
		}
	}
	s.fail(w, r, err, "Debt")
}

func (s *Server) handleUpdateDebt(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.DebtPatch](w, r)
	if err == nil {
		var d core.Debt
		if d, err = s.store.UpdateDebt(userFrom(r.Context()).ID, idParam(r), p); err == nil {
			s.mutated(w, r, http.StatusOK, "Debt", log.OpUpdate, d.ID, d)
			return
		}
	}
	s.fail(w, r, err, "Debt")
}

func (s *Server) handleDeleteDebt(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteDebt(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Debt")
		return
	}
	s.mutated(w, r, http.StatusOK, "Debt", log.OpDelete, id, nil)
}

// Investments

func (s *Server) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListInvestments(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Investment")
		return
	}
	respond().Data(nonNil(items)).Send(w)
}

func (s *Server) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.InvestmentPayload](w, r)
	if err == nil {
		var inv core.Investment
		if inv, err = s.store.CreateInvestment(userFrom(r.Context()).ID, p); err == nil {
			s.mutated(w, r, http.StatusCreated, "Investment", log.OpCreate, inv.ID, inv)
			return
		}
	}
	s.fail(w, r, err, "Investment")
}

func (s *Server) handleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody[core.InvestmentPatch](w, r)
	if err == nil {
		var inv core.Investment
		if inv, err = s.store.UpdateInvestment(userFrom(r.Context()).ID, idParam(r), p); err == nil {
			s.mutated(w, r, http.StatusOK, "Investment", log.OpUpdate, inv.ID, inv)
			return
		}
	}
	s.fail(w, r, err, "Investment")
}

func (s *Server) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := s.store.DeleteInvestment(userFrom(r.Context()).ID, id); err != nil {
		s.fail(w, r, err, "Investment")
		return
	}
	s.mutated(w, r, http.StatusOK, "Investment", log.OpDelete, id, nil)
}

// Analytics

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Dashboard(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Dashboard")
		return
	}
	respond().Data(snap).Send(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.store.Summary(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Summary")
		return
	}
	respond().Data(sum).Send(w)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	points, err := s.store.Monthly(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Report")
		return
	}
	respond().Data(nonNil(points)).Send(w)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.Categories(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Report")
		return
	}
	respond().Data(nonNil(cats)).Send(w)
}

func (s *Server) handleYearly(w http.ResponseWriter, r *http.Request) {
	points, err := s.store.Yearly(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err, "Report")
		return
	}
	respond().Data(nonNil(points)).Send(w)
}

// nonNil makes empty collections encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
