package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"gopkg.in/guregu/null.v3"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/repo"
)

const statsCacheKey = "transaction-stats"

type Transaction struct {
	TransactionRepo *repo.Transaction

	cache *cache.Cache
}

func NewTransaction(transactionRepo *repo.Transaction) *Transaction {
	return &Transaction{
		TransactionRepo: transactionRepo,
		cache:           cache.New(time.Minute, 10*time.Minute),
	}
}

func (s *Transaction) GetTransactions(ctx context.Context, filter repo.TransactionFilter) ([]*model.Transaction, error) {
	return s.TransactionRepo.GetTransactions(ctx, filter)
}

func (s *Transaction) GetTransactionById(ctx context.Context, transactionId int64) (*model.Transaction, error) {
	return s.TransactionRepo.GetTransactionById(ctx, transactionId)
}

func (s *Transaction) CreateTransaction(ctx context.Context, request *types.CreateTransactionRequest) (*model.Transaction, error) {
	transaction, err := transactionFromRequest(request)
	if err != nil {
		return nil, err
	}
	if err := s.TransactionRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	s.cache.Delete(statsCacheKey)
	return transaction, nil
}

func (s *Transaction) UpdateTransaction(ctx context.Context, transactionId int64, request *types.UpdateTransactionRequest) (*model.Transaction, error) {
	if _, err := s.TransactionRepo.GetTransactionById(ctx, transactionId); err != nil {
		return nil, err
	}

	transaction, err := transactionFromRequest(&request.CreateTransactionRequest)
	if err != nil {
		return nil, err
	}
	transaction.TransactionID = transactionId

	if err := s.TransactionRepo.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	s.cache.Delete(statsCacheKey)
	return transaction, nil
}

func (s *Transaction) DeleteTransaction(ctx context.Context, transactionId int64) error {
	if _, err := s.TransactionRepo.GetTransactionById(ctx, transactionId); err != nil {
		return err
	}
	if err := s.TransactionRepo.DeleteTransaction(ctx, transactionId); err != nil {
		return err
	}
	s.cache.Delete(statsCacheKey)
	return nil
}

// GetStats aggregates credit/debit totals and per-status counts. The result
// is cached briefly: the admin dashboard polls it on every page view.
func (s *Transaction) GetStats(ctx context.Context) (*types.TransactionStats, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*types.TransactionStats), nil
	}

	sums, err := s.TransactionRepo.SumByNatureAndStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &types.TransactionStats{}
	for _, sum := range sums {
		stats.Total += sum.Count
		switch sum.Status {
		case model.TransactionStatusPending:
			stats.PendingCount += sum.Count
		case model.TransactionStatusVerified:
			stats.VerifiedCount += sum.Count
		case model.TransactionStatusRejected:
			stats.RejectedCount += sum.Count
		}

		// only verified money moves the balance
		if sum.Status != model.TransactionStatusVerified {
			continue
		}
		switch sum.TransactionNature {
		case model.TransactionNatureCredit:
			stats.TotalCredit += sum.Total
		case model.TransactionNatureDebit:
			stats.TotalDebit += sum.Total
		}
	}
	stats.NetBalance = stats.TotalCredit - stats.TotalDebit

	s.cache.SetDefault(statsCacheKey, stats)
	return stats, nil
}

// GetCalendarEntries returns the transactions within [startDate, endDate]
// shaped as calendar donation entries. endDate is inclusive up to end of day.
func (s *Transaction) GetCalendarEntries(ctx context.Context, startDate, endDate string) ([]*types.DonationEntry, error) {
	start, err := time.Parse(constant.IsoDateLayout, startDate)
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("startDate must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(constant.IsoDateLayout, endDate)
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("endDate must be a YYYY-MM-DD date")
	}
	end = end.Add(time.Hour*24 - time.Nanosecond)

	transactions, err := s.TransactionRepo.GetTransactionsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]*types.DonationEntry, 0, len(transactions))
	for _, transaction := range transactions {
		entry := &types.DonationEntry{}
		if err := copier.Copy(entry, transaction); err != nil {
			return nil, err
		}
		entry.ID = transaction.TransactionID
		entry.Date = transaction.Date.Format(constant.IsoDateLayout)
		entry.Description = transaction.Description.ValueOrZero()
		entry.CustomMoneyFor = transaction.CustomMoneyFor.ValueOrZero()
		entry.UserName = transaction.Name
		if entry.UserName == "" {
			entry.UserName = "Unknown User"
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func transactionFromRequest(request *types.CreateTransactionRequest) (*model.Transaction, error) {
	date, err := parseTransactionDate(request.Date)
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("date must be a YYYY-MM-DD date or an RFC 3339 timestamp")
	}

	transaction := &model.Transaction{}
	if err := copier.Copy(transaction, request); err != nil {
		return nil, err
	}
	transaction.TransactionID = 0
	transaction.Date = date
	transaction.Description = null.NewString(request.Description, request.Description != "")
	transaction.CustomMoneyFor = null.NewString(request.CustomMoneyFor, request.CustomMoneyFor != "")

	// the request validator accepts these case-insensitively; storage is
	// uppercase throughout
	transaction.TransactionNature = strings.ToUpper(transaction.TransactionNature)
	transaction.Status = strings.ToUpper(transaction.Status)
	transaction.UserType = strings.ToUpper(transaction.UserType)
	if transaction.Status == "" {
		transaction.Status = model.TransactionStatusPending
	}
	if transaction.UserType == "" {
		transaction.UserType = "INDIVIDUAL"
	}
	return transaction, nil
}

func parseTransactionDate(s string) (time.Time, error) {
	if t, err := time.Parse(constant.IsoDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
