package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"gopkg.in/guregu/null.v3"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/repo"
)

type Expenditure struct {
	ExpenditureRepo *repo.Expenditure
}

func NewExpenditure(expenditureRepo *repo.Expenditure) *Expenditure {
	return &Expenditure{
		ExpenditureRepo: expenditureRepo,
	}
}

func (s *Expenditure) GetExpenditures(ctx context.Context, filter repo.ExpenditureFilter) ([]*model.Expenditure, error) {
	return s.ExpenditureRepo.GetExpenditures(ctx, filter)
}

func (s *Expenditure) GetExpenditureById(ctx context.Context, expenditureId int64) (*model.Expenditure, error) {
	return s.ExpenditureRepo.GetExpenditureById(ctx, expenditureId)
}

func (s *Expenditure) CreateExpenditure(ctx context.Context, request *types.CreateExpenditureRequest) (*model.Expenditure, error) {
	expenditure, err := expenditureFromRequest(request)
	if err != nil {
		return nil, err
	}
	if err := s.ExpenditureRepo.CreateExpenditure(ctx, expenditure); err != nil {
		return nil, err
	}
	return expenditure, nil
}

func (s *Expenditure) UpdateExpenditure(ctx context.Context, expenditureId int64, request *types.UpdateExpenditureRequest) (*model.Expenditure, error) {
	if _, err := s.ExpenditureRepo.GetExpenditureById(ctx, expenditureId); err != nil {
		return nil, err
	}

	expenditure, err := expenditureFromRequest(&request.CreateExpenditureRequest)
	if err != nil {
		return nil, err
	}
	expenditure.ExpenditureID = expenditureId

	if err := s.ExpenditureRepo.UpdateExpenditure(ctx, expenditure); err != nil {
		return nil, err
	}
	return expenditure, nil
}

func (s *Expenditure) DeleteExpenditure(ctx context.Context, expenditureId int64) error {
	if _, err := s.ExpenditureRepo.GetExpenditureById(ctx, expenditureId); err != nil {
		return err
	}
	return s.ExpenditureRepo.DeleteExpenditure(ctx, expenditureId)
}

// MonthlyReport aggregates per-month, per-category totals within the optional
// [start, end] window. Dates are YYYY-MM-DD; empty means unbounded.
func (s *Expenditure) MonthlyReport(ctx context.Context, startDate, endDate string) ([]*types.ExpenditureReport, error) {
	return s.periodReport(ctx, "YYYY-MM", startDate, endDate)
}

// YearlyReport aggregates per-year, per-category totals.
func (s *Expenditure) YearlyReport(ctx context.Context, startDate, endDate string) ([]*types.ExpenditureReport, error) {
	return s.periodReport(ctx, "YYYY", startDate, endDate)
}

func (s *Expenditure) periodReport(ctx context.Context, periodFormat, startDate, endDate string) ([]*types.ExpenditureReport, error) {
	start, end, err := parseReportWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	sums, err := s.ExpenditureRepo.SumByPeriod(ctx, periodFormat, start, end)
	if err != nil {
		return nil, err
	}

	report := make([]*types.ExpenditureReport, 0, len(sums))
	for _, sum := range sums {
		row := &types.ExpenditureReport{}
		if err := copier.Copy(row, sum); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, nil
}

// MemberReport aggregates expenditure totals per member.
func (s *Expenditure) MemberReport(ctx context.Context) ([]*types.MemberReport, error) {
	sums, err := s.ExpenditureRepo.SumByMember(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]*types.MemberReport, 0, len(sums))
	for _, sum := range sums {
		row := &types.MemberReport{}
		if err := copier.Copy(row, sum); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, nil
}

func parseReportWindow(startDate, endDate string) (start, end time.Time, err error) {
	if startDate != "" {
		start, err = time.Parse(constant.IsoDateLayout, startDate)
		if err != nil {
			return start, end, pserr.ErrInvalidReq.Msg("startDate must be a YYYY-MM-DD date")
		}
	}
	if endDate != "" {
		end, err = time.Parse(constant.IsoDateLayout, endDate)
		if err != nil {
			return start, end, pserr.ErrInvalidReq.Msg("endDate must be a YYYY-MM-DD date")
		}
		end = end.Add(time.Hour*24 - time.Nanosecond)
	}
	return start, end, nil
}

func expenditureFromRequest(request *types.CreateExpenditureRequest) (*model.Expenditure, error) {
	date, err := parseTransactionDate(request.Date)
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("date must be a YYYY-MM-DD date or an RFC 3339 timestamp")
	}

	expenditure := &model.Expenditure{}
	if err := copier.Copy(expenditure, request); err != nil {
		return nil, err
	}
	expenditure.ExpenditureID = 0
	expenditure.Date = date
	expenditure.Description = null.NewString(request.Description, request.Description != "")
	expenditure.CustomCategory = null.NewString(request.CustomCategory, request.CustomCategory != "")
	if expenditure.SpentBy == "" {
		expenditure.SpentBy = "Unknown"
	}
	return expenditure, nil
}
