package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/expense/service"
	"farmdesk/pkg/record"
)

const expenseTable = "expense_c"

type expenseSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewExpenseService(client record.Client, log *zap.SugaredLogger) service.ExpenseService {
	return &expenseSvc{client: client, log: log}
}

func expenseFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.F("category_c"),
		record.F("amount_c"),
		record.F("date_c"),
		record.F("description_c"),
		record.F("payment_method_c"),
		record.Ref("farm_id_c"),
	}
}

func mapExpense(r record.Record) entities.Expense {
	desc := record.Str(r, "description_c")
	if desc == "" {
		desc = record.Str(r, "Name")
	}
	return entities.Expense{
		ID:            record.Int(r, "Id"),
		FarmID:        record.ReferenceID(r["farm_id_c"]),
		Category:      record.Str(r, "category_c"),
		Amount:        record.Num(r, "amount_c"),
		Date:          record.Str(r, "date_c"),
		Description:   desc,
		PaymentMethod: record.Str(r, "payment_method_c"),
	}
}

func (s *expenseSvc) fetch(where []record.Where, op string) []entities.Expense {
	resp, err := s.client.FetchRecords(expenseTable, record.Params{
		Fields:  expenseFields(),
		Where:   where,
		OrderBy: []record.OrderBy{{FieldName: "date_c", SortType: "DESC"}},
	})
	if err != nil {
		s.log.Errorw(op, "err", err)
		return []entities.Expense{}
	}
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Expense{}
	}
	out := make([]entities.Expense, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapExpense(r))
	}
	return out
}

func (s *expenseSvc) GetAll() []entities.Expense {
	return s.fetch(nil, "fetch expenses")
}

func (s *expenseSvc) GetByFarmID(farmID string) []entities.Expense {
	n, err := record.ParseID(farmID)
	if err != nil {
		s.log.Errorw("fetch expenses by farm", "farmId", farmID, "err", err)
		return []entities.Expense{}
	}
	return s.fetch([]record.Where{
		{FieldName: "farm_id_c", Operator: record.OpEqualTo, Values: []any{n}},
	}, "fetch expenses by farm")
}

func (s *expenseSvc) GetMonthlyTotal(farmID string, month, year int) float64 {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	end := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)

	where := []record.Where{
		{FieldName: "date_c", Operator: record.OpGreaterThanOrEqualTo, Values: []any{start}},
		{FieldName: "date_c", Operator: record.OpLessThanOrEqualTo, Values: []any{end}},
	}
	if farmID != "" {
		n, err := record.ParseID(farmID)
		if err != nil {
			s.log.Errorw("monthly expense total", "farmId", farmID, "err", err)
			return 0
		}
		where = append(where, record.Where{FieldName: "farm_id_c", Operator: record.OpEqualTo, Values: []any{n}})
	}

	resp, err := s.client.FetchRecords(expenseTable, record.Params{
		Fields: []record.Field{record.F("amount_c")},
		Where:  where,
	})
	if err != nil {
		s.log.Errorw("monthly expense total", "err", err)
		return 0
	}
	if !resp.Success {
		s.log.Errorw("monthly expense total", "message", resp.Message)
		return 0
	}
	total := 0.0
	for _, r := range resp.Data {
		total += record.Num(r, "amount_c")
	}
	return total
}

func (s *expenseSvc) GetByID(id string) (*entities.Expense, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(expenseTable, n, record.Params{Fields: expenseFields()})
	if err != nil {
		s.log.Errorw("fetch expense", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch expense", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	e := mapExpense(resp.Data)
	return &e, nil
}

func (s *expenseSvc) payload(in entities.ExpenseInput) (record.Record, error) {
	farmID, err := record.ParseID(in.FarmID)
	if err != nil {
		return nil, err
	}
	amount, err := record.ParseNumber(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	return record.Record{
		"Name":             in.Description,
		"farm_id_c":        farmID,
		"category_c":       in.Category,
		"amount_c":         amount,
		"date_c":           in.Date,
		"description_c":    in.Description,
		"payment_method_c": in.PaymentMethod,
	}, nil
}

func (s *expenseSvc) Create(in entities.ExpenseInput) (*entities.Expense, error) {
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.CreateRecord(expenseTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("create expense", "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "create expense")
}

func (s *expenseSvc) Update(id string, in entities.ExpenseInput) (*entities.Expense, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, err
	}
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	rec["Id"] = n
	resp, err := s.client.UpdateRecord(expenseTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("update expense", "id", id, "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "update expense")
}

func (s *expenseSvc) Delete(id string) (bool, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return false, err
	}
	resp, err := s.client.DeleteRecord(expenseTable, []int{n})
	if err != nil {
		s.log.Errorw("delete expense", "id", id, "err", err)
		return false, err
	}
	if !resp.Success {
		s.log.Errorw("delete expense", "id", id, "message", resp.Message)
		return false, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to delete expense"
		}
		s.log.Errorw("delete expense", "id", id, "message", msg)
		return false, errors.New(msg)
	}
	return true, nil
}

func (s *expenseSvc) firstResult(resp *record.Response, farmID, op string) (*entities.Expense, error) {
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return nil, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to " + op
		}
		s.log.Errorw(op, "message", msg)
		return nil, errors.New(msg)
	}
	if len(resp.Results) == 0 {
		return nil, errors.New("unexpected response format")
	}
	e := mapExpense(resp.Results[0].Data)
	if e.FarmID == "" {
		e.FarmID = farmID
	}
	return &e, nil
}
