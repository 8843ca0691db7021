package serviceImp

import (
	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/income/service"
	"farmdesk/pkg/record"
)

const incomeTable = "income_c"

type incomeSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewIncomeService(client record.Client, log *zap.SugaredLogger) service.IncomeService {
	return &incomeSvc{client: client, log: log}
}

func incomeFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.F("Tags"),
		record.Ref("farm_id_c"),
		record.F("amount_c"),
		record.F("date_c"),
	}
}

func mapIncome(r record.Record) entities.Income {
	return entities.Income{
		ID:     record.Int(r, "Id"),
		Name:   record.Str(r, "Name"),
		Tags:   record.Str(r, "Tags"),
		FarmID: record.ReferenceID(r["farm_id_c"]),
		Amount: record.Num(r, "amount_c"),
		Date:   record.Str(r, "date_c"),
	}
}

func (s *incomeSvc) fetch(where []record.Where, op string) []entities.Income {
	resp, err := s.client.FetchRecords(incomeTable, record.Params{
		Fields:     incomeFields(),
		Where:      where,
		OrderBy:    []record.OrderBy{{FieldName: "date_c", SortType: "DESC"}},
		PagingInfo: &record.PagingInfo{Limit: 100, Offset: 0},
	})
	if err != nil {
		s.log.Errorw(op, "err", err)
		return []entities.Income{}
	}
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Income{}
	}
	out := make([]entities.Income, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapIncome(r))
	}
	return out
}

func (s *incomeSvc) GetAll() []entities.Income {
	return s.fetch(nil, "fetch income records")
}

func (s *incomeSvc) GetByFarmID(farmID string) []entities.Income {
	n, err := record.ParseID(farmID)
	if err != nil {
		s.log.Errorw("fetch income by farm", "farmId", farmID, "err", err)
		return []entities.Income{}
	}
	return s.fetch([]record.Where{
		{FieldName: "farm_id_c", Operator: record.OpEqualTo, Values: []any{n}},
	}, "fetch income by farm")
}

func (s *incomeSvc) GetByID(id string) (*entities.Income, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(incomeTable, n, record.Params{Fields: incomeFields()})
	if err != nil {
		s.log.Errorw("fetch income", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch income", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	inc := mapIncome(resp.Data)
	return &inc, nil
}

// only updateable fields go over the wire
func incomePayload(in entities.Income, withID bool) record.Record {
	rec := record.Record{
		"Name":     in.Name,
		"Tags":     in.Tags,
		"amount_c": in.Amount,
		"date_c":   in.Date,
	}
	if n, err := record.ParseID(in.FarmID); err == nil {
		rec["farm_id_c"] = n
	}
	if withID {
		rec["Id"] = in.ID
	}
	return rec
}

func (s *incomeSvc) Create(items []entities.Income) []entities.Income {
	recs := make([]record.Record, 0, len(items))
	for _, in := range items {
		recs = append(recs, incomePayload(in, false))
	}
	resp, err := s.client.CreateRecord(incomeTable, recs)
	if err != nil {
		s.log.Errorw("create income records", "err", err)
		return []entities.Income{}
	}
	return s.successful(resp, "create income records")
}

func (s *incomeSvc) Update(items []entities.Income) []entities.Income {
	recs := make([]record.Record, 0, len(items))
	for _, in := range items {
		recs = append(recs, incomePayload(in, true))
	}
	resp, err := s.client.UpdateRecord(incomeTable, recs)
	if err != nil {
		s.log.Errorw("update income records", "err", err)
		return []entities.Income{}
	}
	return s.successful(resp, "update income records")
}

func (s *incomeSvc) Delete(ids []string) bool {
	nums := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := record.ParseID(id)
		if err != nil {
			s.log.Errorw("delete income records", "id", id, "err", err)
			return false
		}
		nums = append(nums, n)
	}
	resp, err := s.client.DeleteRecord(incomeTable, nums)
	if err != nil {
		s.log.Errorw("delete income records", "err", err)
		return false
	}
	if !resp.Success {
		s.log.Errorw("delete income records", "message", resp.Message)
		return false
	}
	failed := 0
	for _, r := range resp.Results {
		if !r.Success {
			failed++
			if r.Message != "" {
				s.log.Errorw("delete income record", "message", r.Message)
			}
		}
	}
	return failed == 0
}

func (s *incomeSvc) successful(resp *record.Response, op string) []entities.Income {
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Income{}
	}
	out := make([]entities.Income, 0, len(resp.Results))
	for _, r := range resp.Results {
		if !r.Success {
			if r.Message != "" {
				s.log.Errorw(op, "message", r.Message)
			}
			continue
		}
		out = append(out, mapIncome(r.Data))
	}
	return out
}
