package serviceImp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/farm/service"
	"farmdesk/pkg/record"
)

const farmTable = "farm_c"

type farmSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewFarmService(client record.Client, log *zap.SugaredLogger) service.FarmService {
	return &farmSvc{client: client, log: log}
}

func farmFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.F("name_c"),
		record.F("size_c"),
		record.F("unit_c"),
		record.F("location_c"),
		record.F("soil_type_c"),
		record.F("current_amount_c"),
		record.F("CreatedOn"),
	}
}

func mapFarm(r record.Record) entities.Farm {
	name := record.Str(r, "name_c")
	if name == "" {
		name = record.Str(r, "Name")
	}
	return entities.Farm{
		ID:            record.Int(r, "Id"),
		Name:          name,
		Size:          record.Num(r, "size_c"),
		Unit:          record.Str(r, "unit_c"),
		Location:      record.Str(r, "location_c"),
		SoilType:      record.Str(r, "soil_type_c"),
		CurrentAmount: record.Num(r, "current_amount_c"),
		CreatedAt:     record.Str(r, "CreatedOn"),
	}
}

func (s *farmSvc) GetAll() []entities.Farm {
	resp, err := s.client.FetchRecords(farmTable, record.Params{
		Fields:  farmFields(),
		OrderBy: []record.OrderBy{{FieldName: "CreatedOn", SortType: "DESC"}},
	})
	if err != nil {
		s.log.Errorw("fetch farms", "err", err)
		return []entities.Farm{}
	}
	if !resp.Success {
		s.log.Errorw("fetch farms", "message", resp.Message)
		return []entities.Farm{}
	}
	out := make([]entities.Farm, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapFarm(r))
	}
	return out
}

func (s *farmSvc) GetByID(id string) (*entities.Farm, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(farmTable, n, record.Params{Fields: farmFields()})
	if err != nil {
		s.log.Errorw("fetch farm", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch farm", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	f := mapFarm(resp.Data)
	return &f, nil
}

func (s *farmSvc) payload(in entities.FarmInput) (record.Record, error) {
	size, err := record.ParseNumber(in.Size)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	return record.Record{
		"Name":             in.Name,
		"name_c":           in.Name,
		"size_c":           size,
		"unit_c":           in.Unit,
		"location_c":       in.Location,
		"soil_type_c":      in.SoilType,
		"current_amount_c": record.ParseNumberOr(in.CurrentAmount, 0),
	}, nil
}

func (s *farmSvc) Create(in entities.FarmInput) (*entities.Farm, error) {
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.CreateRecord(farmTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("create farm", "err", err)
		return nil, err
	}
	return s.firstResult(resp, "create farm")
}

func (s *farmSvc) Update(id string, in entities.FarmInput) (*entities.Farm, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, err
	}
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	rec["Id"] = n
	resp, err := s.client.UpdateRecord(farmTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("update farm", "id", id, "err", err)
		return nil, err
	}
	return s.firstResult(resp, "update farm")
}

func (s *farmSvc) Delete(id string) (bool, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return false, err
	}
	resp, err := s.client.DeleteRecord(farmTable, []int{n})
	if err != nil {
		s.log.Errorw("delete farm", "id", id, "err", err)
		return false, err
	}
	if !resp.Success {
		s.log.Errorw("delete farm", "id", id, "message", resp.Message)
		return false, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to delete farm"
		}
		s.log.Errorw("delete farm", "id", id, "message", msg)
		return false, errors.New(msg)
	}
	return true, nil
}

func (s *farmSvc) firstResult(resp *record.Response, op string) (*entities.Farm, error) {
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
	f := mapFarm(resp.Results[0].Data)
	return &f, nil
}
