package serviceImp

import (
	"errors"

	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/crop/service"
	"farmdesk/pkg/record"
)

const cropTable = "crop_c"

type cropSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewCropService(client record.Client, log *zap.SugaredLogger) service.CropService {
	return &cropSvc{client: client, log: log}
}

func cropFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.F("name_c"),
		record.F("variety_c"),
		record.F("planted_date_c"),
		record.F("expected_harvest_c"),
		record.F("stage_c"),
		record.F("status_c"),
		record.F("notes_c"),
		record.Ref("farm_id_c"),
	}
}

func mapCrop(r record.Record) entities.Crop {
	name := record.Str(r, "name_c")
	if name == "" {
		name = record.Str(r, "Name")
	}
	return entities.Crop{
		ID:              record.Int(r, "Id"),
		FarmID:          record.ReferenceID(r["farm_id_c"]),
		Name:            name,
		Variety:         record.Str(r, "variety_c"),
		PlantedDate:     record.Str(r, "planted_date_c"),
		ExpectedHarvest: record.Str(r, "expected_harvest_c"),
		Stage:           record.Str(r, "stage_c"),
		Status:          record.Str(r, "status_c"),
		Notes:           record.Str(r, "notes_c"),
	}
}

func (s *cropSvc) fetch(where []record.Where, op string) []entities.Crop {
	resp, err := s.client.FetchRecords(cropTable, record.Params{
		Fields:  cropFields(),
		Where:   where,
		OrderBy: []record.OrderBy{{FieldName: "CreatedOn", SortType: "DESC"}},
	})
	if err != nil {
		s.log.Errorw(op, "err", err)
		return []entities.Crop{}
	}
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Crop{}
	}
	out := make([]entities.Crop, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapCrop(r))
	}
	return out
}

func (s *cropSvc) GetAll() []entities.Crop {
	return s.fetch(nil, "fetch crops")
}

func (s *cropSvc) GetByFarmID(farmID string) []entities.Crop {
	n, err := record.ParseID(farmID)
	if err != nil {
		s.log.Errorw("fetch crops by farm", "farmId", farmID, "err", err)
		return []entities.Crop{}
	}
	return s.fetch([]record.Where{
		{FieldName: "farm_id_c", Operator: record.OpEqualTo, Values: []any{n}},
	}, "fetch crops by farm")
}

func (s *cropSvc) GetByID(id string) (*entities.Crop, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(cropTable, n, record.Params{Fields: cropFields()})
	if err != nil {
		s.log.Errorw("fetch crop", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch crop", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	cr := mapCrop(resp.Data)
	return &cr, nil
}

func (s *cropSvc) Create(in entities.CropInput) (*entities.Crop, error) {
	farmID, err := record.ParseID(in.FarmID)
	if err != nil {
		return nil, err
	}
	stage := in.Stage
	if stage == "" {
		stage = "planted"
	}
	status := in.Status
	if status == "" {
		status = "healthy"
	}
	rec := record.Record{
		"Name":               in.Name,
		"farm_id_c":          farmID,
		"name_c":             in.Name,
		"variety_c":          in.Variety,
		"planted_date_c":     in.PlantedDate,
		"expected_harvest_c": in.ExpectedHarvest,
		"stage_c":            stage,
		"status_c":           status,
		"notes_c":            in.Notes,
	}
	resp, err := s.client.CreateRecord(cropTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("create crop", "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "create crop")
}

func (s *cropSvc) Update(id string, in entities.CropInput) (*entities.Crop, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, err
	}
	farmID, err := record.ParseID(in.FarmID)
	if err != nil {
		return nil, err
	}
	rec := record.Record{
		"Id":                 n,
		"Name":               in.Name,
		"farm_id_c":          farmID,
		"name_c":             in.Name,
		"variety_c":          in.Variety,
		"planted_date_c":     in.PlantedDate,
		"expected_harvest_c": in.ExpectedHarvest,
		"stage_c":            in.Stage,
		"status_c":           in.Status,
		"notes_c":            in.Notes,
	}
	resp, err := s.client.UpdateRecord(cropTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("update crop", "id", id, "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "update crop")
}

func (s *cropSvc) Delete(id string) (bool, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return false, err
	}
	resp, err := s.client.DeleteRecord(cropTable, []int{n})
	if err != nil {
		s.log.Errorw("delete crop", "id", id, "err", err)
		return false, err
	}
	if !resp.Success {
		s.log.Errorw("delete crop", "id", id, "message", resp.Message)
		return false, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to delete crop"
		}
		s.log.Errorw("delete crop", "id", id, "message", msg)
		return false, errors.New(msg)
	}
	return true, nil
}

// firstResult maps the write response; when the store echoes the record
// without the reference expanded, the submitted farm id stands in.
func (s *cropSvc) firstResult(resp *record.Response, farmID, op string) (*entities.Crop, error) {
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
	cr := mapCrop(resp.Results[0].Data)
	if cr.FarmID == "" {
		cr.FarmID = farmID
	}
	return &cr, nil
}
