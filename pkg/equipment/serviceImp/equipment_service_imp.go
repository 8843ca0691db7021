package serviceImp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/equipment/service"
	"farmdesk/pkg/record"
)

const equipmentTable = "equipments_c"

// the equipment table caps list reads rather than paging through
const listLimit = 1000

type equipmentSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewEquipmentService(client record.Client, log *zap.SugaredLogger) service.EquipmentService {
	return &equipmentSvc{client: client, log: log}
}

func equipmentFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.Ref("farm_c"),
		record.F("equipment_type_c"),
		record.F("manufacturer_c"),
		record.F("model_c"),
		record.F("purchase_date_c"),
		record.F("purchase_price_c"),
		record.F("condition_c"),
		record.F("notes_c"),
	}
}

func mapEquipment(r record.Record) entities.Equipment {
	return entities.Equipment{
		ID:            record.Int(r, "Id"),
		FarmID:        record.ReferenceID(r["farm_c"]),
		Name:          record.Str(r, "Name"),
		Type:          record.Str(r, "equipment_type_c"),
		Manufacturer:  record.Str(r, "manufacturer_c"),
		Model:         record.Str(r, "model_c"),
		PurchaseDate:  record.Str(r, "purchase_date_c"),
		PurchasePrice: record.Num(r, "purchase_price_c"),
		Condition:     record.Str(r, "condition_c"),
		Notes:         record.Str(r, "notes_c"),
	}
}

func (s *equipmentSvc) fetch(where []record.Where, op string) []entities.Equipment {
	resp, err := s.client.FetchRecords(equipmentTable, record.Params{
		Fields:     equipmentFields(),
		Where:      where,
		OrderBy:    []record.OrderBy{{FieldName: "purchase_date_c", SortType: "DESC"}},
		PagingInfo: &record.PagingInfo{Limit: listLimit, Offset: 0},
	})
	if err != nil {
		s.log.Errorw(op, "err", err)
		return []entities.Equipment{}
	}
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Equipment{}
	}
	out := make([]entities.Equipment, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapEquipment(r))
	}
	return out
}

func (s *equipmentSvc) GetAll() []entities.Equipment {
	return s.fetch(nil, "fetch equipment")
}

func (s *equipmentSvc) GetByFarmID(farmID string) []entities.Equipment {
	n, err := record.ParseID(farmID)
	if err != nil {
		s.log.Errorw("fetch equipment by farm", "farmId", farmID, "err", err)
		return []entities.Equipment{}
	}
	return s.fetch([]record.Where{
		{FieldName: "farm_c", Operator: record.OpEqualTo, Values: []any{n}},
	}, "fetch equipment by farm")
}

func (s *equipmentSvc) GetTotalValue(farmID string) float64 {
	p := record.Params{
		Fields:     []record.Field{record.F("Id"), record.F("purchase_price_c")},
		PagingInfo: &record.PagingInfo{Limit: listLimit, Offset: 0},
	}
	if farmID != "" {
		n, err := record.ParseID(farmID)
		if err != nil {
			s.log.Errorw("equipment total value", "farmId", farmID, "err", err)
			return 0
		}
		p.Where = []record.Where{{FieldName: "farm_c", Operator: record.OpEqualTo, Values: []any{n}}}
	}
	resp, err := s.client.FetchRecords(equipmentTable, p)
	if err != nil {
		s.log.Errorw("equipment total value", "err", err)
		return 0
	}
	if !resp.Success {
		s.log.Errorw("equipment total value", "message", resp.Message)
		return 0
	}
	total := 0.0
	for _, r := range resp.Data {
		total += record.Num(r, "purchase_price_c")
	}
	return total
}

func (s *equipmentSvc) GetByID(id string) (*entities.Equipment, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(equipmentTable, n, record.Params{Fields: equipmentFields()})
	if err != nil {
		s.log.Errorw("fetch equipment", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch equipment", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	e := mapEquipment(resp.Data)
	return &e, nil
}

// payload includes the optional descriptive fields only when they carry
// a value, leaving stored values untouched on update.
func (s *equipmentSvc) payload(in entities.EquipmentInput) (record.Record, error) {
	farmID, err := record.ParseID(in.FarmID)
	if err != nil {
		return nil, err
	}
	price, err := record.ParseNumber(in.PurchasePrice)
	if err != nil {
		return nil, fmt.Errorf("purchasePrice: %w", err)
	}
	rec := record.Record{
		"Name":             in.Name,
		"farm_c":           farmID,
		"equipment_type_c": in.Type,
		"purchase_date_c":  in.PurchaseDate,
		"purchase_price_c": price,
		"condition_c":      in.Condition,
	}
	if in.Manufacturer != "" {
		rec["manufacturer_c"] = in.Manufacturer
	}
	if in.Model != "" {
		rec["model_c"] = in.Model
	}
	if in.Notes != "" {
		rec["notes_c"] = in.Notes
	}
	return rec, nil
}

func (s *equipmentSvc) Create(in entities.EquipmentInput) (*entities.Equipment, error) {
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.CreateRecord(equipmentTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("create equipment", "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "create equipment")
}

func (s *equipmentSvc) Update(id string, in entities.EquipmentInput) (*entities.Equipment, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, err
	}
	rec, err := s.payload(in)
	if err != nil {
		return nil, err
	}
	rec["Id"] = n
	resp, err := s.client.UpdateRecord(equipmentTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("update equipment", "id", id, "err", err)
		return nil, err
	}
	return s.firstResult(resp, in.FarmID, "update equipment")
}

func (s *equipmentSvc) Delete(id string) (bool, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return false, err
	}
	resp, err := s.client.DeleteRecord(equipmentTable, []int{n})
	if err != nil {
		s.log.Errorw("delete equipment", "id", id, "err", err)
		return false, err
	}
	if !resp.Success {
		s.log.Errorw("delete equipment", "id", id, "message", resp.Message)
		return false, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to delete equipment"
		}
		s.log.Errorw("delete equipment", "id", id, "message", msg)
		return false, errors.New(msg)
	}
	return true, nil
}

func (s *equipmentSvc) firstResult(resp *record.Response, farmID, op string) (*entities.Equipment, error) {
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
	e := mapEquipment(resp.Results[0].Data)
	if e.FarmID == "" {
		e.FarmID = farmID
	}
	return &e, nil
}
