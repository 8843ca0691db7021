package serviceImp

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"farmdesk/entities"
	"farmdesk/pkg/record"
	"farmdesk/pkg/task/service"
)

const taskTable = "task_c"

type taskSvc struct {
	client record.Client
	log    *zap.SugaredLogger
}

func NewTaskService(client record.Client, log *zap.SugaredLogger) service.TaskService {
	return &taskSvc{client: client, log: log}
}

func taskFields() []record.Field {
	return []record.Field{
		record.F("Id"),
		record.F("Name"),
		record.F("title_c"),
		record.F("type_c"),
		record.F("due_date_c"),
		record.F("priority_c"),
		record.F("completed_c"),
		record.F("recurring_c"),
		record.F("notes_c"),
		record.Ref("farm_id_c"),
		record.Ref("crop_id_c"),
	}
}

func mapTask(r record.Record) entities.Task {
	title := record.Str(r, "title_c")
	if title == "" {
		title = record.Str(r, "Name")
	}
	return entities.Task{
		ID:        record.Int(r, "Id"),
		FarmID:    record.ReferenceID(r["farm_id_c"]),
		CropID:    record.ReferenceID(r["crop_id_c"]),
		Title:     title,
		Type:      record.Str(r, "type_c"),
		DueDate:   record.Str(r, "due_date_c"),
		Priority:  record.Str(r, "priority_c"),
		Completed: record.Bool(r, "completed_c"),
		Recurring: record.Bool(r, "recurring_c"),
		Notes:     record.Str(r, "notes_c"),
	}
}

func (s *taskSvc) fetch(p record.Params, op string) []entities.Task {
	p.Fields = taskFields()
	if len(p.OrderBy) == 0 {
		p.OrderBy = []record.OrderBy{{FieldName: "due_date_c", SortType: "ASC"}}
	}
	resp, err := s.client.FetchRecords(taskTable, p)
	if err != nil {
		s.log.Errorw(op, "err", err)
		return []entities.Task{}
	}
	if !resp.Success {
		s.log.Errorw(op, "message", resp.Message)
		return []entities.Task{}
	}
	out := make([]entities.Task, 0, len(resp.Data))
	for _, r := range resp.Data {
		out = append(out, mapTask(r))
	}
	return out
}

func (s *taskSvc) GetAll() []entities.Task {
	return s.fetch(record.Params{}, "fetch tasks")
}

func (s *taskSvc) GetByFarmID(farmID string) []entities.Task {
	n, err := record.ParseID(farmID)
	if err != nil {
		s.log.Errorw("fetch tasks by farm", "farmId", farmID, "err", err)
		return []entities.Task{}
	}
	return s.fetch(record.Params{
		Where: []record.Where{
			{FieldName: "farm_id_c", Operator: record.OpEqualTo, Values: []any{n}},
		},
	}, "fetch tasks by farm")
}

func (s *taskSvc) GetUpcoming(limit int) []entities.Task {
	if limit <= 0 {
		limit = 5
	}
	today := time.Now().Format("2006-01-02")
	return s.fetch(record.Params{
		Where: []record.Where{
			{FieldName: "completed_c", Operator: record.OpEqualTo, Values: []any{false}},
			{FieldName: "due_date_c", Operator: record.OpGreaterThanOrEqualTo, Values: []any{today}},
		},
		PagingInfo: &record.PagingInfo{Limit: limit, Offset: 0},
	}, "fetch upcoming tasks")
}

func (s *taskSvc) GetByID(id string) (*entities.Task, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, service.ErrNotFound
	}
	resp, err := s.client.GetRecordByID(taskTable, n, record.Params{Fields: taskFields()})
	if err != nil {
		s.log.Errorw("fetch task", "id", id, "err", err)
		return nil, service.ErrNotFound
	}
	if !resp.Success {
		s.log.Errorw("fetch task", "id", id, "message", resp.Message)
		return nil, service.ErrNotFound
	}
	t := mapTask(resp.Data)
	return &t, nil
}

func (s *taskSvc) Create(in entities.TaskInput) (*entities.Task, error) {
	farmID, err := record.ParseID(in.FarmID)
	if err != nil {
		return nil, err
	}
	rec := record.Record{
		"Name":        in.Title,
		"farm_id_c":   farmID,
		"title_c":     in.Title,
		"type_c":      in.Type,
		"due_date_c":  in.DueDate,
		"priority_c":  in.Priority,
		"completed_c": false,
		"recurring_c": in.Recurring != nil && *in.Recurring,
		"notes_c":     "",
	}
	if in.CropID != "" {
		cropID, err := record.ParseID(in.CropID)
		if err != nil {
			return nil, err
		}
		rec["crop_id_c"] = cropID
	}
	if in.Notes != nil {
		rec["notes_c"] = *in.Notes
	}
	resp, err := s.client.CreateRecord(taskTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("create task", "err", err)
		return nil, err
	}
	return s.firstResult(resp, in, "create task")
}

// Update writes only the fields present in the input; everything else
// keeps its stored value.
func (s *taskSvc) Update(id string, in entities.TaskInput) (*entities.Task, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return nil, err
	}
	rec := record.Record{"Id": n}
	if in.Title != "" {
		rec["Name"] = in.Title
		rec["title_c"] = in.Title
	}
	if in.FarmID != "" {
		farmID, err := record.ParseID(in.FarmID)
		if err != nil {
			return nil, err
		}
		rec["farm_id_c"] = farmID
	}
	if in.CropID != "" {
		cropID, err := record.ParseID(in.CropID)
		if err != nil {
			return nil, err
		}
		rec["crop_id_c"] = cropID
	}
	if in.Type != "" {
		rec["type_c"] = in.Type
	}
	if in.DueDate != "" {
		rec["due_date_c"] = in.DueDate
	}
	if in.Priority != "" {
		rec["priority_c"] = in.Priority
	}
	if in.Completed != nil {
		rec["completed_c"] = *in.Completed
	}
	if in.Recurring != nil {
		rec["recurring_c"] = *in.Recurring
	}
	if in.Notes != nil {
		rec["notes_c"] = *in.Notes
	}
	resp, err := s.client.UpdateRecord(taskTable, []record.Record{rec})
	if err != nil {
		s.log.Errorw("update task", "id", id, "err", err)
		return nil, err
	}
	return s.firstResult(resp, in, "update task")
}

func (s *taskSvc) ToggleComplete(id string) (*entities.Task, error) {
	t, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	flipped := !t.Completed
	return s.Update(id, entities.TaskInput{Completed: &flipped})
}

func (s *taskSvc) Delete(id string) (bool, error) {
	n, err := record.ParseID(id)
	if err != nil {
		return false, err
	}
	resp, err := s.client.DeleteRecord(taskTable, []int{n})
	if err != nil {
		s.log.Errorw("delete task", "id", id, "err", err)
		return false, err
	}
	if !resp.Success {
		s.log.Errorw("delete task", "id", id, "message", resp.Message)
		return false, errors.New(resp.Message)
	}
	if msg, failed := resp.FirstFailure(); failed {
		if msg == "" {
			msg = "failed to delete task"
		}
		s.log.Errorw("delete task", "id", id, "message", msg)
		return false, errors.New(msg)
	}
	return true, nil
}

func (s *taskSvc) firstResult(resp *record.Response, in entities.TaskInput, op string) (*entities.Task, error) {
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
	t := mapTask(resp.Results[0].Data)
	if t.FarmID == "" {
		t.FarmID = in.FarmID
	}
	if t.CropID == "" {
		t.CropID = in.CropID
	}
	return &t, nil
}
