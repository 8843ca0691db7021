// pkg/record/remote_client.go

package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type remote struct {
	endpoint  string
	projectID string
	publicKey string
	httpc     *http.Client
}

// NewRemote talks to the hosted table platform. endpoint is the API
// base; project id and public key ride on every request.
func NewRemote(endpoint, projectID, publicKey string) Client {
	return &remote{
		endpoint:  strings.TrimRight(endpoint, "/"),
		projectID: projectID,
		publicKey: publicKey,
		httpc:     &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *remote) post(path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", c.endpoint+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.publicKey)
	req.Header.Set("X-Project-Id", c.projectID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	return nil
}

func (c *remote) FetchRecords(table string, p Params) (*Response, error) {
	var out Response
	if err := c.post("/v1/tables/"+table+"/query", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *remote) GetRecordByID(table string, id int, p Params) (*SingleResponse, error) {
	var out SingleResponse
	if err := c.post(fmt.Sprintf("/v1/tables/%s/records/%d", table, id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *remote) CreateRecord(table string, records []Record) (*Response, error) {
	var out Response
	body := map[string]any{"records": records}
	if err := c.post("/v1/tables/"+table+"/records/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *remote) UpdateRecord(table string, records []Record) (*Response, error) {
	var out Response
	body := map[string]any{"records": records}
	if err := c.post("/v1/tables/"+table+"/records/update", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *remote) DeleteRecord(table string, ids []int) (*Response, error) {
	var out Response
	body := map[string]any{"RecordIds": ids}
	if err := c.post("/v1/tables/"+table+"/records/delete", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
