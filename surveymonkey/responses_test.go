package surveymonkey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResponses(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/surveys/101/responses", r.URL.Path)
		w.Write([]byte(`{
			"data": [{"id": "r1", "href": "https://api.surveymonkey.com/v3/surveys/101/responses/r1"}],
			"page": 1, "per_page": 50, "total": 1
		}`))
	}))

	list, err := client.ListResponses(context.Background(), "101", nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "r1", list.Data[0].ID)
}

func TestListResponsesBulkForwardsParams(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/surveys/101/responses/bulk", r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		assert.Equal(t, "2024-01-01T00:00:00", r.URL.Query().Get("start_created_at"))

		w.Write([]byte(`{
			"data": [{
				"id": "r1",
				"response_status": "completed",
				"total_time": 144,
				"pages": [{"id": "p1", "questions": [
					{"id": "q1", "answers": [{"choice_id": "c1"}]}
				]}]
			}],
			"page": 1, "per_page": 50, "total": 1
		}`))
	}))

	params := url.Values{}
	params.Set("status", "completed")
	params.Set("start_created_at", "2024-01-01T00:00:00")

	list, err := client.ListResponsesBulk(context.Background(), "101", params)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	response := list.Data[0]
	assert.Equal(t, "completed", response.ResponseStatus)
	assert.Equal(t, 144, response.TotalTime)
	require.Len(t, response.Pages, 1)

	// Answer payloads pass through unparsed.
	var answers []map[string]string
	require.NoError(t, json.Unmarshal(response.Pages[0].Questions[0].Answers, &answers))
	assert.Equal(t, "c1", answers[0]["choice_id"])
}

func TestGetResponseDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/surveys/101/responses/r1/details", r.URL.Path)
		w.Write([]byte(`{"id": "r1", "collection_mode": "default", "ip_address": "192.0.2.10"}`))
	}))

	response, err := client.GetResponseDetails(context.Background(), "101", "r1")
	require.NoError(t, err)
	assert.Equal(t, "default", response.CollectionMode)
	assert.Equal(t, "192.0.2.10", response.IPAddress)
}

func TestExportResponses(t *testing.T) {
	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var data string
		switch r.URL.Path {
		case "/v3/surveys/101/responses/bulk":
			data = `{"data": [{"id": "a1"}, {"id": "a2"}], "total": 2}`
		case "/v3/surveys/102/responses/bulk":
			data = `{"data": [{"id": "b1"}], "total": 1}`
		case "/v3/surveys/103/responses/bulk":
			data = `{"data": [], "total": 0}`
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			return
		}
		w.Write([]byte(data))
	}))

	results, err := client.ExportResponses(context.Background(), []string{"101", "102", "103"}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, results["101"].Data, 2)
	assert.Len(t, results["102"].Data, 1)
	assert.Empty(t, results["103"].Data)
}

func TestExportResponsesStopsOnFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v3/surveys/bad/responses/bulk" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "1010", "message": "Client revoked access grant"}`))
			return
		}
		w.Write([]byte(`{"data": [], "total": 0}`))
	}))

	_, err := client.ExportResponses(context.Background(), []string{"101", "bad"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthorization)
	assert.Contains(t, err.Error(), "survey bad")
}

func TestExportResponsesEmptyInput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	results, err := client.ExportResponses(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
