package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
)

func TestETLServiceGetStatus(t *testing.T) {
	client := &fakeUpstream{body: []byte(`{"status":"running","progress":40}`)}
	svc := NewETLService(client, nil)

	status, err := svc.GetETLStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "running", status.State())
	assert.Equal(t, upstream.PathETLStatus, client.last().Path)
}

func TestETLServiceGetLogsForwardsPaging(t *testing.T) {
	client := &fakeUpstream{body: []byte(`{"data":{"logs":[{"id":1},{"id":2}],"total":2}}`)}
	svc := NewETLService(client, nil)

	logs, err := svc.GetETLLogs(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
	req := client.last()
	assert.Equal(t, upstream.PathETLLogs, req.Path)
	assert.Equal(t, "10", req.Query.Get("limit"))
	assert.Equal(t, "1", req.Query.Get("offset"))
}

func TestETLServiceGetLogsMissingField(t *testing.T) {
	for name, body := range map[string]string{
		"no data":  `{"success":true}`,
		"no logs":  `{"data":{}}`,
		"null log": `{"data":{"logs":null}}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewETLService(&fakeUpstream{body: []byte(body)}, nil)

			logs, err := svc.GetETLLogs(context.Background(), 10, 1)

			require.NoError(t, err)
			assert.NotNil(t, logs)
			assert.Empty(t, logs)
		})
	}
}

func TestETLServicePropagatesRejection(t *testing.T) {
	rejected := &upstream.Error{Method: http.MethodGet, Path: upstream.PathETLStatus, StatusCode: http.StatusUnauthorized, Body: "bad token"}
	svc := NewETLService(&fakeUpstream{err: rejected}, nil)

	_, err := svc.GetETLStatus(context.Background())

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode(err))
}

func TestETLServiceTriggerPaths(t *testing.T) {
	cases := map[models.ETLAction]string{
		models.ETLActionFull:        upstream.PathETLRunFull,
		models.ETLActionIncremental: upstream.PathETLRunIncremental,
		models.ETLActionClearStuck:  upstream.PathETLClearStuck,
		models.ETLActionForceClear:  upstream.PathETLForceClear,
	}
	for action, path := range cases {
		t.Run(string(action), func(t *testing.T) {
			client := &fakeUpstream{body: []byte(`{"message":"ok"}`)}
			svc := NewETLService(client, nil)

			body, err := svc.Trigger(context.Background(), action)

			require.NoError(t, err)
			assert.JSONEq(t, `{"message":"ok"}`, string(body))
			assert.Equal(t, http.MethodPost, client.last().Method)
			assert.Equal(t, path, client.last().Path)
		})
	}
}

func TestETLServiceTriggerEmptyBody(t *testing.T) {
	svc := NewETLService(&fakeUpstream{}, nil)

	body, err := svc.StartFullETL(context.Background())

	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestETLServiceTriggerUnknownAction(t *testing.T) {
	client := &fakeUpstream{}
	svc := NewETLService(client, nil)

	_, err := svc.Trigger(context.Background(), models.ETLAction("rebuild"))

	assert.ErrorIs(t, err, ErrUnknownETLAction)
	assert.Empty(t, client.requests)
}
